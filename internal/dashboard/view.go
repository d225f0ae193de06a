package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/enrolldesk/enrolldesk/internal/dashboard/presenter"
)

var (
	labelStyle      = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("245"))
	focusLabelStyle = lipgloss.NewStyle().Width(12).Bold(true).Foreground(lipgloss.Color("212"))
	enumStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	loadingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

func (m *Model) View() string {
	var sections []string

	sections = append(sections,
		presenter.RenderSearchBar(m.searchInput.View(), m.focus == focusSearch))

	if b := presenter.RenderBanner(m.banner.message, m.banner.level); b != "" {
		sections = append(sections, b)
	}

	table := presenter.RenderTable(m.list, m.cursor, m.selectedID, m.prefs.ColumnWidths)
	if m.loading {
		table += "\n" + m.spin.View() + loadingStyle.Render("Loading…")
	}
	sections = append(sections, table)

	sections = append(sections, presenter.RenderPaginationBar(m.list))

	if !m.prefs.FormCollapsed {
		sections = append(sections, m.renderForm())
	}

	sections = append(sections, presenter.RenderStatusBar(m.role, !m.prefs.FormCollapsed))

	view := strings.Join(sections, "\n\n")

	if m.confirm != nil {
		modal := presenter.RenderConfirm(m.confirm.name, m.confirm.studentID)
		view += "\n\n" + modal
	}

	return view
}

func (m *Model) renderForm() string {
	fields := make([]string, 0, fieldCount)

	for i := 0; i < fieldCount; i++ {
		label := labelStyle.Render(fieldLabels[i])
		if m.focus == focusForm && m.formField == i {
			label = focusLabelStyle.Render(fieldLabels[i])
		}

		var value string
		if isEnumField(i) {
			v := m.enumValue(i)
			if v == "" {
				v = "(none)"
			}
			if m.focus == focusForm && m.formField == i {
				value = enumStyle.Render(fmt.Sprintf("‹ %s ›", v))
			} else {
				value = enumStyle.Render(v)
			}
		} else {
			value = m.inputs[i].View()
		}

		fields = append(fields, label+value)
	}

	return presenter.RenderForm(fields, m.form.EditMode(), m.form.OriginalStudentID)
}
