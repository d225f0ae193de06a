// Package presenter renders dashboard state into terminal output. It is a
// pure function of the state passed in; it never mutates it.
package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/dashboard/state"
	"github.com/enrolldesk/enrolldesk/internal/pkg/format"
)

// Banner severity levels.
const (
	BannerSuccess = "success"
	BannerError   = "error"
	BannerInfo    = "info"
)

// Column describes one table column.
type Column struct {
	Key   string
	Title string
	Width int
}

// Columns are the table columns in display order. Key doubles as the API
// sort_column value. Widths are defaults; preferences may override them.
var Columns = []Column{
	{Key: "student_id", Title: "Student ID", Width: 10},
	{Key: "last_name", Title: "Last Name", Width: 14},
	{Key: "first_name", Title: "First Name", Width: 14},
	{Key: "email", Title: "Email", Width: 26},
	{Key: "department", Title: "Dept", Width: 6},
	{Key: "course", Title: "Course", Width: 30},
	{Key: "year_level", Title: "Year", Width: 8},
	{Key: "status", Title: "Status", Width: 12},
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
	cursorRowStyle   = lipgloss.NewStyle().Background(lipgloss.Color("238"))
	selectedRowStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
)

func pad(s string, width int) string {
	if len(s) > width {
		if width <= 1 {
			return s[:width]
		}
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}

func columnWidth(key string, overrides map[string]int, fallback int) int {
	if w, ok := overrides[key]; ok && w > 0 {
		return w
	}
	return fallback
}

func cellValue(s models.Student, key string) string {
	switch key {
	case "student_id":
		return s.StudentID
	case "last_name":
		return s.LastName
	case "first_name":
		return s.FirstName
	case "email":
		return s.Email
	case "department":
		return format.DepartmentAcronym(s.Department)
	case "course":
		return s.Course
	case "year_level":
		return s.YearLevel
	case "status":
		return s.Status
	}
	return ""
}

// RenderTable draws the student table. The cursor row is highlighted; the
// selected record (the one loaded in the form) gets a stronger highlight.
// The active sort column carries a direction indicator in its header.
func RenderTable(list *state.ListState, cursor int, selectedStudentID string, widths map[string]int) string {
	var header strings.Builder
	for _, col := range Columns {
		title := col.Title
		if col.Key == list.SortColumn {
			if list.SortDirection == state.SortDesc {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		header.WriteString(pad(title, columnWidth(col.Key, widths, col.Width)))
		header.WriteString("  ")
	}

	rows := []string{headerStyle.Render(header.String())}

	if len(list.Students) == 0 {
		empty := "No students found"
		if list.Searching() {
			empty = fmt.Sprintf("No students match %q", list.SearchTerm)
		}
		rows = append(rows, dimStyle.Render(empty))
	}

	for i, s := range list.Students {
		var line strings.Builder
		for _, col := range Columns {
			line.WriteString(pad(cellValue(s, col.Key), columnWidth(col.Key, widths, col.Width)))
			line.WriteString("  ")
		}
		rendered := line.String()
		switch {
		case s.StudentID == selectedStudentID && selectedStudentID != "":
			rendered = selectedRowStyle.Render(rendered)
		case i == cursor:
			rendered = cursorRowStyle.Render(rendered)
		}
		rows = append(rows, rendered)
	}

	return strings.Join(rows, "\n")
}

// RenderPaginationBar draws the page controls and the record summary line.
func RenderPaginationBar(list *state.ListState) string {
	var parts []string
	for _, item := range list.PageWindow() {
		var label string
		switch item.Kind {
		case state.PageFirst:
			label = "«"
		case state.PagePrev:
			label = "‹"
		case state.PageNext:
			label = "›"
		case state.PageLast:
			label = "»"
		case state.PageEllipsis:
			parts = append(parts, dimStyle.Render("…"))
			continue
		case state.PageNumber:
			label = fmt.Sprintf("%d", item.Page)
		}

		switch {
		case item.Current:
			parts = append(parts, currentStyle.Render("["+label+"]"))
		case item.Disabled:
			parts = append(parts, dimStyle.Render(" "+label+" "))
		default:
			parts = append(parts, " "+label+" ")
		}
	}

	summary := fmt.Sprintf("%d records · page %d/%d · %d per page",
		list.TotalRecords, list.Page, list.TotalPages, list.PageSize)
	return strings.Join(parts, " ") + "   " + dimStyle.Render(summary)
}

// RenderBanner draws a dismissable status line.
func RenderBanner(message, level string) string {
	if message == "" {
		return ""
	}
	switch level {
	case BannerSuccess:
		return successStyle.Render("✓ " + message)
	case BannerError:
		return errorStyle.Render("✗ " + message)
	default:
		return infoStyle.Render("ℹ " + message)
	}
}

// RenderConfirm draws the delete confirmation modal naming the record.
func RenderConfirm(name, studentID string) string {
	body := fmt.Sprintf("Delete %s (%s)?\n\n%s",
		name, studentID,
		dimStyle.Render("y: delete   n/esc: cancel"))
	return modalStyle.Render(body)
}

// RenderForm frames the entry form panel. fields are the already-rendered
// label/input lines supplied by the controller.
func RenderForm(fields []string, editMode bool, targetID string) string {
	title := "Add Student"
	if editMode {
		title = "Edit Student · " + targetID
	}
	content := titleStyle.Render(title) + "\n" + strings.Join(fields, "\n")
	return panelStyle.Render(content)
}

// RenderSearchBar frames the search input.
func RenderSearchBar(input string, focused bool) string {
	label := "Search: "
	if focused {
		label = currentStyle.Render(label)
	} else {
		label = dimStyle.Render(label)
	}
	return label + input
}

// RenderStatusBar draws the bottom help line, adjusted for role.
func RenderStatusBar(role string, formVisible bool) string {
	keys := []string{
		"↑/↓ move", "enter select", "esc deselect", "/ search",
		"←/→ page", "1-8 sort", "p size",
	}
	if role == string(models.RoleAdmin) {
		keys = append(keys, "n new", "ctrl+s save", "ctrl+d delete")
	}
	keys = append(keys, "f2 form", "q quit")
	return dimStyle.Render(strings.Join(keys, " · "))
}
