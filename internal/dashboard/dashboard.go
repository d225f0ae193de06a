// Package dashboard implements the terminal admin dashboard: a paginated,
// sortable, searchable student table with an entry form, driven by the
// EnrollDesk REST API.
package dashboard

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/dashboard/prefs"
	"github.com/enrolldesk/enrolldesk/internal/dashboard/presenter"
	"github.com/enrolldesk/enrolldesk/internal/dashboard/state"
	"github.com/enrolldesk/enrolldesk/internal/pkg/validation"
)

// Keyboard focus areas.
const (
	focusTable = iota
	focusSearch
	focusForm
)

// confirmTarget is the pending delete awaiting confirmation.
type confirmTarget struct {
	studentID string
	name      string
}

type banner struct {
	id      int
	message string
	level   string
}

// Model is the dashboard's bubbletea model. All reads and writes of table
// and form state funnel through Update.
type Model struct {
	api  API
	role string

	list *state.ListState
	form *state.FormState

	inputs      []textinput.Model
	searchInput textinput.Model
	spin        spinner.Model

	focus      int
	formField  int
	cursor     int
	selectedID string

	confirm *confirmTarget
	banner  banner

	// reqSeq numbers outgoing fetches; lastSeq is the newest response
	// applied. Responses with seq <= lastSeq are stale and dropped.
	reqSeq  uint64
	lastSeq uint64

	// searchGen invalidates pending debounce timers when typing continues.
	searchGen int

	prefs     *prefs.Prefs
	prefsPath string

	width  int
	height int

	loading bool
}

// New builds the dashboard model. role comes from the login response and
// gates the mutating controls. p may be nil for default preferences.
func New(api API, role string, p *prefs.Prefs, prefsPath string) *Model {
	if p == nil {
		p = &prefs.Prefs{}
	}

	search := textinput.New()
	search.Placeholder = "name, ID, email or course"
	search.CharLimit = 100
	search.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	list := state.NewListState()
	if p.PageSize > 0 {
		list.PageSize = p.PageSize
	}

	return &Model{
		api:         api,
		role:        role,
		list:        list,
		form:        state.NewFormState(),
		inputs:      newFormInputs(),
		searchInput: search,
		spin:        spin,
		prefs:       p,
		prefsPath:   prefsPath,
	}
}

func (m *Model) admin() bool {
	return m.role == string(models.RoleAdmin)
}

// setBanner replaces the banner and returns the command that will expire it.
func (m *Model) setBanner(message, level string) tea.Cmd {
	m.banner.id++
	m.banner.message = message
	m.banner.level = level
	return bannerExpireCmd(m.banner.id)
}

// fetch snapshots the current list parameters and issues a request.
func (m *Model) fetch() tea.Cmd {
	m.reqSeq++
	m.loading = true
	return m.fetchCmd(m.reqSeq)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	// Preference writes are best effort; losing them never blocks the UI.
	_ = prefs.Save(m.prefsPath, m.prefs)
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, m.fetch())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case studentsMsg:
		if msg.seq <= m.lastSeq {
			return m, nil
		}
		m.lastSeq = msg.seq
		m.loading = false
		m.list.Apply(msg.students, msg.pagination)
		if m.cursor >= len(m.list.Students) {
			m.cursor = len(m.list.Students) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case fetchErrMsg:
		if msg.seq <= m.lastSeq {
			return m, nil
		}
		m.lastSeq = msg.seq
		m.loading = false
		return m, m.setBanner(msg.err.Error(), presenter.BannerError)

	case mutationMsg:
		if msg.err != nil {
			// Keep the form contents so the user can correct and retry.
			return m, m.setBanner(msg.err.Error(), presenter.BannerError)
		}
		m.clearForm()
		m.focus = focusTable
		return m, tea.Batch(
			m.setBanner(msg.message, presenter.BannerSuccess),
			m.fetch(),
		)

	case debounceMsg:
		if msg.gen != m.searchGen {
			return m, nil
		}
		if m.list.SetSearchTerm(m.searchInput.Value()) {
			return m, m.fetch()
		}
		return m, nil

	case bannerExpireMsg:
		if msg.id == m.banner.id {
			m.banner.message = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusForm:
		return m.handleFormKey(msg)
	default:
		return m.handleTableKey(msg)
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		target := m.confirm
		m.confirm = nil
		return m, m.deleteCmd(target.studentID)
	case "n", "N", "esc":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.list.Students)-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor < len(m.list.Students) {
			m.loadForm(m.list.Students[m.cursor])
		}

	case "esc":
		m.clearForm()

	case "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case "tab":
		if !m.prefs.FormCollapsed {
			m.focus = focusForm
			m.focusFormField(0)
			return m, textinput.Blink
		}

	case "left", "h":
		if m.list.SetPage(m.list.Page - 1) {
			return m, m.fetch()
		}
	case "right", "l":
		if m.list.SetPage(m.list.Page + 1) {
			return m, m.fetch()
		}
	case "g", "home":
		if m.list.SetPage(1) {
			return m, m.fetch()
		}
	case "G", "end":
		if m.list.SetPage(m.list.TotalPages) {
			return m, m.fetch()
		}

	case "p":
		next := nextPageSize(m.list.PageSize)
		if m.list.SetPageSize(next) {
			m.prefs.PageSize = next
			m.savePrefs()
			return m, m.fetch()
		}

	case "1", "2", "3", "4", "5", "6", "7", "8":
		idx := int(msg.String()[0] - '1')
		if idx < len(presenter.Columns) {
			m.list.ToggleSort(presenter.Columns[idx].Key)
			return m, m.fetch()
		}

	case "n":
		if !m.admin() {
			return m, m.setBanner("Access denied. Admin privileges required.", presenter.BannerError)
		}
		m.clearForm()
		m.prefs.FormCollapsed = false
		m.focus = focusForm
		m.focusFormField(0)
		return m, textinput.Blink

	case "ctrl+d", "delete":
		return m, m.requestDelete()

	case "f2":
		m.prefs.FormCollapsed = !m.prefs.FormCollapsed
		m.savePrefs()
	}

	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.focus = focusTable
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != before {
		m.searchGen++
		return m, tea.Batch(cmd, debounceCmd(m.searchGen))
	}
	return m, cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearForm()
		m.focus = focusTable
		return m, nil

	case "tab", "down":
		m.focusFormField(m.formField + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusFormField(m.formField - 1)
		return m, nil

	case "ctrl+s":
		return m, m.submitForm()

	case "ctrl+d":
		return m, m.requestDelete()
	}

	if isEnumField(m.formField) {
		switch msg.String() {
		case "left":
			m.cycleEnum(m.formField, -1)
		case "right", "enter", " ":
			m.cycleEnum(m.formField, 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.formField], cmd = m.inputs[m.formField].Update(msg)
	return m, cmd
}

// requestDelete opens the confirmation modal for the selected record. No
// request is sent until the user confirms.
func (m *Model) requestDelete() tea.Cmd {
	if !m.admin() {
		return m.setBanner("Access denied. Admin privileges required.", presenter.BannerError)
	}
	if m.selectedID == "" {
		return m.setBanner("Select a student to delete", presenter.BannerInfo)
	}

	name := m.selectedID
	for _, s := range m.list.Students {
		if s.StudentID == m.selectedID {
			name = s.FullName()
			break
		}
	}
	m.confirm = &confirmTarget{studentID: m.selectedID, name: name}
	return nil
}

// submitForm validates the form and issues the add or update request. On a
// validation failure nothing is sent; the first failing rule becomes the
// banner message.
func (m *Model) submitForm() tea.Cmd {
	if !m.admin() {
		return m.setBanner("Access denied. Admin privileges required.", presenter.BannerError)
	}

	m.syncFormState()
	student := m.form.ToModel()
	validation.SanitizeStudent(student)

	if err := validation.ValidateStudent(student); err != nil {
		return m.setBanner(err.Error(), presenter.BannerError)
	}

	if m.form.EditMode() {
		return m.updateCmd(m.form.OriginalStudentID, student)
	}
	return m.addCmd(student)
}

func nextPageSize(current int) int {
	for i, n := range state.PageSizes {
		if n == current {
			return state.PageSizes[(i+1)%len(state.PageSizes)]
		}
	}
	return state.PageSizes[0]
}
