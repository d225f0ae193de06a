package dashboard

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
)

// Form field indexes. Text fields are backed by textinput models; enum
// fields cycle through their option list with left/right.
const (
	fieldStudentID = iota
	fieldFirstName
	fieldMiddleName
	fieldLastName
	fieldEmail
	fieldPhone
	fieldDepartment
	fieldCourse
	fieldYearLevel
	fieldStatus
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Student ID",
	"First Name",
	"Middle Name",
	"Last Name",
	"Email",
	"Phone",
	"Department",
	"Course",
	"Year Level",
	"Status",
}

var fieldPlaceholders = map[int]string{
	fieldStudentID: "22-12345",
	fieldEmail:     "name@example.com",
	fieldPhone:     "0917-123-4567",
}

func isEnumField(i int) bool {
	return i >= fieldDepartment
}

func newFormInputs() []textinput.Model {
	inputs := make([]textinput.Model, fieldDepartment)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = fieldPlaceholders[i]
		in.CharLimit = 100
		in.Width = 32
		inputs[i] = in
	}
	return inputs
}

// enumOptions returns the choices for an enum field. Course options follow
// the currently chosen department.
func (m *Model) enumOptions(field int) []string {
	switch field {
	case fieldDepartment:
		return models.Departments
	case fieldCourse:
		return models.CoursesFor(m.form.Department)
	case fieldYearLevel:
		return models.YearLevels
	case fieldStatus:
		return models.Statuses
	}
	return nil
}

// enumValue returns the current value of an enum field.
func (m *Model) enumValue(field int) string {
	switch field {
	case fieldDepartment:
		return m.form.Department
	case fieldCourse:
		return m.form.Course
	case fieldYearLevel:
		return m.form.YearLevel
	case fieldStatus:
		return m.form.Status
	}
	return ""
}

// cycleEnum advances an enum field by delta, wrapping at the ends. Changing
// the department also resets the course to the department's first offering.
func (m *Model) cycleEnum(field, delta int) {
	options := m.enumOptions(field)
	if len(options) == 0 {
		return
	}

	current := m.enumValue(field)
	idx := -1
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = len(options) - 1
	}
	if idx >= len(options) {
		idx = 0
	}
	next := options[idx]

	switch field {
	case fieldDepartment:
		m.form.SetDepartment(next)
	case fieldCourse:
		m.form.Course = next
	case fieldYearLevel:
		m.form.YearLevel = next
	case fieldStatus:
		m.form.Status = next
	}
}

// syncFormState copies the on-screen text inputs back into the form state.
// Called before every submit so the form state is authoritative.
func (m *Model) syncFormState() {
	m.form.StudentID = m.inputs[fieldStudentID].Value()
	m.form.FirstName = m.inputs[fieldFirstName].Value()
	m.form.MiddleName = m.inputs[fieldMiddleName].Value()
	m.form.LastName = m.inputs[fieldLastName].Value()
	m.form.Email = m.inputs[fieldEmail].Value()
	m.form.Phone = m.inputs[fieldPhone].Value()
}

// syncFormInputs projects the form state onto the text inputs, used after
// Load and Clear.
func (m *Model) syncFormInputs() {
	m.inputs[fieldStudentID].SetValue(m.form.StudentID)
	m.inputs[fieldFirstName].SetValue(m.form.FirstName)
	m.inputs[fieldMiddleName].SetValue(m.form.MiddleName)
	m.inputs[fieldLastName].SetValue(m.form.LastName)
	m.inputs[fieldEmail].SetValue(m.form.Email)
	m.inputs[fieldPhone].SetValue(m.form.Phone)
}

// loadForm fills the form from a record and selects it.
func (m *Model) loadForm(s models.Student) {
	m.form.Load(s)
	m.syncFormInputs()
	m.selectedID = s.StudentID
}

// clearForm empties the form and drops the selection.
func (m *Model) clearForm() {
	m.form.Clear()
	m.syncFormInputs()
	m.selectedID = ""
	m.formField = 0
}

// focusFormField moves keyboard focus to field i within the form.
func (m *Model) focusFormField(i int) {
	if i < 0 {
		i = fieldCount - 1
	}
	if i >= fieldCount {
		i = 0
	}
	m.formField = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}
