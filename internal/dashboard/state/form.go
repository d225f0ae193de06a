package state

import "github.com/enrolldesk/enrolldesk/internal/app/models"

// FormState is the single source of truth for the entry form. Text inputs on
// screen are projections of these fields; the controller reads them back here
// before every submit.
type FormState struct {
	StudentID  string
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Phone      string
	Department string
	Course     string
	YearLevel  string
	Status     string

	// OriginalStudentID is the business key of the record being edited.
	// Empty means the form is in create mode.
	OriginalStudentID string
}

// NewFormState returns an empty create-mode form.
func NewFormState() *FormState {
	return &FormState{}
}

// EditMode reports whether the form is editing an existing record.
func (f *FormState) EditMode() bool {
	return f.OriginalStudentID != ""
}

// Clear empties every field and returns the form to create mode.
func (f *FormState) Clear() {
	*f = FormState{}
}

// Load fills the form from an existing record and switches to edit mode.
func (f *FormState) Load(s models.Student) {
	f.StudentID = s.StudentID
	f.FirstName = s.FirstName
	f.MiddleName = s.MiddleName
	f.LastName = s.LastName
	f.Email = s.Email
	f.Phone = s.Phone
	f.Department = s.Department
	f.Course = s.Course
	f.YearLevel = s.YearLevel
	f.Status = s.Status
	f.OriginalStudentID = s.StudentID
}

// SetDepartment changes the department and resets the course to the first
// offering of the new department, since course options depend on it.
func (f *FormState) SetDepartment(dept string) {
	if dept == f.Department {
		return
	}
	f.Department = dept
	courses := models.CoursesFor(dept)
	if len(courses) > 0 {
		f.Course = courses[0]
	} else {
		f.Course = ""
	}
}

// ToModel builds the record to send to the API.
func (f *FormState) ToModel() *models.Student {
	return &models.Student{
		StudentID:  f.StudentID,
		FirstName:  f.FirstName,
		MiddleName: f.MiddleName,
		LastName:   f.LastName,
		Email:      f.Email,
		Phone:      f.Phone,
		Department: f.Department,
		Course:     f.Course,
		YearLevel:  f.YearLevel,
		Status:     f.Status,
	}
}
