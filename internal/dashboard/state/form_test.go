package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
)

func TestFormLoadAndClear(t *testing.T) {
	f := NewFormState()
	assert.False(t, f.EditMode())

	f.Load(models.Student{
		StudentID:  "25-00916",
		FirstName:  "Juan",
		LastName:   "Dela Cruz",
		Email:      "juan@example.com",
		Department: models.DeptInformatics,
		Course:     "BS Computer Science",
		YearLevel:  "2nd Year",
		Status:     models.StatusEnrolled,
	})

	assert.True(t, f.EditMode())
	assert.Equal(t, "25-00916", f.OriginalStudentID)
	assert.Equal(t, "Juan", f.FirstName)

	f.Clear()
	assert.False(t, f.EditMode())
	assert.Empty(t, f.StudentID)
	assert.Empty(t, f.FirstName)
	assert.Empty(t, f.OriginalStudentID)
}

func TestFormSetDepartmentResetsCourse(t *testing.T) {
	f := NewFormState()
	f.SetDepartment(models.DeptInformatics)
	assert.Equal(t, "BS Computer Science", f.Course)

	f.Course = "BS Information Technology"
	f.SetDepartment(models.DeptEngineering)
	assert.Equal(t, "BS Civil Engineering", f.Course)

	// Re-selecting the same department keeps the chosen course
	f.Course = "BS Mechanical Engineering"
	f.SetDepartment(models.DeptEngineering)
	assert.Equal(t, "BS Mechanical Engineering", f.Course)
}

func TestFormToModel(t *testing.T) {
	f := NewFormState()
	f.StudentID = "25-00916"
	f.FirstName = "Juan"
	f.LastName = "Dela Cruz"
	f.Department = models.DeptInformatics
	f.Course = "BS Computer Science"

	s := f.ToModel()
	assert.Equal(t, "25-00916", s.StudentID)
	assert.Equal(t, "Juan", s.FirstName)
	assert.Equal(t, models.DeptInformatics, s.Department)
}
