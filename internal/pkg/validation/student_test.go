package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
)

func validStudent() *models.Student {
	return &models.Student{
		StudentID:  "25-00916",
		FirstName:  "Juan",
		LastName:   "Dela Cruz",
		Email:      "juan.delacruz@example.com",
		Phone:      "0917-123-4567",
		Department: models.DeptInformatics,
		Course:     "BS Computer Science",
		YearLevel:  "2nd Year",
		Status:     models.StatusEnrolled,
	}
}

func TestValidateStudentAccepts(t *testing.T) {
	assert.NoError(t, ValidateStudent(validStudent()))

	s := validStudent()
	s.FirstName = "Mary-Anne"
	s.LastName = "O'Brien"
	assert.NoError(t, ValidateStudent(s))

	s = validStudent()
	s.MiddleName = ""
	assert.NoError(t, ValidateStudent(s))
}

func TestValidateStudentRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.Student)
		field   string
		message string
	}{
		{
			name:    "missing student id",
			mutate:  func(s *models.Student) { s.StudentID = "" },
			field:   "student_id",
			message: "Student ID is required",
		},
		{
			name:    "missing first name",
			mutate:  func(s *models.Student) { s.FirstName = "" },
			field:   "first_name",
			message: "First Name is required",
		},
		{
			name:    "missing department",
			mutate:  func(s *models.Student) { s.Department = "" },
			field:   "department",
			message: "Department is required",
		},
		{
			name:    "bad student id shape",
			mutate:  func(s *models.Student) { s.StudentID = "123-456" },
			field:   "student_id",
			message: "Student ID must be in format YY-NNNNN (e.g., 25-00916)",
		},
		{
			name:    "digits in name",
			mutate:  func(s *models.Student) { s.FirstName = "J0hn" },
			field:   "first_name",
			message: "First Name should only contain letters, spaces, hyphens, and apostrophes",
		},
		{
			name:    "single letter first name",
			mutate:  func(s *models.Student) { s.FirstName = "J" },
			field:   "first_name",
			message: "First Name must be between 2 and 50 characters",
		},
		{
			name:    "bad email",
			mutate:  func(s *models.Student) { s.Email = "not-an-email" },
			field:   "email",
			message: "Invalid email address format",
		},
		{
			name:    "missing phone",
			mutate:  func(s *models.Student) { s.Phone = "" },
			field:   "phone",
			message: "Phone number is required",
		},
		{
			name:    "uncanonical phone",
			mutate:  func(s *models.Student) { s.Phone = "09171234567" },
			field:   "phone",
			message: "Phone number must be in format 09XX-XXX-XXXX",
		},
		{
			name:    "unknown department",
			mutate:  func(s *models.Student) { s.Department = "College of Magic" },
			field:   "department",
			message: "Please select a valid College Department",
		},
		{
			name:    "unknown year level",
			mutate:  func(s *models.Student) { s.YearLevel = "5th Year" },
			field:   "year_level",
			message: "Please select a valid Year Level",
		},
		{
			name:    "unknown status",
			mutate:  func(s *models.Student) { s.Status = "On Leave" },
			field:   "status",
			message: "Invalid status value",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validStudent()
			tc.mutate(s)

			err := ValidateStudent(s)
			require.Error(t, err)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
			assert.Equal(t, tc.message, fieldErr.Message)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestValidateStudentFirstFailureWins(t *testing.T) {
	s := validStudent()
	s.StudentID = ""
	s.Email = "broken"

	var fieldErr *FieldError
	require.ErrorAs(t, ValidateStudent(s), &fieldErr)
	assert.Equal(t, "student_id", fieldErr.Field)
}

func TestSanitizeStudent(t *testing.T) {
	s := &models.Student{
		StudentID:  "  25-00916 ",
		FirstName:  "jean-paul",
		MiddleName: "de la",
		LastName:   "o'brien",
		Email:      "  Juan.DelaCruz@Example.COM ",
		Phone:      "+63 917 123 4567",
		Department: " " + models.DeptInformatics + " ",
		Course:     " BS Computer Science ",
		YearLevel:  " 2nd Year ",
	}

	SanitizeStudent(s)

	assert.Equal(t, "25-00916", s.StudentID)
	assert.Equal(t, "Jean-Paul", s.FirstName)
	assert.Equal(t, "De La", s.MiddleName)
	assert.Equal(t, "O'Brien", s.LastName)
	assert.Equal(t, "juan.delacruz@example.com", s.Email)
	assert.Equal(t, "0917-123-4567", s.Phone)
	assert.Equal(t, models.DeptInformatics, s.Department)
	assert.Equal(t, "BS Computer Science", s.Course)
	assert.Equal(t, "2nd Year", s.YearLevel)
	assert.Equal(t, models.StatusEnrolled, s.Status)

	// Sanitized output passes validation untouched
	assert.NoError(t, ValidateStudent(s))
}
