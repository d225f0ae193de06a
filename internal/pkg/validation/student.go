// Package validation holds the syntactic rules for enrollment records. The
// checks run in a fixed order and stop at the first failure; they never
// consult the database, so uniqueness of the student ID is left to the
// storage layer.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/format"
)

// Validation rule patterns
var (
	// Student identifier pattern - YY-NNNNN
	StudentIDPattern = `^\d{2}-\d{5}$`

	// Name pattern - letters, spaces, hyphens and apostrophes
	NamePattern = `^[A-Za-z\s'-]+$`

	// Email pattern - basic local@domain.tld shape
	EmailPattern = `^[\w.-]+@[\w.-]+\.[A-Za-z]{2,}$`

	// Canonical phone pattern - 09XX-XXX-XXXX
	PhonePattern = `^09\d{2}-\d{3}-\d{4}$`

	// Name length bounds
	NameMinLength = 2
	NameMaxLength = 50

	// Email length bound
	EmailMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	StudentID *regexp.Regexp
	Name      *regexp.Regexp
	Email     *regexp.Regexp
	Phone     *regexp.Regexp
}{
	StudentID: regexp.MustCompile(StudentIDPattern),
	Name:      regexp.MustCompile(NamePattern),
	Email:     regexp.MustCompile(EmailPattern),
	Phone:     regexp.MustCompile(PhonePattern),
}

// FieldError reports the offending field together with the rule it violated.
// It unwraps to apperrors.ErrValidationFailed.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return apperrors.ErrValidationFailed
}

func reject(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// requiredFields are checked first, in this order.
var requiredFields = []struct {
	name  string
	label string
}{
	{"student_id", "Student ID"},
	{"first_name", "First Name"},
	{"last_name", "Last Name"},
	{"email", "Email"},
	{"course", "Course"},
	{"year_level", "Year Level"},
}

// ValidateStudent checks a record against the enrollment rules. The first
// failing rule wins and is returned as a *FieldError; a nil return means the
// record is acceptable. The phone number must already be in canonical form,
// so callers normalize with format.FormatPhone (or Sanitize) beforehand.
func ValidateStudent(s *models.Student) error {
	fields := map[string]string{
		"student_id": s.StudentID,
		"first_name": s.FirstName,
		"last_name":  s.LastName,
		"email":      s.Email,
		"course":     s.Course,
		"year_level": s.YearLevel,
	}

	// 1. Presence of the core fields
	for _, f := range requiredFields {
		if strings.TrimSpace(fields[f.name]) == "" {
			return reject(f.name, fmt.Sprintf("%s is required", f.label))
		}
	}

	// 2. Department presence
	if strings.TrimSpace(s.Department) == "" {
		return reject("department", "Department is required")
	}

	// 3. Student ID format
	if !CompiledPatterns.StudentID.MatchString(s.StudentID) {
		return reject("student_id", "Student ID must be in format YY-NNNNN (e.g., 25-00916)")
	}

	// 4. Name character set
	if !CompiledPatterns.Name.MatchString(s.FirstName) {
		return reject("first_name", "First Name should only contain letters, spaces, hyphens, and apostrophes")
	}
	if s.MiddleName != "" && !CompiledPatterns.Name.MatchString(s.MiddleName) {
		return reject("middle_name", "Middle Name should only contain letters, spaces, hyphens, and apostrophes")
	}
	if !CompiledPatterns.Name.MatchString(s.LastName) {
		return reject("last_name", "Last Name should only contain letters, spaces, hyphens, and apostrophes")
	}

	// 5. Name length bounds
	if len(s.FirstName) < NameMinLength || len(s.FirstName) > NameMaxLength {
		return reject("first_name", "First Name must be between 2 and 50 characters")
	}
	if len(s.MiddleName) > NameMaxLength {
		return reject("middle_name", "Middle Name must not exceed 50 characters")
	}
	if len(s.LastName) < NameMinLength || len(s.LastName) > NameMaxLength {
		return reject("last_name", "Last Name must be between 2 and 50 characters")
	}

	// 6. Email format
	if !CompiledPatterns.Email.MatchString(s.Email) {
		return reject("email", "Invalid email address format")
	}
	if len(s.Email) > EmailMaxLength {
		return reject("email", "Email address must not exceed 100 characters")
	}

	// 7. Phone in canonical form
	if strings.TrimSpace(s.Phone) == "" {
		return reject("phone", "Phone number is required")
	}
	if !CompiledPatterns.Phone.MatchString(s.Phone) {
		return reject("phone", "Phone number must be in format 09XX-XXX-XXXX")
	}

	// 8. Course presence (rechecked after trimming)
	if strings.TrimSpace(s.Course) == "" {
		return reject("course", "Please select a Course")
	}

	// 9. Year level presence
	if strings.TrimSpace(s.YearLevel) == "" {
		return reject("year_level", "Year Level is required")
	}

	// Enumeration membership
	if !models.ValidDepartment(s.Department) {
		return reject("department", "Please select a valid College Department")
	}
	if !models.ValidYearLevel(s.YearLevel) {
		return reject("year_level", "Please select a valid Year Level")
	}
	if s.Status != "" && !models.ValidStatus(s.Status) {
		return reject("status", "Invalid status value")
	}

	return nil
}

// SanitizeStudent trims every field and applies the canonical display
// transforms: name capitalization, lowercase email and phone normalization.
// A missing status falls back to the default. Validation assumes input has
// passed through here first.
func SanitizeStudent(s *models.Student) {
	s.StudentID = strings.TrimSpace(s.StudentID)
	s.FirstName = format.CapitalizeWords(s.FirstName)
	s.MiddleName = format.CapitalizeWords(s.MiddleName)
	s.LastName = format.CapitalizeWords(s.LastName)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Phone = format.FormatPhone(strings.TrimSpace(s.Phone))
	s.Department = strings.TrimSpace(s.Department)
	s.Course = strings.TrimSpace(s.Course)
	s.YearLevel = strings.TrimSpace(s.YearLevel)
	s.Status = strings.TrimSpace(s.Status)
	if s.Status == "" {
		s.Status = models.StatusEnrolled
	}
}
