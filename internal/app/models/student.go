package models

import "time"

// Student defines the enrollment record model based on the 'students' table.
// StudentID is the business key (YY-NNNNN); ID is the surrogate key and is
// never used by clients to address a record.
type Student struct {
	ID             int64     `json:"id" db:"id" example:"1"`                                    // Server-assigned surrogate key
	StudentID      string    `json:"student_id" db:"student_id" example:"25-00916"`             // Business key, immutable once created
	FirstName      string    `json:"first_name" db:"first_name" example:"Maria"`                // Required, 2-50 chars
	MiddleName     string    `json:"middle_name" db:"middle_name" example:"Santos"`             // Optional, up to 50 chars
	LastName       string    `json:"last_name" db:"last_name" example:"Reyes"`                  // Required, 2-50 chars
	Email          string    `json:"email" db:"email" example:"maria.reyes@example.com"`        // Required
	Phone          string    `json:"phone" db:"phone" example:"0917-123-4567"`                  // Canonical 09XX-XXX-XXXX form
	Department     string    `json:"department" db:"department" example:"College of Engineering"`
	Course         string    `json:"course" db:"course" example:"BS Civil Engineering"`
	YearLevel      string    `json:"year_level" db:"year_level" example:"1st Year"`
	Status         string    `json:"status" db:"status" example:"Enrolled"`
	EnrollmentDate time.Time `json:"enrollment_date" db:"enrollment_date"` // Server-assigned, immutable from the client
}

// FullName returns the display name used in confirmation prompts.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
