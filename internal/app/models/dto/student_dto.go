package dto

import (
	"github.com/enrolldesk/enrolldesk/internal/app/models"
)

// StudentRequest carries the editable fields of an enrollment record. The
// surrogate id and enrollment date are server-assigned and never accepted
// from clients.
type StudentRequest struct {
	StudentID  string `json:"student_id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Course     string `json:"course"`
	YearLevel  string `json:"year_level"`
	Status     string `json:"status"`
}

// ToModel converts the request into a domain record.
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		StudentID:  r.StudentID,
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Department: r.Department,
		Course:     r.Course,
		YearLevel:  r.YearLevel,
		Status:     r.Status,
	}
}

// ListQuery holds the parsed listing parameters: pagination, sorting and the
// optional search term.
type ListQuery struct {
	Page          int
	PerPage       int
	SortColumn    string
	SortDirection string
	Query         string
}
