package dto

import "github.com/enrolldesk/enrolldesk/internal/app/models"

// PaginationInfo describes the page window returned with a student listing.
type PaginationInfo struct {
	Total      int64 `json:"total" example:"128"`       // Total matching records
	TotalPages int   `json:"total_pages" example:"13"`  // ceil(total / per_page)
	Page       int   `json:"page" example:"1"`          // Current 1-based page
	PerPage    int   `json:"per_page" example:"10"`     // Page size applied
}

// StudentListResponse is the success envelope for list and search requests.
type StudentListResponse struct {
	Success    bool             `json:"success"`
	Students   []models.Student `json:"students"`
	Pagination *PaginationInfo  `json:"pagination,omitempty"`
}

// MutationResponse is the envelope for add, update and delete requests.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the failure envelope shared by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Student ID already exists"`
}

// NewErrorResponse creates a failure envelope with the given message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
