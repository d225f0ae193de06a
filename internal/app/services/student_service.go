package services

import (
	"context"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/pkg/helpers"
	"github.com/enrolldesk/enrolldesk/internal/pkg/validation"
)

// StudentStore is the storage surface the service needs. Satisfied by
// repositories.StudentRepository.
type StudentStore interface {
	List(ctx context.Context, sortColumn, sortDirection string, offset uint64, limit int) ([]models.Student, int64, error)
	Search(ctx context.Context, term, sortColumn, sortDirection string, offset uint64, limit int) ([]models.Student, int64, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, studentID string, student *models.Student) error
	Delete(ctx context.Context, studentID string) error
}

// StudentService handles enrollment record operations
type StudentService interface {
	List(ctx context.Context, q dto.ListQuery) ([]models.Student, dto.PaginationInfo, error)
	Search(ctx context.Context, q dto.ListQuery) ([]models.Student, dto.PaginationInfo, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, studentID string, student *models.Student) error
	Delete(ctx context.Context, studentID string) error
}

type studentService struct {
	repo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(repo StudentStore) StudentService {
	return &studentService{repo: repo}
}

// List returns one page of records with pagination metadata.
func (s *studentService) List(ctx context.Context, q dto.ListQuery) ([]models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(q.Page, q.PerPage)

	students, total, err := s.repo.List(ctx, q.SortColumn, q.SortDirection, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return students, helpers.NewPaginationInfo(total, q.Page, limit), nil
}

// Search returns one page of matching records. Search is paginated with the
// same contract as List so the client treats both modes uniformly.
func (s *studentService) Search(ctx context.Context, q dto.ListQuery) ([]models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(q.Page, q.PerPage)

	students, total, err := s.repo.Search(ctx, q.Query, q.SortColumn, q.SortDirection, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return students, helpers.NewPaginationInfo(total, q.Page, limit), nil
}

// Create sanitizes and validates the record, then persists it. Uniqueness of
// the business key is enforced by the repository.
func (s *studentService) Create(ctx context.Context, student *models.Student) error {
	validation.SanitizeStudent(student)
	if err := validation.ValidateStudent(student); err != nil {
		return err
	}

	return s.repo.Create(ctx, student)
}

// Update sanitizes and validates the record, then rewrites the row addressed
// by studentID.
func (s *studentService) Update(ctx context.Context, studentID string, student *models.Student) error {
	validation.SanitizeStudent(student)
	// The business key is immutable, so validation checks the addressed key
	// rather than whatever the form still carries.
	if student.StudentID == "" {
		student.StudentID = studentID
	}
	if err := validation.ValidateStudent(student); err != nil {
		return err
	}

	return s.repo.Update(ctx, studentID, student)
}

// Delete removes the record addressed by studentID.
func (s *studentService) Delete(ctx context.Context, studentID string) error {
	return s.repo.Delete(ctx, studentID)
}
