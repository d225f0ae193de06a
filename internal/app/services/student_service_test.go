package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/validation"
)

type stubStore struct {
	listOffset  uint64
	listLimit   int
	listSort    string
	listDir     string
	listResult  []models.Student
	listTotal   int64
	searchTerm  string
	created     *models.Student
	updatedID   string
	updated     *models.Student
	deletedID   string
	createErr   error
	listCalls   int
	searchCalls int
}

func (s *stubStore) List(_ context.Context, sortColumn, sortDirection string, offset uint64, limit int) ([]models.Student, int64, error) {
	s.listCalls++
	s.listSort = sortColumn
	s.listDir = sortDirection
	s.listOffset = offset
	s.listLimit = limit
	return s.listResult, s.listTotal, nil
}

func (s *stubStore) Search(_ context.Context, term, sortColumn, sortDirection string, offset uint64, limit int) ([]models.Student, int64, error) {
	s.searchCalls++
	s.searchTerm = term
	s.listOffset = offset
	s.listLimit = limit
	return s.listResult, s.listTotal, nil
}

func (s *stubStore) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubStore) Create(_ context.Context, student *models.Student) error {
	s.created = student
	return s.createErr
}

func (s *stubStore) Update(_ context.Context, studentID string, student *models.Student) error {
	s.updatedID = studentID
	s.updated = student
	return nil
}

func (s *stubStore) Delete(_ context.Context, studentID string) error {
	s.deletedID = studentID
	return nil
}

func validInput() *models.Student {
	return &models.Student{
		StudentID:  "25-00916",
		FirstName:  "juan",
		LastName:   "dela cruz",
		Email:      "Juan@Example.com",
		Phone:      "09171234567",
		Department: models.DeptInformatics,
		Course:     "BS Computer Science",
		YearLevel:  "2nd Year",
	}
}

func TestListComputesOffsetAndPagination(t *testing.T) {
	store := &stubStore{listTotal: 42}
	svc := NewStudentService(store)

	_, p, err := svc.List(context.Background(), dto.ListQuery{
		Page: 3, PerPage: 10, SortColumn: "last_name", SortDirection: "desc",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(20), store.listOffset)
	assert.Equal(t, 10, store.listLimit)
	assert.Equal(t, "last_name", store.listSort)
	assert.Equal(t, "desc", store.listDir)

	assert.Equal(t, int64(42), p.Total)
	assert.Equal(t, 5, p.TotalPages)
	assert.Equal(t, 3, p.Page)
}

func TestSearchUsesSamePaginationContract(t *testing.T) {
	store := &stubStore{listTotal: 7}
	svc := NewStudentService(store)

	_, p, err := svc.Search(context.Background(), dto.ListQuery{
		Page: 1, PerPage: 10, Query: "cruz",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.searchCalls)
	assert.Equal(t, "cruz", store.searchTerm)
	assert.Equal(t, int64(7), p.Total)
	assert.Equal(t, 1, p.TotalPages)
}

func TestCreateSanitizesBeforePersisting(t *testing.T) {
	store := &stubStore{}
	svc := NewStudentService(store)

	input := validInput()
	require.NoError(t, svc.Create(context.Background(), input))

	require.NotNil(t, store.created)
	assert.Equal(t, "Juan", store.created.FirstName)
	assert.Equal(t, "Dela Cruz", store.created.LastName)
	assert.Equal(t, "juan@example.com", store.created.Email)
	assert.Equal(t, "0917-123-4567", store.created.Phone)
	assert.Equal(t, models.StatusEnrolled, store.created.Status)
}

func TestCreateRejectsInvalidWithoutPersisting(t *testing.T) {
	store := &stubStore{}
	svc := NewStudentService(store)

	input := validInput()
	input.StudentID = "123-456"

	err := svc.Create(context.Background(), input)
	require.Error(t, err)

	var fieldErr *validation.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Nil(t, store.created)
}

func TestUpdateFillsImmutableKeyFromPath(t *testing.T) {
	store := &stubStore{}
	svc := NewStudentService(store)

	input := validInput()
	input.StudentID = ""

	require.NoError(t, svc.Update(context.Background(), "25-00916", input))
	assert.Equal(t, "25-00916", store.updatedID)
	require.NotNil(t, store.updated)
	assert.Equal(t, "25-00916", store.updated.StudentID)
}

func TestDeletePassesThrough(t *testing.T) {
	store := &stubStore{}
	svc := NewStudentService(store)

	require.NoError(t, svc.Delete(context.Background(), "25-00916"))
	assert.Equal(t, "25-00916", store.deletedID)
}
