package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
)

type stubStudentService struct {
	students   []models.Student
	pagination dto.PaginationInfo
	err        error

	lastQuery dto.ListQuery
	created   *models.Student
	updatedID string
	deletedID string
}

func (s *stubStudentService) List(_ context.Context, q dto.ListQuery) ([]models.Student, dto.PaginationInfo, error) {
	s.lastQuery = q
	return s.students, s.pagination, s.err
}

func (s *stubStudentService) Search(_ context.Context, q dto.ListQuery) ([]models.Student, dto.PaginationInfo, error) {
	s.lastQuery = q
	return s.students, s.pagination, s.err
}

func (s *stubStudentService) Create(_ context.Context, student *models.Student) error {
	s.created = student
	return s.err
}

func (s *stubStudentService) Update(_ context.Context, studentID string, student *models.Student) error {
	s.updatedID = studentID
	return s.err
}

func (s *stubStudentService) Delete(_ context.Context, studentID string) error {
	s.deletedID = studentID
	return s.err
}

func newStudentRouter(svc *stubStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewStudentController(svc)

	r := gin.New()
	r.GET("/api/students", ctrl.ListStudents)
	r.GET("/api/students/search", ctrl.SearchStudents)
	r.POST("/api/students/add", ctrl.AddStudent)
	r.PUT("/api/students/update/:studentId", ctrl.UpdateStudent)
	r.DELETE("/api/students/delete/:studentId", ctrl.DeleteStudent)
	return r
}

func TestListStudentsEnvelope(t *testing.T) {
	svc := &stubStudentService{
		students:   []models.Student{{StudentID: "25-00916", FirstName: "Juan"}},
		pagination: dto.PaginationInfo{Total: 1, TotalPages: 1, Page: 1, PerPage: 10},
	}
	r := newStudentRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/students?page=2&per_page=25", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.StudentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Students, 1)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, int64(1), resp.Pagination.Total)

	assert.Equal(t, 2, svc.lastQuery.Page)
	assert.Equal(t, 25, svc.lastQuery.PerPage)
}

func TestListStudentsEmptySetIsArray(t *testing.T) {
	svc := &stubStudentService{
		students:   nil,
		pagination: dto.PaginationInfo{Total: 0, TotalPages: 1, Page: 1, PerPage: 10},
	}
	r := newStudentRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/students", nil))

	require.Equal(t, http.StatusOK, w.Code)
	// nil slices must serialize as [] so clients always get an array
	assert.Contains(t, w.Body.String(), `"students":[]`)
}

func TestSearchWithEmptyTermListsInstead(t *testing.T) {
	svc := &stubStudentService{
		students:   []models.Student{},
		pagination: dto.PaginationInfo{Total: 0, TotalPages: 1, Page: 1, PerPage: 10},
	}
	r := newStudentRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/students/search?query=+", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.StudentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestAddStudentSuccess(t *testing.T) {
	svc := &stubStudentService{}
	r := newStudentRouter(svc)

	body, _ := json.Marshal(map[string]string{
		"student_id": "25-00916",
		"first_name": "Juan",
		"last_name":  "Dela Cruz",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/students/add", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Student added successfully", resp.Message)

	require.NotNil(t, svc.created)
	assert.Equal(t, "25-00916", svc.created.StudentID)
}

func TestAddStudentDuplicateKey(t *testing.T) {
	svc := &stubStudentService{err: apperrors.ErrStudentIDAlreadyExists}
	r := newStudentRouter(svc)

	body, _ := json.Marshal(map[string]string{"student_id": "25-00916"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/students/add", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Student ID already exists", resp.Message)
}

func TestUpdateStudentAddressesPathKey(t *testing.T) {
	svc := &stubStudentService{}
	r := newStudentRouter(svc)

	body, _ := json.Marshal(map[string]string{"first_name": "Juan"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/students/update/25-00916", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "25-00916", svc.updatedID)
}

func TestDeleteStudentNotFound(t *testing.T) {
	svc := &stubStudentService{err: apperrors.ErrStudentNotFound}
	r := newStudentRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/students/delete/25-09999", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Student not found", resp.Message)
	assert.Equal(t, "25-09999", svc.deletedID)
}

func TestDeleteStudentSuccess(t *testing.T) {
	svc := &stubStudentService{}
	r := newStudentRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/students/delete/25-00916", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Student deleted successfully", resp.Message)
}
