package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/app/services"
	"github.com/enrolldesk/enrolldesk/internal/middleware"
	"github.com/enrolldesk/enrolldesk/internal/pkg/helpers"
)

// StudentController handles enrollment record endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents returns one page of records.
// GET /api/students?page=&per_page=&sort_column=&sort_direction=
func (c *StudentController) ListStudents(ctx *gin.Context) {
	q := helpers.ParseListQuery(ctx)

	students, pagination, err := c.studentService.List(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if students == nil {
		students = []models.Student{}
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Success:    true,
		Students:   students,
		Pagination: &pagination,
	})
}

// SearchStudents returns one page of records matching the query term. An
// empty term behaves exactly like ListStudents so clients can treat both
// modes uniformly.
// GET /api/students/search?query=&page=&per_page=&sort_column=&sort_direction=
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	q := helpers.ParseListQuery(ctx)

	if strings.TrimSpace(q.Query) == "" {
		c.ListStudents(ctx)
		return
	}

	students, pagination, err := c.studentService.Search(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if students == nil {
		students = []models.Student{}
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Success:    true,
		Students:   students,
		Pagination: &pagination,
	})
}

// AddStudent creates a new record.
// POST /api/students/add
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data"))
		return
	}

	if err := c.studentService.Create(ctx, req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "Student added successfully",
	})
}

// UpdateStudent rewrites the record addressed by its business key.
// PUT /api/students/update/:studentId
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	studentID := ctx.Param("studentId")

	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data"))
		return
	}

	if err := c.studentService.Update(ctx, studentID, req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "Student updated successfully",
	})
}

// DeleteStudent removes the record addressed by its business key.
// DELETE /api/students/delete/:studentId
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	studentID := ctx.Param("studentId")

	if err := c.studentService.Delete(ctx, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "Student deleted successfully",
	})
}
