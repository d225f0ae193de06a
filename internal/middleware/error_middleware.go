package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/validation"
)

// HandleAPIError maps application errors to HTTP status codes and the flat
// failure envelope consumed by the dashboard. Validation rejections keep
// their field-specific message; unknown errors are masked.
func HandleAPIError(c *gin.Context, err error) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(fieldErr.Message))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found"))
	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Student ID already exists"))
	case errors.Is(err, apperrors.ErrUsernameAlreadyUsed):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Username already exists"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid username or password"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Access denied. Admin privileges required."))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
