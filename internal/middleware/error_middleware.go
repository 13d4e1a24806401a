package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/collegehub/internal/app/models/dto"
	"github.com/emre/collegehub/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Anything unmapped is a
// persistence or internal failure and surfaces as a generic 500; internal
// detail never reaches the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password"))
	case errors.Is(err, apperrors.ErrAccountNotApproved):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Account is pending approval or inactive"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Access denied"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email already exists"))
	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID already exists"))
	case errors.Is(err, apperrors.ErrCourseCodeAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course code already exists"))
	case errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Teacher not found"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found"))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Course not found"))
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
