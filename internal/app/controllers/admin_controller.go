package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/collegehub/internal/app/models/dto"
	"github.com/emre/collegehub/internal/app/services"
	"github.com/emre/collegehub/internal/middleware"
)

// AdminController handles the admin-only approval workflow and student creation
type AdminController struct {
	teacherService *services.TeacherService
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(teacherService *services.TeacherService, studentService *services.StudentService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		teacherService: teacherService,
		studentService: studentService,
		logger:         logger,
	}
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("ID must be a valid number"))
		return 0, false
	}
	return id, true
}

// GetPendingTeachers lists teachers awaiting approval
func (c *AdminController) GetPendingTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetPendingTeachers(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to fetch pending teachers")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teachers)
}

// ApproveTeacher marks a teacher active
func (c *AdminController) ApproveTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.teacherService.ApproveTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Teacher approved"})
}

// RejectTeacher rejects a pending teacher
func (c *AdminController) RejectTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.teacherService.RejectTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Teacher rejected"})
}

// CreateStudent creates a student account together with its owning user
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create student payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, email, password and studentId are required"))
		return
	}

	if _, err := c.studentService.CreateStudent(ctx.Request.Context(), &req); err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Student creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Student created"})
}
