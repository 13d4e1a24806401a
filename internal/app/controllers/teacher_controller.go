package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/collegehub/internal/app/services"
	"github.com/emre/collegehub/internal/middleware"
)

// TeacherController handles teacher listing for authenticated users
type TeacherController struct {
	teacherService *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// GetAllTeachers lists all teachers joined with their identity fields
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teachers)
}
