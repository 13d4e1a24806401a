package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/collegehub/internal/app/controllers"
	"github.com/emre/collegehub/internal/app/models"
	"github.com/emre/collegehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	teacherController *controllers.TeacherController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.Use(middleware.CORS())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "College Management System Backend is running",
			"status":  "ready",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/teacher-register", authController.TeacherRegister)
	}

	// --- Admin routes: approval workflow and student creation ---
	admin := router.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		admin.GET("/pending-teachers", adminController.GetPendingTeachers)
		admin.PUT("/approve-teacher/:id", adminController.ApproveTeacher)
		admin.DELETE("/reject-teacher/:id", adminController.RejectTeacher)
		admin.POST("/create-student", adminController.CreateStudent)
	}

	// --- Student management (admin only) ---
	students := router.Group("/students")
	students.Use(authMiddleware.JWTAuth())
	students.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		students.GET("", studentController.GetAllStudents)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// --- Teacher listing (any authenticated user) ---
	teachers := router.Group("/teachers")
	teachers.Use(authMiddleware.JWTAuth())
	{
		teachers.GET("", teacherController.GetAllTeachers)
	}

	// --- Courses: reads open to all authenticated users, writes admin only ---
	courses := router.Group("/courses")
	courses.Use(authMiddleware.JWTAuth())
	{
		courses.GET("", courseController.GetAllCourses)

		coursesAdmin := courses.Group("")
		coursesAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.PUT("/:id", courseController.UpdateCourse)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
		}
	}
}
