// Package bootstrap wires the application's dependencies together.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/collegehub/internal/app/controllers"
	appMigrations "github.com/emre/collegehub/internal/app/migrations"
	appRepos "github.com/emre/collegehub/internal/app/repositories"
	appRoutes "github.com/emre/collegehub/internal/app/routes"
	appServices "github.com/emre/collegehub/internal/app/services"
	"github.com/emre/collegehub/internal/config"
	"github.com/emre/collegehub/internal/db"
	appMiddleware "github.com/emre/collegehub/internal/middleware"
	pkgAuth "github.com/emre/collegehub/internal/pkg/auth"
	"github.com/emre/collegehub/internal/pkg/logger"
	"github.com/emre/collegehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	TeacherService    *appServices.TeacherService
	StudentService    *appServices.StudentService
	CourseService     *appServices.CourseService
	AuthController    *appControllers.AuthController
	AdminController   *appControllers.AdminController
	TeacherController *appControllers.TeacherController
	StudentController *appControllers.StudentController
	CourseController  *appControllers.CourseController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")

	if cfg.JWT.Secret == config.InsecureDefaultSecret {
		lgr.Warn().Msg("JWT_SECRET not set, using insecure development default")
	}

	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := seed.EnsureAdmin(ctx, appRepos.NewUserRepository(database.Pool), cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin")
		database.Close()
		return nil, err
	}

	return database, nil
}

// BuildDependencies constructs repositories, services, controllers and middleware.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	userRepo := appRepos.NewUserRepository(database.Pool)
	teacherRepo := appRepos.NewTeacherRepository(database)
	studentRepo := appRepos.NewStudentRepository(database)
	courseRepo := appRepos.NewCourseRepository(database.Pool)

	authService := appServices.NewAuthService(userRepo, teacherRepo, jwtService, lgr)
	teacherService := appServices.NewTeacherService(teacherRepo, cfg.Admin.RejectMode, lgr)
	studentService := appServices.NewStudentService(studentRepo, courseRepo, lgr)
	courseService := appServices.NewCourseService(courseRepo, lgr)

	return &Dependencies{
		AuthService:       authService,
		TeacherService:    teacherService,
		StudentService:    studentService,
		CourseService:     courseService,
		AuthController:    appControllers.NewAuthController(authService, lgr),
		AdminController:   appControllers.NewAdminController(teacherService, studentService, lgr),
		TeacherController: appControllers.NewTeacherController(teacherService),
		StudentController: appControllers.NewStudentController(studentService, lgr),
		CourseController:  appControllers.NewCourseController(courseService, lgr),
		AuthMiddleware:    appMiddleware.NewAuthMiddleware(jwtService),
		JWTService:        jwtService,
		Logger:            lgr,
	}
}

// SetupRouter creates the gin engine and wires all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.AdminController,
		deps.TeacherController,
		deps.StudentController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	return router
}
