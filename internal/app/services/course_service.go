package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/collegehub/internal/app/models"
	"github.com/emre/collegehub/internal/app/models/dto"
)

// CourseStore provides course persistence operations
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles course management
type CourseService struct {
	courses CourseStore
	logger  zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courses CourseStore, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courses: courses,
		logger:  logger,
	}
}

// CreateCourse creates a new course
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:        req.Name,
		Code:        req.Code,
		Duration:    req.Duration,
		Description: req.Description,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Str("code", course.Code).Msg("Course created")
	return course, nil
}

// GetAllCourses lists all courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

// UpdateCourse replaces a course's fields by ID
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		ID:          id,
		Name:        req.Name,
		Code:        req.Code,
		Duration:    req.Duration,
		Description: req.Description,
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course by ID. Students referencing the course are
// not checked before deletion.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}
