package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emre/collegehub/internal/app/models"
	"github.com/emre/collegehub/internal/app/models/dto"
	"github.com/emre/collegehub/internal/pkg/auth"
)

// DefaultStudentStatus is assigned to newly created students.
const DefaultStudentStatus = "active"

// StudentStore provides the student account operations
type StudentStore interface {
	CreateAccount(ctx context.Context, user *models.User, student *models.Student) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, id int64, status string, courseID *int64) (*models.Student, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// CourseReader provides course lookups for validating assignments
type CourseReader interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// StudentService handles student account management
type StudentService struct {
	students StudentStore
	courses  CourseReader
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, courses CourseReader, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		courses:  courses,
		logger:   logger,
	}
}

func newStudentResponse(student *models.Student) dto.StudentResponse {
	resp := dto.StudentResponse{
		ID:        student.ID,
		StudentID: student.StudentID,
		CourseID:  student.CourseID,
		Status:    student.Status,
	}
	if student.User != nil {
		resp.Name = student.User.Name
		resp.Email = student.User.Email
	}
	return resp
}

// CreateStudent creates a student account. Only admins reach this operation;
// there is no student self-registration.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	if req.CourseID != nil {
		if _, err := s.courses.GetByID(ctx, *req.CourseID); err != nil {
			return nil, err
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleStudent,
	}
	student := &models.Student{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    DefaultStudentStatus,
	}

	if err := s.students.CreateAccount(ctx, user, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("email", user.Email).
		Str("studentId", student.StudentID).
		Msg("Student created")

	student.User = user
	return student, nil
}

// GetAllStudents lists all students joined with their identity fields
func (s *StudentService) GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, newStudentResponse(student))
	}
	return responses, nil
}

// UpdateStudent updates a student's status and course assignment
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if req.CourseID != nil {
		if _, err := s.courses.GetByID(ctx, *req.CourseID); err != nil {
			return nil, err
		}
	}

	return s.students.Update(ctx, id, req.Status, req.CourseID)
}

// DeleteStudent removes a student together with its owning user account
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.students.DeleteAccount(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student and owning user deleted")
	return nil
}
