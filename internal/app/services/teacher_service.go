package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/collegehub/internal/app/models"
	"github.com/emre/collegehub/internal/app/models/dto"
	"github.com/emre/collegehub/internal/config"
)

// TeacherStore provides the teacher listing and approval operations
type TeacherStore interface {
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	GetPending(ctx context.Context) ([]*models.Teacher, error)
	UpdateStatus(ctx context.Context, id int64, status models.TeacherStatus) error
	DeleteAccount(ctx context.Context, id int64) error
}

// TeacherService handles teacher listing and the approval workflow
type TeacherService struct {
	teachers   TeacherStore
	rejectMode config.RejectMode
	logger     zerolog.Logger
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teachers TeacherStore, rejectMode config.RejectMode, logger zerolog.Logger) *TeacherService {
	return &TeacherService{
		teachers:   teachers,
		rejectMode: rejectMode,
		logger:     logger,
	}
}

func newTeacherResponse(teacher *models.Teacher) dto.TeacherResponse {
	resp := dto.TeacherResponse{
		ID:         teacher.ID,
		TeacherID:  teacher.TeacherID,
		Department: teacher.Department,
		Status:     string(teacher.Status),
	}
	if teacher.User != nil {
		resp.Name = teacher.User.Name
		resp.Email = teacher.User.Email
	}
	return resp
}

// GetAllTeachers lists all teachers joined with their identity fields
func (s *TeacherService) GetAllTeachers(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.teachers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TeacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		responses = append(responses, newTeacherResponse(teacher))
	}
	return responses, nil
}

// GetPendingTeachers lists teachers awaiting approval
func (s *TeacherService) GetPendingTeachers(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.teachers.GetPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TeacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		responses = append(responses, newTeacherResponse(teacher))
	}
	return responses, nil
}

// ApproveTeacher marks a teacher active. Re-approving an active teacher
// rewrites the same status and is not an error.
func (s *TeacherService) ApproveTeacher(ctx context.Context, id int64) error {
	if err := s.teachers.UpdateStatus(ctx, id, models.TeacherStatusActive); err != nil {
		return err
	}

	s.logger.Info().Int64("teacherId", id).Msg("Teacher approved")
	return nil
}

// RejectTeacher rejects a pending teacher. Depending on the configured reject
// mode the account is either flagged rejected (default, preserves history) or
// deleted outright.
func (s *TeacherService) RejectTeacher(ctx context.Context, id int64) error {
	if s.rejectMode == config.RejectModeDelete {
		if err := s.teachers.DeleteAccount(ctx, id); err != nil {
			return err
		}
		s.logger.Info().Int64("teacherId", id).Msg("Teacher rejected and account deleted")
		return nil
	}

	if err := s.teachers.UpdateStatus(ctx, id, models.TeacherStatusRejected); err != nil {
		return err
	}

	s.logger.Info().Int64("teacherId", id).Msg("Teacher rejected")
	return nil
}
