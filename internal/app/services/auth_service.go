package services

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/emre/collegehub/internal/app/models"
	"github.com/emre/collegehub/internal/app/models/dto"
	"github.com/emre/collegehub/internal/pkg/apperrors"
	"github.com/emre/collegehub/internal/pkg/auth"
)

// UserReader provides user lookups needed for authentication
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TeacherAccountStore provides the teacher account operations needed for
// registration and login
type TeacherAccountStore interface {
	CreateAccount(ctx context.Context, user *models.User, teacher *models.Teacher) error
	GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error)
}

// AuthService handles authentication operations
type AuthService struct {
	users      UserReader
	teachers   TeacherAccountStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserReader, teachers TeacherAccountStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		teachers:   teachers,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validatePassword checks if a password meets requirements
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

// Login authenticates a user and returns a signed token with a user summary.
// The password check always runs before the teacher approval check so a
// pending account and a bad password are indistinguishable until credentials
// are proven valid.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Role == models.RoleTeacher {
		teacher, err := s.teachers.GetByUserID(ctx, user.ID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrTeacherNotFound) {
				return nil, apperrors.ErrAccountNotApproved
			}
			return nil, fmt.Errorf("error looking up teacher record: %w", err)
		}
		if teacher.Status != models.TeacherStatusActive {
			s.logger.Info().
				Str("email", user.Email).
				Str("status", string(teacher.Status)).
				Msg("Login denied for unapproved teacher")
			return nil, apperrors.ErrAccountNotApproved
		}
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}

// RegisterTeacher creates a teacher account in pending state. The account
// cannot authenticate until an admin approves it.
func (s *AuthService) RegisterTeacher(ctx context.Context, req *dto.TeacherRegisterRequest) (*models.Teacher, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleTeacher,
	}
	teacher := &models.Teacher{
		TeacherID:  fmt.Sprintf("T%d", time.Now().UnixMilli()),
		Department: req.Department,
		Status:     models.TeacherStatusPending,
	}

	if err := s.teachers.CreateAccount(ctx, user, teacher); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("email", user.Email).
		Str("teacherId", teacher.TeacherID).
		Msg("Teacher registered, pending approval")

	teacher.User = user
	return teacher, nil
}
