package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/emre/collegehub/internal/app/models"
	"github.com/emre/collegehub/internal/db"
	"github.com/emre/collegehub/internal/pkg/apperrors"
	"github.com/emre/collegehub/internal/pkg/dberrors"
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *db.PostgresDB
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *db.PostgresDB) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// CreateAccount inserts the owning user row and the teacher row in a single
// transaction so a partial failure never leaves an orphan user.
func (r *TeacherRepository) CreateAccount(ctx context.Context, user *models.User, teacher *models.Teacher) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (name, email, password, role)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`,
			user.Name, user.Email, user.Password, user.Role).
			Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return err
		}

		teacher.UserID = user.ID
		return tx.QueryRow(ctx, `
			INSERT INTO teachers (user_id, teacher_id, department, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			teacher.UserID, teacher.TeacherID, teacher.Department, teacher.Status).
			Scan(&teacher.ID)
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

// GetByUserID retrieves a teacher by its owning user ID
func (r *TeacherRepository) GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error) {
	query := `
		SELECT id, user_id, teacher_id, department, status
		FROM teachers
		WHERE user_id = $1
	`

	var teacher models.Teacher
	err := r.db.Pool.QueryRow(ctx, query, userID).Scan(
		&teacher.ID,
		&teacher.UserID,
		&teacher.TeacherID,
		&teacher.Department,
		&teacher.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, err
	}

	return &teacher, nil
}

// GetAll retrieves all teachers joined with their owning user's identity fields
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT t.id, t.user_id, t.teacher_id, t.department, t.status, u.name, u.email
		FROM teachers t
		JOIN users u ON t.user_id = u.id
		ORDER BY t.id
	`

	return r.queryTeachers(ctx, query)
}

// GetPending retrieves all teachers awaiting approval, joined with user fields
func (r *TeacherRepository) GetPending(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT t.id, t.user_id, t.teacher_id, t.department, t.status, u.name, u.email
		FROM teachers t
		JOIN users u ON t.user_id = u.id
		WHERE t.status = $1
		ORDER BY t.id
	`

	return r.queryTeachers(ctx, query, models.TeacherStatusPending)
}

func (r *TeacherRepository) queryTeachers(ctx context.Context, query string, args ...any) ([]*models.Teacher, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		var user models.User
		if err := rows.Scan(
			&teacher.ID,
			&teacher.UserID,
			&teacher.TeacherID,
			&teacher.Department,
			&teacher.Status,
			&user.Name,
			&user.Email,
		); err != nil {
			return nil, err
		}
		teacher.User = &user
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// UpdateStatus sets a teacher's approval status by teacher record id.
// Re-applying the same status rewrites it without error.
func (r *TeacherRepository) UpdateStatus(ctx context.Context, id int64, status models.TeacherStatus) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE teachers SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// DeleteAccount removes a teacher's owning user row by teacher record id.
// The teachers row goes with it through the declared cascade.
func (r *TeacherRepository) DeleteAccount(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var userID int64
		err := tx.QueryRow(ctx,
			`SELECT user_id FROM teachers WHERE id = $1`, id).Scan(&userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrTeacherNotFound
			}
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
		return err
	})
}
