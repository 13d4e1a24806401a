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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *db.PostgresDB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// CreateAccount inserts the owning user row and the student row in a single
// transaction so a partial failure never leaves an orphan user.
func (r *StudentRepository) CreateAccount(ctx context.Context, user *models.User, student *models.Student) error {
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

		student.UserID = user.ID
		return tx.QueryRow(ctx, `
			INSERT INTO students (user_id, student_id, course_id, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			student.UserID, student.StudentID, student.CourseID, student.Status).
			Scan(&student.ID)
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return apperrors.ErrStudentIDAlreadyExists
		}
		return err
	}

	return nil
}

// GetAll retrieves all students joined with their owning user's identity fields
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.user_id, s.student_id, s.course_id, s.status, u.name, u.email
		FROM students s
		JOIN users u ON s.user_id = u.id
		ORDER BY s.id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var user models.User
		if err := rows.Scan(
			&student.ID,
			&student.UserID,
			&student.StudentID,
			&student.CourseID,
			&student.Status,
			&user.Name,
			&user.Email,
		); err != nil {
			return nil, err
		}
		student.User = &user
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update updates a student's status and course assignment by student record id
func (r *StudentRepository) Update(ctx context.Context, id int64, status string, courseID *int64) (*models.Student, error) {
	query := `
		UPDATE students
		SET status = $1, course_id = $2
		WHERE id = $3
		RETURNING id, user_id, student_id, course_id, status
	`

	var student models.Student
	err := r.db.Pool.QueryRow(ctx, query, status, courseID, id).Scan(
		&student.ID,
		&student.UserID,
		&student.StudentID,
		&student.CourseID,
		&student.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}

	return &student, nil
}

// DeleteAccount removes a student's owning user row by student record id.
// The students row goes with it through the declared cascade.
func (r *StudentRepository) DeleteAccount(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var userID int64
		err := tx.QueryRow(ctx,
			`SELECT user_id FROM students WHERE id = $1`, id).Scan(&userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStudentNotFound
			}
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
		return err
	})
}
