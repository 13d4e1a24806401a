package models

// Student defines the student model based on the 'students' table.
// Students are created only by an admin; deleting a student removes its owning User.
type Student struct {
	ID        int64  `json:"id" db:"id"`
	UserID    int64  `json:"userId" db:"user_id"`
	StudentID string `json:"studentId" db:"student_id"` // Externally visible identifier
	CourseID  *int64 `json:"courseId,omitempty" db:"course_id"`
	Status    string `json:"status" db:"status"`

	// Relation (populated on joined listings)
	User *User `json:"user,omitempty"`
}
