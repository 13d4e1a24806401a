package models

// Teacher defines the teacher model based on the 'teachers' table.
// Every teacher row has exactly one owning User row of role teacher.
type Teacher struct {
	ID         int64         `json:"id" db:"id"`
	UserID     int64         `json:"userId" db:"user_id"`
	TeacherID  string        `json:"teacherId" db:"teacher_id"` // Externally visible identifier
	Department string        `json:"department" db:"department"`
	Status     TeacherStatus `json:"status" db:"status"`

	// Relation (populated on joined listings)
	User *User `json:"user,omitempty"`
}
