package dto

// TeacherResponse represents a teacher record joined with its owning user's
// identity fields. Raw foreign keys are never returned alone.
type TeacherResponse struct {
	ID         int64  `json:"id"`
	TeacherID  string `json:"teacherId"`
	Department string `json:"department"`
	Status     string `json:"status"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}
