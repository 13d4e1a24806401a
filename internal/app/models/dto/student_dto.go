package dto

// CreateStudentRequest represents the admin-only student creation payload
type CreateStudentRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	StudentID string `json:"studentId" binding:"required"`
	CourseID  *int64 `json:"courseId"`
}

// UpdateStudentRequest represents a student update payload
type UpdateStudentRequest struct {
	Status   string `json:"status" binding:"required"`
	CourseID *int64 `json:"courseId"`
}

// StudentResponse represents a student record joined with its owning user's
// identity fields.
type StudentResponse struct {
	ID        int64  `json:"id"`
	StudentID string `json:"studentId"`
	CourseID  *int64 `json:"courseId,omitempty"`
	Status    string `json:"status"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}
