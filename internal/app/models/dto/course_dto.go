package dto

// CreateCourseRequest represents a course creation payload
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	Description string `json:"description"`
}

// UpdateCourseRequest represents a course update payload
type UpdateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	Description string `json:"description"`
}
