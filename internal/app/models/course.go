package models

// Course represents a course offered by the college.
type Course struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Code        string `json:"code" db:"code"`
	Duration    string `json:"duration" db:"duration"`
	Description string `json:"description" db:"description"`
}
