package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleTeacher RoleType = "teacher"
	RoleStudent RoleType = "student"
)

// TeacherStatus defines the teacher approval lifecycle state
type TeacherStatus string

const (
	// TeacherStatusPending is the initial state on teacher self-registration.
	TeacherStatusPending TeacherStatus = "pending"
	// TeacherStatusActive is set by admin approval; only active teachers may log in.
	TeacherStatusActive TeacherStatus = "active"
	// TeacherStatusRejected is set by admin rejection. No transition leaves it.
	TeacherStatusRejected TeacherStatus = "rejected"
)

// ValidRole reports whether the given string is a known role.
func ValidRole(role string) bool {
	switch RoleType(role) {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}
