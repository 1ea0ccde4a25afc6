package model

import "time"

// Role identifies a member's standing within a course.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Membership grants a user a role within a course. Identity is the
// (courseId, userId) pair; at most one membership may exist per pair.
// Memberships are never removed.
type Membership struct {
	CourseID string    `json:"courseId"`
	UserID   string    `json:"userId"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Member pairs a user with their role in a course, for roster listings.
type Member struct {
	User
	Role Role `json:"role"`
}
