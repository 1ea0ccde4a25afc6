package model

import "time"

// Observation is a private note about a student within a course, written by
// an admin. Visibility (admins and the subject student only) is a display
// convention enforced by the caller, not by storage.
type Observation struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	StudentID string    `json:"studentId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
