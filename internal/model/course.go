package model

import "time"

// Course represents a course in the system. Courses are immutable after
// creation; there is no edit or delete path.
type Course struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Code        string    `json:"code"`
	CreatorID   string    `json:"creatorId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CourseWithRole pairs a course with the querying user's role in it.
type CourseWithRole struct {
	Course
	MyRole Role `json:"myRole"`
}
