package model

import "time"

// Announcement is a feed post within a course.
type Announcement struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	IsPinned  bool      `json:"isPinned"`
}

// AnnouncementWithAuthor adds the author's display name for rendering.
type AnnouncementWithAuthor struct {
	Announcement
	AuthorName string `json:"authorName"`
}
