package model

// ClassStatus is the lifecycle state of a class session. Status is set at
// creation; no operation transitions it afterwards.
type ClassStatus string

const (
	ClassScheduled ClassStatus = "scheduled"
	ClassCancelled ClassStatus = "cancelled"
	ClassCompleted ClassStatus = "completed"
)

// ClassSession is a single scheduled meeting of a course. Date and time are
// stored exactly as the caller supplied them.
type ClassSession struct {
	ID       string      `json:"id"`
	CourseID string      `json:"courseId"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
	Location string      `json:"location"`
	Topic    string      `json:"topic"`
	Notes    string      `json:"notes,omitempty"`
	Status   ClassStatus `json:"status"`
}
