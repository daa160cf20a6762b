package models

import "time"

// ScheduleDraft is an in-progress weekly edit session held server-side while
// the tutor works through the availability editor. Drafts are keyed by a
// locally generated id and expire if never saved.
type ScheduleDraft struct {
	ID        string          `json:"id"`
	TutorID   string          `json:"tutorId"`
	WeekStart string          `json:"weekStart"`
	Schedule  *WeeklySchedule `json:"schedule"`
	Dirty     bool            `json:"dirty"`
	CreatedAt time.Time       `json:"createdAt"`
}
