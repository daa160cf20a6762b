package schedule

import (
	"context"
	"time"

	"tutorhive/models"
)

// ScheduleService manages weekly availability edit drafts: loading a week
// from the backend, applying tutor edits, and persisting the hour-split
// result back.
type ScheduleService interface {
	LoadWeek(ctx context.Context, tutorID string, weekStart time.Time) (*models.ScheduleDraft, error)
	GetDraft(ctx context.Context, tutorID, draftID string) (*models.ScheduleDraft, error)
	ToggleDay(ctx context.Context, tutorID, draftID, dayKey string) (*models.ScheduleDraft, error)
	AddRange(ctx context.Context, tutorID, draftID, dayKey string) (*models.ScheduleDraft, error)
	UpdateRange(ctx context.Context, tutorID, draftID, dayKey string, rangeID int, field, value string) (*models.ScheduleDraft, error)
	RemoveRange(ctx context.Context, tutorID, draftID, dayKey string, rangeID int) (*models.ScheduleDraft, error)
	CopyDayToAll(ctx context.Context, tutorID, draftID, sourceDayKey string) (*models.ScheduleDraft, error)
	ApplyPreset(ctx context.Context, tutorID, draftID string, preset models.Preset) (*models.ScheduleDraft, []string, error)
	SaveWeek(ctx context.Context, tutorID, draftID string) (*models.SaveWeekRequest, error)
	DiscardDraft(ctx context.Context, tutorID, draftID string) error
}

// ExpiryScheduler queues a cleanup task for a draft that was never saved.
// Implemented by the cron package's asynq client; nil disables scheduling.
type ExpiryScheduler interface {
	ScheduleExpiry(tutorID, draftID string, ttl time.Duration) error
}
