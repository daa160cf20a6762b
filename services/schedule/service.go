package schedule

import (
	"context"
	"fmt"
	"time"

	"tutorhive/models"
	"tutorhive/services/remote"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultScheduleService implements ScheduleService on top of the pure engine
// functions, a remote availability client, and a draft store.
type DefaultScheduleService struct {
	Remote   remote.AvailabilityClient
	Drafts   DraftStore
	Expiry   ExpiryScheduler // optional
	DraftTTL time.Duration
	Logger   *zap.Logger
}

func (s *DefaultScheduleService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// LoadWeek fetches the backend's saved availability for the week containing
// weekStart and opens an edit draft for it. A "no data" response starts a
// fresh empty week; malformed remote data is logged and also falls back to a
// fresh week; transport errors propagate so the caller can surface them
// instead of silently showing an empty editor. Drafts are keyed by the
// normalized Monday, so a late response for a previously requested week can
// never clobber a newer week's draft.
func (s *DefaultScheduleService) LoadWeek(ctx context.Context, tutorID string, weekStart time.Time) (*models.ScheduleDraft, error) {
	monday := MondayOf(weekStart)
	weekKey := monday.Format(dateLayout)

	remoteWeek, err := s.Remote.FetchWeek(ctx, tutorID, weekKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load week %s: %w", weekKey, err)
	}

	sched, err := MergeRemoteWeek(monday, remoteWeek)
	if err != nil {
		s.logger().Warn("Discarding malformed remote week",
			zap.String("tutorID", tutorID),
			zap.String("weekStart", weekKey),
			zap.Error(err))
		sched = InitializeSchedule(monday)
	}

	draft := &models.ScheduleDraft{
		ID:        uuid.NewString(),
		TutorID:   tutorID,
		WeekStart: weekKey,
		Schedule:  sched,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Drafts.Put(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	if s.Expiry != nil {
		if err := s.Expiry.ScheduleExpiry(tutorID, draft.ID, s.DraftTTL); err != nil {
			// The store TTL still bounds the draft's lifetime.
			s.logger().Warn("Failed to queue draft expiry", zap.String("draftID", draft.ID), zap.Error(err))
		}
	}
	return draft, nil
}

func (s *DefaultScheduleService) GetDraft(ctx context.Context, tutorID, draftID string) (*models.ScheduleDraft, error) {
	return s.Drafts.Get(ctx, tutorID, draftID)
}

// mutate loads the draft, applies fn to its schedule, and stores it back when
// fn reports a change. Guarded no-ops (unknown targets, booked ranges) return
// the draft unchanged without error, keeping stale UI events harmless.
func (s *DefaultScheduleService) mutate(ctx context.Context, tutorID, draftID string, fn func(*models.WeeklySchedule) bool) (*models.ScheduleDraft, error) {
	draft, err := s.Drafts.Get(ctx, tutorID, draftID)
	if err != nil {
		return nil, err
	}
	if !fn(draft.Schedule) {
		return draft, nil
	}
	draft.Dirty = true
	if err := s.Drafts.Put(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return draft, nil
}

func (s *DefaultScheduleService) ToggleDay(ctx context.Context, tutorID, draftID, dayKey string) (*models.ScheduleDraft, error) {
	return s.mutate(ctx, tutorID, draftID, func(sched *models.WeeklySchedule) bool {
		return ToggleDay(sched, dayKey)
	})
}

func (s *DefaultScheduleService) AddRange(ctx context.Context, tutorID, draftID, dayKey string) (*models.ScheduleDraft, error) {
	return s.mutate(ctx, tutorID, draftID, func(sched *models.WeeklySchedule) bool {
		return AddRange(sched, dayKey)
	})
}

func (s *DefaultScheduleService) UpdateRange(ctx context.Context, tutorID, draftID, dayKey string, rangeID int, field, value string) (*models.ScheduleDraft, error) {
	return s.mutate(ctx, tutorID, draftID, func(sched *models.WeeklySchedule) bool {
		return UpdateRange(sched, dayKey, rangeID, field, value)
	})
}

func (s *DefaultScheduleService) RemoveRange(ctx context.Context, tutorID, draftID, dayKey string, rangeID int) (*models.ScheduleDraft, error) {
	return s.mutate(ctx, tutorID, draftID, func(sched *models.WeeklySchedule) bool {
		return RemoveRange(sched, dayKey, rangeID)
	})
}

func (s *DefaultScheduleService) CopyDayToAll(ctx context.Context, tutorID, draftID, sourceDayKey string) (*models.ScheduleDraft, error) {
	draft, err := s.Drafts.Get(ctx, tutorID, draftID)
	if err != nil {
		return nil, err
	}
	if err := CopyDayToAll(draft.Schedule, sourceDayKey); err != nil {
		return nil, err
	}
	draft.Dirty = true
	if err := s.Drafts.Put(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return draft, nil
}

func (s *DefaultScheduleService) ApplyPreset(ctx context.Context, tutorID, draftID string, preset models.Preset) (*models.ScheduleDraft, []string, error) {
	draft, err := s.Drafts.Get(ctx, tutorID, draftID)
	if err != nil {
		return nil, nil, err
	}
	skipped, ok := ApplyPreset(draft.Schedule, preset)
	if !ok {
		return nil, nil, &ScheduleError{Code: "unknownPreset", Message: fmt.Sprintf("unknown preset %q", preset)}
	}
	draft.Dirty = true
	if err := s.Drafts.Put(ctx, draft); err != nil {
		return nil, nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return draft, skipped, nil
}

// SaveWeek serializes every enabled day into one-hour slots and submits the
// whole week in a single request. The draft is only discarded after the
// backend accepts the write, so a failed save leaves the tutor's edits intact
// for retry. Saves are last-write-wins; the backend reconciles against
// existing bookings.
func (s *DefaultScheduleService) SaveWeek(ctx context.Context, tutorID, draftID string) (*models.SaveWeekRequest, error) {
	draft, err := s.Drafts.Get(ctx, tutorID, draftID)
	if err != nil {
		return nil, err
	}
	req := &models.SaveWeekRequest{
		WeekStartDate: draft.WeekStart,
		Slots:         SerializeWeek(draft.Schedule),
	}
	if err := s.Remote.SaveWeek(ctx, tutorID, req); err != nil {
		return nil, fmt.Errorf("failed to save week %s: %w", draft.WeekStart, err)
	}
	if err := s.Drafts.Delete(ctx, tutorID, draftID); err != nil {
		s.logger().Warn("Failed to drop saved draft", zap.String("draftID", draftID), zap.Error(err))
	}
	s.logger().Info("Saved weekly availability",
		zap.String("tutorID", tutorID),
		zap.String("weekStart", draft.WeekStart),
		zap.Int("slots", len(req.Slots)))
	return req, nil
}

func (s *DefaultScheduleService) DiscardDraft(ctx context.Context, tutorID, draftID string) error {
	return s.Drafts.Delete(ctx, tutorID, draftID)
}
