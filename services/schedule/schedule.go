// Package schedule implements the weekly availability engine: week math,
// schedule mutations, and the hour-splitting serialization the marketplace
// backend persists.
//
// All mutations are total over a well-formed schedule: unknown day keys or
// range ids are silent no-ops, and ranges flagged IsBooked can never be
// removed or re-timed. Overlapping ranges within a day are permitted at edit
// time; the hour-splitter simply emits their slots and the backend
// deduplicates on save.
package schedule

import (
	"sort"

	"tutorhive/models"
)

// ToggleDay flips a day between open and closed. Enabling a day that has no
// ranges yet seeds it with the default 09:00-17:00 range so there is something
// to edit. Disabling leaves ranges in memory, so re-enabling (and any toggle
// sequence over booked ranges) loses nothing; persistence skips disabled days.
// Returns false when the day key is unknown.
func ToggleDay(sched *models.WeeklySchedule, dayKey string) bool {
	day, ok := sched.Days[dayKey]
	if !ok {
		return false
	}
	day.IsEnabled = !day.IsEnabled
	if day.IsEnabled && len(day.Slots) == 0 {
		day.Slots = append(day.Slots, models.TimeRange{
			ID:        sched.NextRangeID,
			StartTime: defaultStartTime,
			EndTime:   defaultEndTime,
		})
		sched.NextRangeID++
	}
	return true
}

// AddRange appends a new range to the day. The start chains from the last
// range's end when one exists, otherwise 09:00. The end defaults to 17:00; if
// that would not land after the computed start it is clamped to one hour past
// the start, capped at midnight. A range that cannot fit a positive duration
// (chained start at 24:00) is not added.
func AddRange(sched *models.WeeklySchedule, dayKey string) bool {
	day, ok := sched.Days[dayKey]
	if !ok {
		return false
	}
	startMin := 9 * 60
	if n := len(day.Slots); n > 0 {
		if m, ok := parseMinutes(day.Slots[n-1].EndTime); ok {
			startMin = m
		}
	}
	if startMin >= minutesPerDay {
		return false
	}
	endMin := 17 * 60
	if endMin <= startMin {
		endMin = startMin + 60
		if endMin > minutesPerDay {
			endMin = minutesPerDay
		}
	}
	day.Slots = append(day.Slots, models.TimeRange{
		ID:        sched.NextRangeID,
		StartTime: formatMinutes(startMin),
		EndTime:   formatMinutes(endMin),
	})
	sched.NextRangeID++
	return true
}

// RemoveRange deletes the identified range. Booked ranges are protected: a
// student already committed to that slot, so the call is a guarded no-op even
// when invoked directly rather than through the UI.
func RemoveRange(sched *models.WeeklySchedule, dayKey string, rangeID int) bool {
	day, ok := sched.Days[dayKey]
	if !ok {
		return false
	}
	for i, r := range day.Slots {
		if r.ID != rangeID {
			continue
		}
		if r.IsBooked {
			return false
		}
		day.Slots = append(day.Slots[:i], day.Slots[i+1:]...)
		return true
	}
	return false
}

// Fields accepted by UpdateRange.
const (
	FieldStartTime = "startTime"
	FieldEndTime   = "endTime"
)

// UpdateRange sets startTime or endTime on the identified range. Booked ranges
// are immutable, unknown targets and unparseable values are no-ops. No
// cross-range overlap validation happens here; see the package comment.
func UpdateRange(sched *models.WeeklySchedule, dayKey string, rangeID int, field, value string) bool {
	day, ok := sched.Days[dayKey]
	if !ok {
		return false
	}
	if _, ok := parseMinutes(value); !ok {
		return false
	}
	for i := range day.Slots {
		r := &day.Slots[i]
		if r.ID != rangeID {
			continue
		}
		if r.IsBooked {
			return false
		}
		switch field {
		case FieldStartTime:
			r.StartTime = value
		case FieldEndTime:
			r.EndTime = value
		default:
			return false
		}
		return true
	}
	return false
}

// CopyDayToAll overwrites every other day with a structural copy of the
// source day's enablement and ranges, assigning fresh ids to each copy. The
// copy is refused outright when any destination day holds a booked range,
// since blindly overwriting would drop committed bookings from the local
// view. An unknown source day is a no-op.
func CopyDayToAll(sched *models.WeeklySchedule, sourceDayKey string) error {
	source, ok := sched.Days[sourceDayKey]
	if !ok {
		return nil
	}
	var conflicts []string
	for key, day := range sched.Days {
		if key == sourceDayKey {
			continue
		}
		if hasBookedRange(day) {
			conflicts = append(conflicts, key)
		}
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return NewBookedConflictError(conflicts)
	}
	for key, day := range sched.Days {
		if key == sourceDayKey {
			continue
		}
		day.IsEnabled = source.IsEnabled
		day.Slots = make([]models.TimeRange, 0, len(source.Slots))
		for _, r := range source.Slots {
			day.Slots = append(day.Slots, models.TimeRange{
				ID:        sched.NextRangeID,
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
			})
			sched.NextRangeID++
		}
	}
	return nil
}

func hasBookedRange(day *models.DayAvailability) bool {
	for _, r := range day.Slots {
		if r.IsBooked {
			return true
		}
	}
	return false
}
