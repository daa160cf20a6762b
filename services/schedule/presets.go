package schedule

import (
	"sort"
	"time"

	"tutorhive/models"
)

// ApplyPreset bulk-fills the week from a named shortcut. Days holding booked
// ranges are never overwritten or cleared; they are left untouched and
// returned as skipped so the caller can tell the tutor. Returns the skipped
// day keys and false when the preset name is unknown.
func ApplyPreset(sched *models.WeeklySchedule, preset models.Preset) (skipped []string, ok bool) {
	if !preset.Valid() {
		return nil, false
	}
	for key, day := range sched.Days {
		if hasBookedRange(day) {
			skipped = append(skipped, key)
			continue
		}
		switch preset {
		case models.PresetAllDays:
			setDay(sched, day, true)
		case models.PresetWeekdays:
			setDay(sched, day, isWeekday(key))
		case models.PresetClearAll:
			setDay(sched, day, false)
		}
	}
	sort.Strings(skipped)
	return skipped, true
}

// setDay resets a day to the preset shape: enabled days get exactly the
// default range, disabled days are emptied. Routed through the same seeding
// as ToggleDay so the default-range invariant lives in one place.
func setDay(sched *models.WeeklySchedule, day *models.DayAvailability, enabled bool) {
	day.Slots = []models.TimeRange{}
	day.IsEnabled = !enabled
	ToggleDay(sched, day.Date)
}

func isWeekday(dayKey string) bool {
	d, ok := parseDate(dayKey)
	if !ok {
		return false
	}
	return d.Weekday() != time.Saturday && d.Weekday() != time.Sunday
}
