package schedule

import (
	"fmt"

	"tutorhive/models"
)

const minutesPerDay = 24 * 60

// parseMinutes converts a wall-clock "HH:MM" string into minutes from
// midnight. "24:00" is accepted as the exclusive end of day.
func parseMinutes(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, false
	}
	return h*60 + m, true
}

// formatMinutes renders minutes from midnight back into "HH:MM".
func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// SplitIntoHourlySlots splits each range for the given date into contiguous
// one-hour bookable slots. The walk emits a slot for every full hour that fits;
// a trailing remainder shorter than an hour is dropped, not rounded up, since
// the marketplace only sells exact one-hour units (09:00-09:45 yields nothing,
// 09:00-10:30 yields a single 09:00-10:00 slot). Ranges with unparseable times
// are skipped.
func SplitIntoHourlySlots(date string, ranges []models.TimeRange) []models.BookableSlot {
	var slots []models.BookableSlot
	for _, r := range ranges {
		start, okS := parseMinutes(r.StartTime)
		end, okE := parseMinutes(r.EndTime)
		if !okS || !okE {
			continue
		}
		for cur := start; cur+60 <= end; cur += 60 {
			slots = append(slots, models.BookableSlot{
				Date:      date,
				StartTime: formatMinutes(cur),
				EndTime:   formatMinutes(cur + 60),
			})
		}
	}
	return slots
}

// SerializeWeek flattens every enabled day of the schedule into the hour-split
// slot list the backend persists, in Monday..Sunday order. Disabled days are
// skipped even if they still hold ranges in memory.
func SerializeWeek(sched *models.WeeklySchedule) []models.BookableSlot {
	weekStart, ok := parseDate(sched.WeekStart)
	if !ok {
		return nil
	}
	var slots []models.BookableSlot
	for _, key := range WeekDates(weekStart) {
		day, exists := sched.Days[key]
		if !exists || !day.IsEnabled {
			continue
		}
		slots = append(slots, SplitIntoHourlySlots(key, day.Slots)...)
	}
	return slots
}
