package schedule

import (
	"time"

	"tutorhive/models"
)

const dateLayout = "2006-01-02"

// Default range seeded onto a freshly enabled day.
const (
	defaultStartTime = "09:00"
	defaultEndTime   = "17:00"
)

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// MondayOf returns midnight of the Monday on or before t. Sunday counts as the
// last day of the week, so it rolls back 6 days rather than forward 1.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int((day.Weekday()+6)%7))
}

// WeekDates returns the seven ISO dates of the week starting at weekStart, in
// Monday..Sunday order.
func WeekDates(weekStart time.Time) [7]string {
	var dates [7]string
	for i := 0; i < 7; i++ {
		dates[i] = weekStart.AddDate(0, 0, i).Format(dateLayout)
	}
	return dates
}

// InitializeSchedule builds an empty week: all seven days present, disabled,
// with no ranges. This is the fallback when the backend has no data for the
// requested week.
func InitializeSchedule(weekStart time.Time) *models.WeeklySchedule {
	weekStart = MondayOf(weekStart)
	sched := &models.WeeklySchedule{
		WeekStart:   weekStart.Format(dateLayout),
		Days:        make(map[string]*models.DayAvailability, 7),
		NextRangeID: 1,
	}
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		key := d.Format(dateLayout)
		sched.Days[key] = &models.DayAvailability{
			Date:        key,
			DayName:     d.Weekday().String(),
			DisplayDate: d.Format("Mon 2"),
			IsEnabled:   false,
			Slots:       []models.TimeRange{},
		}
	}
	return sched
}

// MergeRemoteWeek shapes the backend's saved week into an editable schedule.
// Days with at least one range come back enabled. A malformed range fails the
// whole merge so the caller can fall back to a fresh week instead of showing
// partial data.
func MergeRemoteWeek(weekStart time.Time, remote *models.RemoteWeek) (*models.WeeklySchedule, error) {
	sched := InitializeSchedule(weekStart)
	if remote == nil {
		return sched, nil
	}
	for _, key := range WeekDates(MondayOf(weekStart)) {
		ranges := remote.Days[key]
		if len(ranges) == 0 {
			continue
		}
		day := sched.Days[key]
		for _, r := range ranges {
			start, okS := parseMinutes(r.StartTime)
			end, okE := parseMinutes(r.EndTime)
			if !okS || !okE || start >= end {
				return nil, NewMalformedWeekError(key, r.StartTime, r.EndTime)
			}
			day.Slots = append(day.Slots, models.TimeRange{
				ID:        sched.NextRangeID,
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
				IsBooked:  r.IsBooked,
			})
			sched.NextRangeID++
		}
		day.IsEnabled = true
	}
	return sched, nil
}
