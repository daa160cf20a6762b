package models

// TimeRange is a tutor-edited interval within one day. Times are wall-clock
// "HH:MM" (24-hour) local to the tutor's schedule. Ranges flagged IsBooked were
// split from slots that already carry a confirmed booking and must never be
// removed or re-timed locally; the backend owns that state.
type TimeRange struct {
	ID        int    `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

// DayAvailability holds one day of a displayed week.
type DayAvailability struct {
	Date        string      `json:"date"` // ISO date, e.g. "2024-01-01"
	DayName     string      `json:"dayName"`
	DisplayDate string      `json:"displayDate"` // e.g. "Mon 14"
	IsEnabled   bool        `json:"isEnabled"`
	Slots       []TimeRange `json:"slots"`
}

// WeeklySchedule maps the 7 ISO dates of one week to their availability.
// Range ids are assigned from NextRangeID, a monotonic counter scoped to the
// schedule, so copies and rapid sequential edits can never collide.
type WeeklySchedule struct {
	WeekStart   string                      `json:"weekStart"` // Monday, ISO date
	Days        map[string]*DayAvailability `json:"days"`
	NextRangeID int                         `json:"nextRangeId"`
}

// BookableSlot is the persistence unit: exactly one hour, produced by splitting
// a TimeRange on hour boundaries. The backend stores these and reports booked
// state per slot on the next fetch.
type BookableSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RemoteRange is one existing range as reported by the backend.
type RemoteRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

// RemoteWeek is the backend's representation of one saved week: per-day lists
// of existing ranges keyed by ISO date.
type RemoteWeek struct {
	WeekStartDate string                   `json:"weekStartDate"`
	Days          map[string][]RemoteRange `json:"days"`
}

// SaveWeekRequest is the single wholesale write the backend accepts: the full
// hour-split slot list for every enabled day of the week.
type SaveWeekRequest struct {
	WeekStartDate string         `json:"weekStartDate"`
	Slots         []BookableSlot `json:"slots"`
}

// Preset names a bulk-fill shortcut applied across the whole week.
type Preset string

const (
	PresetAllDays  Preset = "all-days" // every day enabled, 09:00-17:00
	PresetWeekdays Preset = "weekdays" // Mon-Fri enabled, weekend cleared
	PresetClearAll Preset = "clear"    // every day disabled and emptied
)

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	switch p {
	case PresetAllDays, PresetWeekdays, PresetClearAll:
		return true
	}
	return false
}
