package schedule

import (
	"testing"
	"time"

	"tutorhive/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday stays", date(2024, 1, 1), "2024-01-01"},
		{"wednesday rolls back", date(2024, 1, 3), "2024-01-01"},
		{"saturday rolls back", date(2024, 1, 6), "2024-01-01"},
		{"sunday rolls back six days, not forward", date(2024, 1, 7), "2024-01-01"},
		{"next monday is a new week", date(2024, 1, 8), "2024-01-08"},
		{"across month boundary", date(2024, 3, 2), "2024-02-26"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MondayOf(tc.in)
			if got.Format(dateLayout) != tc.want {
				t.Errorf("MondayOf(%s) = %s, want %s", tc.in.Format(dateLayout), got.Format(dateLayout), tc.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("MondayOf(%s) fell on %s", tc.in.Format(dateLayout), got.Weekday())
			}
			if again := MondayOf(got); !again.Equal(got) {
				t.Errorf("MondayOf is not idempotent: %s -> %s", got, again)
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	weekStart := date(2024, 1, 1)
	dates := WeekDates(weekStart)

	if dates[0] != weekStart.Format(dateLayout) {
		t.Errorf("first date = %s, want %s", dates[0], weekStart.Format(dateLayout))
	}
	for i := 1; i < 7; i++ {
		prev, _ := time.Parse(dateLayout, dates[i-1])
		cur, _ := time.Parse(dateLayout, dates[i])
		if cur.Sub(prev) != 24*time.Hour {
			t.Errorf("dates[%d]=%s is not one day after dates[%d]=%s", i, dates[i], i-1, dates[i-1])
		}
	}
}

func TestInitializeSchedule(t *testing.T) {
	sched := InitializeSchedule(date(2024, 1, 3)) // Wednesday, normalizes to Monday

	if sched.WeekStart != "2024-01-01" {
		t.Fatalf("WeekStart = %s, want 2024-01-01", sched.WeekStart)
	}
	if len(sched.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(sched.Days))
	}
	for key, day := range sched.Days {
		if day.IsEnabled {
			t.Errorf("day %s should start disabled", key)
		}
		if len(day.Slots) != 0 {
			t.Errorf("day %s should start with no ranges", key)
		}
	}
	monday := sched.Days["2024-01-01"]
	if monday.DayName != "Monday" || monday.DisplayDate != "Mon 1" {
		t.Errorf("monday labels = %q / %q", monday.DayName, monday.DisplayDate)
	}
}

func TestMergeRemoteWeek(t *testing.T) {
	remote := &models.RemoteWeek{
		WeekStartDate: "2024-01-01",
		Days: map[string][]models.RemoteRange{
			"2024-01-01": {
				{StartTime: "09:00", EndTime: "10:00", IsBooked: true},
				{StartTime: "14:00", EndTime: "16:00"},
			},
		},
	}

	sched, err := MergeRemoteWeek(date(2024, 1, 1), remote)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	monday := sched.Days["2024-01-01"]
	if !monday.IsEnabled {
		t.Error("day with remote ranges should be enabled")
	}
	if len(monday.Slots) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(monday.Slots))
	}
	if !monday.Slots[0].IsBooked {
		t.Error("booked flag lost in merge")
	}
	if monday.Slots[0].ID == monday.Slots[1].ID {
		t.Error("merged ranges share an id")
	}
	if tuesday := sched.Days["2024-01-02"]; tuesday.IsEnabled {
		t.Error("day without remote ranges should stay disabled")
	}
}

func TestMergeRemoteWeekMalformed(t *testing.T) {
	cases := []models.RemoteRange{
		{StartTime: "", EndTime: "10:00"},
		{StartTime: "9am", EndTime: "10:00"},
		{StartTime: "10:00", EndTime: "09:00"}, // inverted
		{StartTime: "09:00", EndTime: "09:00"}, // empty
	}
	for _, bad := range cases {
		remote := &models.RemoteWeek{
			Days: map[string][]models.RemoteRange{"2024-01-01": {bad}},
		}
		if _, err := MergeRemoteWeek(date(2024, 1, 1), remote); !IsCode(err, "malformedWeek") {
			t.Errorf("range %+v: expected malformedWeek error, got %v", bad, err)
		}
	}
}

func TestMergeRemoteWeekNil(t *testing.T) {
	sched, err := MergeRemoteWeek(date(2024, 1, 1), nil)
	if err != nil {
		t.Fatalf("nil remote should merge to an empty week: %v", err)
	}
	if len(sched.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(sched.Days))
	}
}
