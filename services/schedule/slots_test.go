package schedule

import (
	"testing"

	"tutorhive/models"
)

func ranges(pairs ...[2]string) []models.TimeRange {
	out := make([]models.TimeRange, 0, len(pairs))
	for i, p := range pairs {
		out = append(out, models.TimeRange{ID: i + 1, StartTime: p[0], EndTime: p[1]})
	}
	return out
}

func TestSplitIntoHourlySlots(t *testing.T) {
	cases := []struct {
		name string
		in   []models.TimeRange
		want [][2]string
	}{
		{
			"three full hours",
			ranges([2]string{"09:00", "12:00"}),
			[][2]string{{"09:00", "10:00"}, {"10:00", "11:00"}, {"11:00", "12:00"}},
		},
		{
			"partial hour dropped entirely",
			ranges([2]string{"09:00", "09:45"}),
			nil,
		},
		{
			"trailing half hour truncated",
			ranges([2]string{"09:00", "10:30"}),
			[][2]string{{"09:00", "10:00"}},
		},
		{
			"off-hour boundaries keep their minutes",
			ranges([2]string{"09:30", "11:30"}),
			[][2]string{{"09:30", "10:30"}, {"10:30", "11:30"}},
		},
		{
			"multiple ranges concatenate in order",
			ranges([2]string{"09:00", "10:00"}, [2]string{"18:00", "19:00"}),
			[][2]string{{"09:00", "10:00"}, {"18:00", "19:00"}},
		},
		{
			"range ending at midnight",
			ranges([2]string{"23:00", "24:00"}),
			[][2]string{{"23:00", "24:00"}},
		},
		{
			"inverted range yields nothing",
			ranges([2]string{"12:00", "09:00"}),
			nil,
		},
		{
			"unparseable times are skipped",
			ranges([2]string{"soon", "later"}),
			nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitIntoHourlySlots("2024-01-01", tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d slots, want %d: %+v", len(got), len(tc.want), got)
			}
			for i, w := range tc.want {
				if got[i].StartTime != w[0] || got[i].EndTime != w[1] {
					t.Errorf("slot %d = %s-%s, want %s-%s", i, got[i].StartTime, got[i].EndTime, w[0], w[1])
				}
				if got[i].Date != "2024-01-01" {
					t.Errorf("slot %d carries date %s", i, got[i].Date)
				}
			}
		})
	}
}

func TestSerializeWeekSkipsDisabledDays(t *testing.T) {
	sched := InitializeSchedule(date(2024, 1, 1))
	ToggleDay(sched, "2024-01-01") // enabled, seeded 09:00-17:00
	sched.Days["2024-01-02"].Slots = ranges([2]string{"10:00", "12:00"})
	// Tuesday holds ranges but stays disabled; it must not serialize.

	slots := SerializeWeek(sched)
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots from Monday only, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Date != "2024-01-01" {
			t.Errorf("unexpected slot on %s", s.Date)
		}
	}
}
