package schedule

import (
	"testing"

	"tutorhive/models"
)

const (
	mon = "2024-01-01"
	tue = "2024-01-02"
	sat = "2024-01-06"
	sun = "2024-01-07"
)

func testWeek() *models.WeeklySchedule {
	return InitializeSchedule(date(2024, 1, 1))
}

func TestToggleDaySeedsDefaultRange(t *testing.T) {
	sched := testWeek()

	if !ToggleDay(sched, mon) {
		t.Fatal("toggle on known day should report a change")
	}
	day := sched.Days[mon]
	if !day.IsEnabled {
		t.Fatal("day should be enabled")
	}
	if len(day.Slots) != 1 || day.Slots[0].StartTime != "09:00" || day.Slots[0].EndTime != "17:00" {
		t.Fatalf("expected seeded 09:00-17:00 range, got %+v", day.Slots)
	}
}

func TestToggleDayUnknownKey(t *testing.T) {
	sched := testWeek()
	if ToggleDay(sched, "2024-06-01") {
		t.Error("unknown day key must be a no-op")
	}
}

func TestToggleDayPreservesBookedRanges(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon)
	sched.Days[mon].Slots[0].IsBooked = true

	ToggleDay(sched, mon) // off
	ToggleDay(sched, mon) // back on

	day := sched.Days[mon]
	if len(day.Slots) != 1 {
		t.Fatalf("expected the booked range to survive toggling, got %d ranges", len(day.Slots))
	}
	r := day.Slots[0]
	if !r.IsBooked || r.StartTime != "09:00" || r.EndTime != "17:00" {
		t.Errorf("booked range changed across toggles: %+v", r)
	}
}

func TestAddRangeChainsFromLastEnd(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon) // 09:00-17:00

	if !AddRange(sched, mon) {
		t.Fatal("add should succeed")
	}
	day := sched.Days[mon]
	if len(day.Slots) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(day.Slots))
	}
	second := day.Slots[1]
	if second.StartTime != "17:00" {
		t.Errorf("new range should chain from 17:00, got %s", second.StartTime)
	}
	if second.EndTime != "18:00" {
		t.Errorf("default end before chained start should clamp to one hour, got %s", second.EndTime)
	}
	if second.ID == day.Slots[0].ID {
		t.Error("range ids must be unique")
	}
}

func TestAddRangeOnEmptyDayUsesDefaults(t *testing.T) {
	sched := testWeek()
	AddRange(sched, mon)
	r := sched.Days[mon].Slots[0]
	if r.StartTime != "09:00" || r.EndTime != "17:00" {
		t.Errorf("expected default 09:00-17:00, got %s-%s", r.StartTime, r.EndTime)
	}
}

func TestAddRangeCannotPassMidnight(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon)
	UpdateRange(sched, mon, sched.Days[mon].Slots[0].ID, FieldEndTime, "23:30")

	if !AddRange(sched, mon) {
		t.Fatal("a 30-minute tail should still accept a clamped range")
	}
	last := sched.Days[mon].Slots[1]
	if last.StartTime != "23:30" || last.EndTime != "24:00" {
		t.Errorf("expected 23:30-24:00, got %s-%s", last.StartTime, last.EndTime)
	}
	if AddRange(sched, mon) {
		t.Error("no room after 24:00; add must refuse")
	}
}

func TestRemoveRange(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon)
	AddRange(sched, mon)
	first := sched.Days[mon].Slots[0].ID

	if !RemoveRange(sched, mon, first) {
		t.Fatal("remove should succeed")
	}
	if len(sched.Days[mon].Slots) != 1 {
		t.Fatalf("expected 1 remaining range, got %d", len(sched.Days[mon].Slots))
	}
	if RemoveRange(sched, mon, 9999) {
		t.Error("unknown range id must be a no-op")
	}
	if RemoveRange(sched, "2024-06-01", first) {
		t.Error("unknown day key must be a no-op")
	}
}

func TestRemoveRangeRefusesBooked(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon)
	sched.Days[mon].Slots[0].IsBooked = true
	id := sched.Days[mon].Slots[0].ID

	if RemoveRange(sched, mon, id) {
		t.Error("booked range must not be removable")
	}
	if len(sched.Days[mon].Slots) != 1 {
		t.Error("booked range disappeared")
	}
}

func TestUpdateRange(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon)
	id := sched.Days[mon].Slots[0].ID

	if !UpdateRange(sched, mon, id, FieldStartTime, "10:00") {
		t.Fatal("update should succeed")
	}
	if sched.Days[mon].Slots[0].StartTime != "10:00" {
		t.Errorf("start = %s, want 10:00", sched.Days[mon].Slots[0].StartTime)
	}

	if UpdateRange(sched, mon, id, FieldEndTime, "25:00") {
		t.Error("unparseable value must be a no-op")
	}
	if UpdateRange(sched, mon, id, "duration", "01:00") {
		t.Error("unknown field must be a no-op")
	}
	if UpdateRange(sched, mon, 9999, FieldEndTime, "18:00") {
		t.Error("unknown range id must be a no-op")
	}
}

func TestUpdateRangeRefusesBooked(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon)
	sched.Days[mon].Slots[0].IsBooked = true
	id := sched.Days[mon].Slots[0].ID

	if UpdateRange(sched, mon, id, FieldStartTime, "10:00") {
		t.Error("booked range must be immutable")
	}
	if sched.Days[mon].Slots[0].StartTime != "09:00" {
		t.Error("booked range boundary changed")
	}
}

func TestCopyDayToAll(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon)
	AddRange(sched, mon) // 17:00-18:00
	sourceIDs := map[int]bool{}
	for _, r := range sched.Days[mon].Slots {
		sourceIDs[r.ID] = true
	}

	if err := CopyDayToAll(sched, mon); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	for key, day := range sched.Days {
		if key == mon {
			continue
		}
		if !day.IsEnabled {
			t.Errorf("day %s should be enabled after copy", key)
		}
		if len(day.Slots) != 2 {
			t.Fatalf("day %s has %d ranges, want 2", key, len(day.Slots))
		}
		for i, r := range day.Slots {
			src := sched.Days[mon].Slots[i]
			if r.StartTime != src.StartTime || r.EndTime != src.EndTime {
				t.Errorf("day %s range %d = %s-%s, want %s-%s", key, i, r.StartTime, r.EndTime, src.StartTime, src.EndTime)
			}
			if sourceIDs[r.ID] {
				t.Errorf("day %s range %d reuses source id %d", key, i, r.ID)
			}
		}
	}
}

func TestCopyDayToAllRefusesBookedDestination(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon)
	ToggleDay(sched, tue)
	sched.Days[tue].Slots[0].IsBooked = true

	err := CopyDayToAll(sched, mon)
	if !IsCode(err, "bookedConflict") {
		t.Fatalf("expected bookedConflict, got %v", err)
	}
	// Refusal must leave the week untouched.
	if len(sched.Days[tue].Slots) != 1 || !sched.Days[tue].Slots[0].IsBooked {
		t.Error("refused copy still modified the destination")
	}
	if wed := sched.Days["2024-01-03"]; wed.IsEnabled || len(wed.Slots) != 0 {
		t.Error("refused copy modified an unrelated day")
	}
}

func TestCopyDayToAllUnknownSource(t *testing.T) {
	sched := testWeek()
	if err := CopyDayToAll(sched, "2024-06-01"); err != nil {
		t.Errorf("unknown source day must be a no-op, got %v", err)
	}
}

func TestApplyPresetClearAll(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon)
	ToggleDay(sched, tue)

	skipped, ok := ApplyPreset(sched, models.PresetClearAll)
	if !ok || len(skipped) != 0 {
		t.Fatalf("clear-all should apply cleanly, skipped=%v ok=%v", skipped, ok)
	}
	for key, day := range sched.Days {
		if day.IsEnabled || len(day.Slots) != 0 {
			t.Errorf("day %s not cleared: enabled=%v ranges=%d", key, day.IsEnabled, len(day.Slots))
		}
	}
}

func TestApplyPresetWeekdays(t *testing.T) {
	sched := testWeek()
	_, ok := ApplyPreset(sched, models.PresetWeekdays)
	if !ok {
		t.Fatal("weekdays preset should apply")
	}
	for key, day := range sched.Days {
		weekend := key == sat || key == sun
		if day.IsEnabled == weekend {
			t.Errorf("day %s enabled=%v", key, day.IsEnabled)
		}
		if !weekend {
			if len(day.Slots) != 1 || day.Slots[0].StartTime != "09:00" || day.Slots[0].EndTime != "17:00" {
				t.Errorf("day %s should carry the default range, got %+v", key, day.Slots)
			}
		}
	}
}

func TestApplyPresetAllDays(t *testing.T) {
	sched := testWeek()
	_, ok := ApplyPreset(sched, models.PresetAllDays)
	if !ok {
		t.Fatal("all-days preset should apply")
	}
	for key, day := range sched.Days {
		if !day.IsEnabled || len(day.Slots) != 1 {
			t.Errorf("day %s enabled=%v ranges=%d", key, day.IsEnabled, len(day.Slots))
		}
	}
}

func TestApplyPresetSkipsBookedDays(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, tue)
	sched.Days[tue].Slots[0].IsBooked = true

	skipped, ok := ApplyPreset(sched, models.PresetClearAll)
	if !ok {
		t.Fatal("preset should apply to the rest of the week")
	}
	if len(skipped) != 1 || skipped[0] != tue {
		t.Fatalf("skipped = %v, want [%s]", skipped, tue)
	}
	if !sched.Days[tue].IsEnabled || !sched.Days[tue].Slots[0].IsBooked {
		t.Error("booked day was modified by the preset")
	}
}

func TestApplyPresetUnknown(t *testing.T) {
	sched := testWeek()
	if _, ok := ApplyPreset(sched, models.Preset("fortnightly")); ok {
		t.Error("unknown preset must be rejected")
	}
}

// Mirrors the editor's happy path: enable Monday, extend it with an evening
// range, and check the persisted payload.
func TestSerializeWeekEndToEnd(t *testing.T) {
	sched := testWeek()
	ToggleDay(sched, mon) // 09:00-17:00
	AddRange(sched, mon)  // chains 17:00-18:00
	second := sched.Days[mon].Slots[1].ID
	UpdateRange(sched, mon, second, FieldStartTime, "18:00")
	UpdateRange(sched, mon, second, FieldEndTime, "19:00")

	slots := SplitIntoHourlySlots(mon, sched.Days[mon].Slots)
	if len(slots) != 9 {
		t.Fatalf("expected 9 one-hour slots (8 daytime + 1 evening), got %d", len(slots))
	}

	week := SerializeWeek(sched)
	if len(week) != 9 {
		t.Fatalf("week serialization should only contain Monday's slots, got %d", len(week))
	}
	for _, s := range week {
		if s.Date != mon {
			t.Errorf("unexpected slot on %s", s.Date)
		}
	}
	if week[8].StartTime != "18:00" || week[8].EndTime != "19:00" {
		t.Errorf("last slot = %s-%s, want 18:00-19:00", week[8].StartTime, week[8].EndTime)
	}
}
