package resolution

import (
	"testing"
	"time"
)

func TestCompletionRate_Empty(t *testing.T) {
	if got := CompletionRate(nil); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestCompletionRate_Rounds(t *testing.T) {
	day := date(2025, time.June, 1)
	checkIns := []CheckIn{
		dailyCheckIn(day, CheckInDone),
		dailyCheckIn(day.AddDate(0, 0, 1), CheckInDone),
		dailyCheckIn(day.AddDate(0, 0, 2), CheckInMissed),
	}
	// 2/3 rounds to 67.
	if got := CompletionRate(checkIns); got != 67 {
		t.Fatalf("got %d, want 67", got)
	}
}

func TestCompletionRate_Bounds(t *testing.T) {
	day := date(2025, time.June, 1)
	all := []CheckIn{dailyCheckIn(day, CheckInDone)}
	if got := CompletionRate(all); got != 100 {
		t.Fatalf("all done: got %d, want 100", got)
	}
	none := []CheckIn{dailyCheckIn(day, CheckInMissed)}
	if got := CompletionRate(none); got != 0 {
		t.Fatalf("none done: got %d, want 0", got)
	}
}

func TestProgressPercent_Daily(t *testing.T) {
	day := date(2025, time.June, 1)
	var checkIns []CheckIn
	for i := 0; i < 6; i++ {
		checkIns = append(checkIns, dailyCheckIn(day.AddDate(0, 0, i), CheckInDone))
	}
	checkIns = append(checkIns, dailyCheckIn(day.AddDate(0, 0, 7), CheckInMissed))
	// 6 of the 30-day target window.
	if got := ProgressPercent(CadenceDaily, checkIns); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestProgressPercent_DailyCapsAt100(t *testing.T) {
	day := date(2025, time.May, 1)
	var checkIns []CheckIn
	for i := 0; i < 45; i++ {
		checkIns = append(checkIns, dailyCheckIn(day.AddDate(0, 0, i), CheckInDone))
	}
	if got := ProgressPercent(CadenceDaily, checkIns); got != 100 {
		t.Fatalf("got %d, want 100", got)
	}
}

func TestProgressPercent_WeeklyDistinctWeeks(t *testing.T) {
	week := date(2025, time.June, 9)
	checkIns := []CheckIn{
		// Two DONE entries in the same week count once.
		{ResolutionID: "res-1", Date: week, Status: CheckInDone},
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, 2), Status: CheckInDone},
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, -7), Status: CheckInDone},
	}
	// 2 of the 4-week target window.
	if got := ProgressPercent(CadenceWeekly, checkIns); got != 50 {
		t.Fatalf("got %d, want 50", got)
	}
}

func TestProgressPercent_WeeklyCapsAt100(t *testing.T) {
	week := date(2025, time.June, 9)
	var checkIns []CheckIn
	for i := 0; i < 6; i++ {
		checkIns = append(checkIns, CheckIn{
			ResolutionID: "res-1",
			Date:         week.AddDate(0, 0, -7*i),
			Status:       CheckInDone,
		})
	}
	if got := ProgressPercent(CadenceWeekly, checkIns); got != 100 {
		t.Fatalf("got %d, want 100", got)
	}
}

func TestProgressPercent_Empty(t *testing.T) {
	if got := ProgressPercent(CadenceDaily, nil); got != 0 {
		t.Fatalf("daily: got %d, want 0", got)
	}
	if got := ProgressPercent(CadenceWeekly, nil); got != 0 {
		t.Fatalf("weekly: got %d, want 0", got)
	}
}

func TestFocusScore(t *testing.T) {
	if got := FocusScore(0, 0, 0); got != "0.0" {
		t.Fatalf("empty history: got %q, want \"0.0\"", got)
	}
	// 7 + 12/10 + 80/50 = 9.8
	if got := FocusScore(20, 12, 80); got != "9.8" {
		t.Fatalf("got %q, want \"9.8\"", got)
	}
	// 7 + 3/10 + 100/50 = 9.3
	if got := FocusScore(3, 3, 100); got != "9.3" {
		t.Fatalf("got %q, want \"9.3\"", got)
	}
}
