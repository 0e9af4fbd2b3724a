package resolution

import (
	"testing"
	"time"
)

func dailyCheckIn(day time.Time, status CheckInStatus) CheckIn {
	return CheckIn{ResolutionID: "res-1", Date: day, Status: status}
}

func TestStreak_DailyEmpty(t *testing.T) {
	if got := Streak(CadenceDaily, nil, date(2025, time.June, 15)); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestStreak_DailyStopsAtMissed(t *testing.T) {
	now := date(2025, time.June, 15)
	checkIns := []CheckIn{
		dailyCheckIn(now, CheckInDone),
		dailyCheckIn(now.AddDate(0, 0, -1), CheckInDone),
		dailyCheckIn(now.AddDate(0, 0, -2), CheckInDone),
		dailyCheckIn(now.AddDate(0, 0, -3), CheckInMissed),
		dailyCheckIn(now.AddDate(0, 0, -4), CheckInDone),
	}
	if got := Streak(CadenceDaily, checkIns, now); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestStreak_DailyUnsortedInput(t *testing.T) {
	now := date(2025, time.June, 15)
	checkIns := []CheckIn{
		dailyCheckIn(now.AddDate(0, 0, -2), CheckInMissed),
		dailyCheckIn(now, CheckInDone),
		dailyCheckIn(now.AddDate(0, 0, -1), CheckInDone),
	}
	if got := Streak(CadenceDaily, checkIns, now); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestStreak_DailySurvivesUnrecordedGap(t *testing.T) {
	// Consecutive DONE records with a silent calendar gap still count: only
	// an explicit MISSED record breaks the run.
	now := date(2025, time.June, 15)
	checkIns := []CheckIn{
		dailyCheckIn(now, CheckInDone),
		dailyCheckIn(now.AddDate(0, 0, -5), CheckInDone),
	}
	if got := Streak(CadenceDaily, checkIns, now); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestStreak_WeeklyCurrentWeekOpen(t *testing.T) {
	// DONE in each of the 3 prior weeks, nothing yet this week: the open
	// week must not break the streak.
	now := date(2025, time.June, 11) // Wednesday, week of 2025-06-09
	week := StartOfWeek(now)
	checkIns := []CheckIn{
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, -7), Status: CheckInDone},
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, -14), Status: CheckInDone},
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, -21), Status: CheckInDone},
	}
	if got := Streak(CadenceWeekly, checkIns, now); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestStreak_WeeklyCurrentWeekDoneCounts(t *testing.T) {
	now := date(2025, time.June, 11)
	week := StartOfWeek(now)
	checkIns := []CheckIn{
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, 1), Status: CheckInDone},
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, -7), Status: CheckInDone},
	}
	if got := Streak(CadenceWeekly, checkIns, now); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestStreak_WeeklyGapBreaks(t *testing.T) {
	now := date(2025, time.June, 11)
	week := StartOfWeek(now)
	checkIns := []CheckIn{
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, -7), Status: CheckInDone},
		// nothing two weeks back
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, -21), Status: CheckInDone},
	}
	if got := Streak(CadenceWeekly, checkIns, now); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestStreak_WeeklyMissedDoesNotCount(t *testing.T) {
	now := date(2025, time.June, 11)
	week := StartOfWeek(now)
	checkIns := []CheckIn{
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, -7), Status: CheckInMissed},
		{ResolutionID: "res-1", Date: week.AddDate(0, 0, -14), Status: CheckInDone},
	}
	if got := Streak(CadenceWeekly, checkIns, now); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestStreak_WeeklyEmpty(t *testing.T) {
	if got := Streak(CadenceWeekly, nil, date(2025, time.June, 11)); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestDoneInPeriod_Daily(t *testing.T) {
	now := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC)
	checkIns := []CheckIn{dailyCheckIn(date(2025, time.June, 15), CheckInDone)}
	if !DoneInPeriod(CadenceDaily, checkIns, now) {
		t.Fatal("expected today's DONE check-in to count")
	}
	if DoneInPeriod(CadenceDaily, checkIns, now.AddDate(0, 0, 1)) {
		t.Fatal("yesterday's check-in should not count for today")
	}
}

func TestDoneInPeriod_WeeklyAnyDayOfWeek(t *testing.T) {
	// A DONE recorded on Tuesday covers the whole week.
	now := date(2025, time.June, 15) // Sunday, same week as 2025-06-10
	checkIns := []CheckIn{{ResolutionID: "res-1", Date: date(2025, time.June, 10), Status: CheckInDone}}
	if !DoneInPeriod(CadenceWeekly, checkIns, now) {
		t.Fatal("expected Tuesday's DONE to cover Sunday of the same week")
	}
}

func TestDoneInPeriod_MissedIsNotDone(t *testing.T) {
	now := date(2025, time.June, 15)
	checkIns := []CheckIn{dailyCheckIn(now, CheckInMissed)}
	if DoneInPeriod(CadenceDaily, checkIns, now) {
		t.Fatal("MISSED must not count as done")
	}
}
