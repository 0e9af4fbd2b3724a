package resolution

import (
	"slices"
	"time"
)

// Streak computes the current consecutive-period streak for a resolution.
//
// Daily cadence counts consecutive DONE records walking newest-first and
// stops at the first non-DONE record. It deliberately does not require the
// recorded dates to be contiguous calendar days: a silent gap only breaks
// the streak if a MISSED record was written for it.
//
// Weekly cadence walks backward one week at a time from the week containing
// now. The current week is still open, so an empty current week steps over
// and keeps counting; any earlier week without a DONE check-in ends the
// streak.
func Streak(cadence Cadence, checkIns []CheckIn, now time.Time) int {
	if cadence == CadenceWeekly {
		return weeklyStreak(checkIns, now)
	}
	return dailyStreak(checkIns)
}

func dailyStreak(checkIns []CheckIn) int {
	sorted := slices.Clone(checkIns)
	slices.SortFunc(sorted, func(a, b CheckIn) int {
		return b.Date.Compare(a.Date)
	})

	streak := 0
	for _, c := range sorted {
		if c.Status != CheckInDone {
			break
		}
		streak++
	}
	return streak
}

func weeklyStreak(checkIns []CheckIn, now time.Time) int {
	currentWeek := StartOfWeek(now)
	probe := currentWeek

	streak := 0
	for {
		done := false
		for _, c := range checkIns {
			if c.Status == CheckInDone && StartOfWeek(c.Date).Equal(probe) {
				done = true
				break
			}
		}
		if done {
			streak++
			probe = probe.AddDate(0, 0, -7)
			continue
		}
		// The current week hasn't ended yet, so not being done doesn't
		// break an existing streak.
		if probe.Equal(currentWeek) {
			probe = probe.AddDate(0, 0, -7)
			continue
		}
		return streak
	}
}

// DoneInPeriod reports whether any check-in records DONE for the period
// containing now. This is the shared "already showed up" test used by the
// summary endpoint and the reminder digest.
func DoneInPeriod(cadence Cadence, checkIns []CheckIn, now time.Time) bool {
	period := PeriodStart(cadence, now)
	for _, c := range checkIns {
		if c.Status == CheckInDone && PeriodStart(cadence, c.Date).Equal(period) {
			return true
		}
	}
	return false
}
