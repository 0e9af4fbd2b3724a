package resolution

import (
	"fmt"
	"math"
	"time"
)

const (
	dailyTargetPeriods  = 30
	weeklyTargetPeriods = 4
)

// CompletionRate returns the percentage of check-ins recorded as DONE,
// rounded to the nearest integer. An empty history is 0, not an error.
func CompletionRate(checkIns []CheckIn) int {
	if len(checkIns) == 0 {
		return 0
	}
	done := 0
	for _, c := range checkIns {
		if c.Status == CheckInDone {
			done++
		}
	}
	return roundPercent(done, len(checkIns))
}

// ProgressPercent measures progress toward a fixed target window: 30 DONE
// days for daily resolutions, 4 distinct DONE weeks for weekly ones.
// Capped at 100.
func ProgressPercent(cadence Cadence, checkIns []CheckIn) int {
	var percent int
	if cadence == CadenceWeekly {
		weeks := map[time.Time]struct{}{}
		for _, c := range checkIns {
			if c.Status == CheckInDone {
				weeks[StartOfWeek(c.Date)] = struct{}{}
			}
		}
		percent = roundPercent(len(weeks), weeklyTargetPeriods)
	} else {
		done := 0
		for _, c := range checkIns {
			if c.Status == CheckInDone {
				done++
			}
		}
		percent = roundPercent(done, dailyTargetPeriods)
	}
	return min(percent, 100)
}

// FocusScore is the composite display heuristic shown on the analytics page:
// 7 + maxStreak/10 + completionRate/50, formatted with one fractional digit.
// It is intentionally unbounded above and drops to the literal "0.0" when
// there is no history at all.
func FocusScore(totalCheckIns, maxStreak, completionRate int) string {
	if totalCheckIns == 0 {
		return "0.0"
	}
	score := 7 + float64(maxStreak)/10 + float64(completionRate)/50
	return fmt.Sprintf("%.1f", score)
}

func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
