package resolution

import "time"

// A bucket with no activity still renders a sliver of bar.
const minBucketHeight = 5

// History pairs a resolution with its check-ins for cross-resolution
// computations (charts, analytics, digests).
type History struct {
	Resolution Resolution `json:"resolution"`
	CheckIns   []CheckIn  `json:"check_ins"`
}

// ChartBucket is one day of the trailing-week activity chart.
type ChartBucket struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
	Height  int    `json:"height"`
}

// ChartBuckets maps the trailing 7 calendar days (ending with the day
// containing now) to per-day completion across the given resolutions.
// A daily resolution counts on the day it was checked in DONE; a weekly
// DONE lights up every day of its week. Percent is the share of
// resolutions done that day, Height is the same with the presentation
// floor applied.
func ChartBuckets(histories []History, now time.Time) []ChartBucket {
	today := StartOfDay(now)
	buckets := make([]ChartBucket, 0, 7)

	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)

		count := 0
		for _, h := range histories {
			cadence := h.Resolution.Cadence
			if DoneInPeriod(cadence, h.CheckIns, day) {
				count++
			}
		}

		percent := 0
		if len(histories) > 0 {
			percent = roundPercent(count, len(histories))
		}
		buckets = append(buckets, ChartBucket{
			Label:   day.Format("Mon"),
			Count:   count,
			Percent: percent,
			Height:  max(percent, minBucketHeight),
		})
	}
	return buckets
}
