package resolution

import (
	"testing"
	"time"
)

func TestChartBuckets_SingleDailyResolution(t *testing.T) {
	now := date(2025, time.June, 15)
	res := Resolution{ID: "res-1", Cadence: CadenceDaily, Status: StatusActive}
	histories := []History{{
		Resolution: res,
		CheckIns: []CheckIn{
			dailyCheckIn(now, CheckInDone),
			dailyCheckIn(now.AddDate(0, 0, -2), CheckInDone),
			dailyCheckIn(now.AddDate(0, 0, -4), CheckInDone),
			dailyCheckIn(now.AddDate(0, 0, -5), CheckInMissed),
		},
	}}

	buckets := ChartBuckets(histories, now)
	if len(buckets) != 7 {
		t.Fatalf("got %d buckets, want 7", len(buckets))
	}

	// Days -4, -2 and 0 are done; everything else is empty.
	wantCounts := []int{0, 0, 1, 0, 1, 0, 1}
	for i, b := range buckets {
		if b.Count != wantCounts[i] {
			t.Fatalf("bucket %d: count=%d, want %d", i, b.Count, wantCounts[i])
		}
		if b.Count == 1 {
			if b.Percent != 100 || b.Height != 100 {
				t.Fatalf("bucket %d: percent=%d height=%d, want 100/100", i, b.Percent, b.Height)
			}
		} else {
			if b.Percent != 0 {
				t.Fatalf("bucket %d: percent=%d, want 0", i, b.Percent)
			}
			if b.Height != 5 {
				t.Fatalf("bucket %d: height=%d, want floor of 5", i, b.Height)
			}
		}
	}

	if buckets[6].Label != "Sun" {
		t.Fatalf("last bucket label=%q, want Sun", buckets[6].Label)
	}
}

func TestChartBuckets_WeeklyLightsWholeWeek(t *testing.T) {
	now := date(2025, time.June, 15) // Sunday; whole window is in the week of 2025-06-09
	res := Resolution{ID: "res-1", Cadence: CadenceWeekly, Status: StatusActive}
	histories := []History{{
		Resolution: res,
		CheckIns:   []CheckIn{{ResolutionID: "res-1", Date: date(2025, time.June, 9), Status: CheckInDone}},
	}}

	buckets := ChartBuckets(histories, now)
	for i, b := range buckets {
		if b.Count != 1 || b.Percent != 100 {
			t.Fatalf("bucket %d: count=%d percent=%d, want 1/100", i, b.Count, b.Percent)
		}
	}
}

func TestChartBuckets_MixedCadences(t *testing.T) {
	now := date(2025, time.June, 15)
	daily := History{
		Resolution: Resolution{ID: "res-1", Cadence: CadenceDaily},
		CheckIns:   []CheckIn{dailyCheckIn(now, CheckInDone)},
	}
	weekly := History{
		Resolution: Resolution{ID: "res-2", Cadence: CadenceWeekly},
		CheckIns:   []CheckIn{{ResolutionID: "res-2", Date: date(2025, time.June, 9), Status: CheckInDone}},
	}

	buckets := ChartBuckets([]History{daily, weekly}, now)
	// Today both count; the rest of the window only the weekly does.
	last := buckets[6]
	if last.Count != 2 || last.Percent != 100 {
		t.Fatalf("today: count=%d percent=%d, want 2/100", last.Count, last.Percent)
	}
	first := buckets[0]
	if first.Count != 1 || first.Percent != 50 {
		t.Fatalf("six days ago: count=%d percent=%d, want 1/50", first.Count, first.Percent)
	}
}

func TestChartBuckets_NoResolutions(t *testing.T) {
	buckets := ChartBuckets(nil, date(2025, time.June, 15))
	if len(buckets) != 7 {
		t.Fatalf("got %d buckets, want 7", len(buckets))
	}
	for i, b := range buckets {
		if b.Count != 0 || b.Percent != 0 || b.Height != 5 {
			t.Fatalf("bucket %d: %+v, want zeroes with floor height", i, b)
		}
	}
}
