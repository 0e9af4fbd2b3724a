// Package digest selects, per user, the active resolutions still waiting for
// a check-in in the current period and hands them to a notifier. Users who
// already showed up are left alone.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/showupapp/showup/internal/logger"
	"github.com/showupapp/showup/pkg/resolution"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Only the current period matters, so a short tail of history is plenty.
const recentLookback = 10

const defaultName = "Achiever"

type Result struct {
	UserID string `json:"user_id"`
	Status string `json:"status"` // sent | failed | skipped
	Err    error  `json:"-"`
}

var digestEmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "showup_digest_emails_total",
		Help: "Digest runs broken down by per-user outcome",
	},
	[]string{"status"},
)

// Pending returns the titles of resolutions with no DONE check-in yet for
// the period containing now, grouped by owning user. Pure selection: no
// side effects, stable order within a user.
func Pending(histories []resolution.History, now time.Time) map[string][]string {
	pending := map[string][]string{}
	for _, h := range histories {
		if h.Resolution.Status != resolution.StatusActive {
			continue
		}
		if resolution.DoneInPeriod(h.Resolution.Cadence, h.CheckIns, now) {
			continue
		}
		uid := h.Resolution.UserID
		pending[uid] = append(pending[uid], h.Resolution.Title)
	}
	return pending
}

// Run assembles each user's pending list and dispatches one digest per user
// with something left to do. Re-running is idempotent at the data layer;
// duplicate sends are the notifier's concern.
func Run(ctx context.Context, q Querier, n Notifier, now time.Time) ([]Result, error) {
	userIDs, err := q.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	results := []Result{}
	for _, userID := range userIDs {
		res, err := runForUser(ctx, q, n, userID, now)
		if err != nil {
			return results, err
		}
		digestEmailsTotal.WithLabelValues(res.Status).Inc()
		results = append(results, res)
	}
	return results, nil
}

func runForUser(ctx context.Context, q Querier, n Notifier, userID string, now time.Time) (Result, error) {
	resolutions, err := q.ListActiveResolutions(ctx, userID)
	if err != nil {
		return Result{}, fmt.Errorf("list resolutions for %s: %w", userID, err)
	}

	histories := make([]resolution.History, 0, len(resolutions))
	for _, r := range resolutions {
		checkIns, err := q.ListRecentCheckIns(ctx, userID, r.ID, recentLookback)
		if err != nil {
			return Result{}, fmt.Errorf("list check-ins for %s/%s: %w", userID, r.ID, err)
		}
		histories = append(histories, resolution.History{Resolution: r, CheckIns: checkIns})
	}

	pending := Pending(histories, now)[userID]
	if len(pending) == 0 {
		logger.Debug("Nothing pending, skipping digest", "user_id", userID)
		return Result{UserID: userID, Status: "skipped"}, nil
	}

	profile, err := q.GetProfile(ctx, userID)
	if err != nil {
		return Result{}, fmt.Errorf("get profile for %s: %w", userID, err)
	}
	if profile.Email == "" {
		logger.Warn("No contact email on file, skipping digest", "user_id", userID)
		return Result{UserID: userID, Status: "skipped"}, nil
	}

	name := profile.FirstName
	if name == "" {
		name = defaultName
	}

	if err := n.SendDigest(profile.Email, name, pending); err != nil {
		logger.Error("Failed to send digest", "user_id", userID, "error", err)
		return Result{UserID: userID, Status: "failed", Err: err}, nil
	}
	logger.Info("Digest sent", "user_id", userID, "pending", len(pending))
	return Result{UserID: userID, Status: "sent"}, nil
}
