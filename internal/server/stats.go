package server

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/showupapp/showup/internal/logger"
	"github.com/showupapp/showup/internal/storage"
	"github.com/showupapp/showup/pkg/resolution"

	"github.com/go-chi/chi/v5"
)

const recentHistoryLimit = 6

func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	id := chi.URLParam(r, "resolution_id")

	res, err := s.store.GetResolution(userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, `{"error":"resolution not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to get resolution for summary", "user_id", userID, "resolution_id", id, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}

	checkIns, err := s.store.ListCheckIns(userID, id, summaryLookback)
	if err != nil {
		// read path: degrade to empty history so the dashboard still
		// renders, but keep the failure observable
		logger.Error("Failed to list check-ins for summary, serving zero metrics",
			"user_id", userID, "resolution_id", id, "error", err)
		checkIns = nil
	}

	now := time.Now().UTC()
	done := 0
	for _, c := range checkIns {
		if c.Status == resolution.CheckInDone {
			done++
		}
	}

	summary := SummaryResponse{
		ResolutionID:      res.ID,
		Cadence:           res.Cadence,
		Streak:            resolution.Streak(res.Cadence, checkIns, now),
		DoneCount:         done,
		CompletionRate:    resolution.CompletionRate(checkIns),
		ProgressPercent:   resolution.ProgressPercent(res.Cadence, checkIns),
		CurrentPeriodDone: resolution.DoneInPeriod(res.Cadence, checkIns, now),
	}
	if err := writeJSON(w, http.StatusOK, summary); err != nil {
		logger.Error("Failed to serialize summary response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) getAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	filterID := r.URL.Query().Get("resolution_id")

	histories, err := s.activeHistories(userID)
	if err != nil {
		logger.Error("Failed to load histories for analytics", "user_id", userID, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}

	display := histories
	if filterID != "" {
		display = nil
		for _, h := range histories {
			if h.Resolution.ID == filterID {
				display = []resolution.History{h}
				break
			}
		}
		if display == nil {
			http.Error(w, `{"error":"resolution not found"}`, http.StatusNotFound)
			return
		}
	}

	now := time.Now().UTC()

	// completion counts span every resolution; streak and chart follow
	// the filter, matching the analytics view
	total, done := 0, 0
	var allCheckIns []resolution.CheckIn
	for _, h := range histories {
		total += len(h.CheckIns)
		allCheckIns = append(allCheckIns, h.CheckIns...)
		for _, c := range h.CheckIns {
			if c.Status == resolution.CheckInDone {
				done++
			}
		}
	}

	maxStreak := 0
	for _, h := range display {
		if st := resolution.Streak(h.Resolution.Cadence, h.CheckIns, now); st > maxStreak {
			maxStreak = st
		}
	}

	rate := resolution.CompletionRate(allCheckIns)
	resp := AnalyticsResponse{
		BestStreak:     maxStreak,
		CompletionRate: rate,
		StarActions:    done,
		FocusScore:     resolution.FocusScore(total, maxStreak, rate),
		Chart:          resolution.ChartBuckets(display, now),
		Recent:         recentHistory(display),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize analytics response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) activeHistories(userID string) ([]resolution.History, error) {
	list, err := s.store.ListResolutions(userID)
	if err != nil {
		return nil, err
	}

	histories := []resolution.History{}
	for _, res := range list {
		if res.Status != resolution.StatusActive {
			continue
		}
		checkIns, err := s.store.ListCheckIns(userID, res.ID, 0)
		if err != nil {
			return nil, err
		}
		histories = append(histories, resolution.History{Resolution: res, CheckIns: checkIns})
	}
	return histories, nil
}

func recentHistory(histories []resolution.History) []HistoryEntry {
	entries := []HistoryEntry{}
	for _, h := range histories {
		for _, c := range h.CheckIns {
			entries = append(entries, HistoryEntry{
				ResolutionID:    h.Resolution.ID,
				ResolutionTitle: h.Resolution.Title,
				Date:            c.Date.Format(time.RFC3339),
				Status:          c.Status,
			})
		}
	}
	slices.SortFunc(entries, func(a, b HistoryEntry) int {
		// RFC3339 sorts lexicographically; newest first
		if a.Date > b.Date {
			return -1
		}
		if a.Date < b.Date {
			return 1
		}
		return 0
	})
	if len(entries) > recentHistoryLimit {
		entries = entries[:recentHistoryLimit]
	}
	return entries
}
