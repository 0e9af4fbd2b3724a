package server

import (
	"github.com/showupapp/showup/pkg/resolution"
)

type ResolutionListResponse struct {
	Resolutions []resolution.Resolution `json:"resolutions"`
}

type CheckInListResponse struct {
	ResolutionID string               `json:"resolution_id"`
	CheckIns     []resolution.CheckIn `json:"check_ins"`
}

type SummaryResponse struct {
	ResolutionID      string             `json:"resolution_id"`
	Cadence           resolution.Cadence `json:"cadence"`
	Streak            int                `json:"streak"`
	DoneCount         int                `json:"done_count"`
	CompletionRate    int                `json:"completion_rate"`
	ProgressPercent   int                `json:"progress_percent"`
	CurrentPeriodDone bool               `json:"current_period_done"`
}

type HistoryEntry struct {
	ResolutionID    string                   `json:"resolution_id"`
	ResolutionTitle string                   `json:"resolution_title"`
	Date            string                   `json:"date"`
	Status          resolution.CheckInStatus `json:"status"`
}

type AnalyticsResponse struct {
	BestStreak     int                      `json:"best_streak"`
	CompletionRate int                      `json:"completion_rate"`
	StarActions    int                      `json:"star_actions"`
	FocusScore     string                   `json:"focus_score"`
	Chart          []resolution.ChartBucket `json:"chart"`
	Recent         []HistoryEntry           `json:"recent"`
}

type SearchResult struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Action string `json:"action"`
}
