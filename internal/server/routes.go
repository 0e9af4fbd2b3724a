package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/showupapp/showup/internal/logger"
	"github.com/showupapp/showup/internal/storage"
	"github.com/showupapp/showup/pkg/resolution"
	"github.com/showupapp/showup/pkg/versioninfo"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	maxTitleLength = 120
	maxFieldLength = 1024
	// enough history for streak/progress over the 30-day target window
	summaryLookback = 30
	searchMaxHits   = 5
)

type resolutionRequest struct {
	Title        string `json:"title"`
	Situation    string `json:"situation"`
	Task         string `json:"task"`
	Action       string `json:"action"`
	Result       string `json:"result"`
	Cadence      string `json:"cadence"`
	ReminderTime string `json:"reminder_time"`
}

type checkInRequest struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	info := versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	}
	if err := writeJSON(w, http.StatusOK, info); err != nil {
		logger.Error("Failed to serialize version info response", "error", err)
		http.Error(w, `{"error":"failed to serialize version info"}`, http.StatusInternalServerError)
	}
}

func (s *Server) createResolution(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	logger.Debug("Creating resolution", "user_id", userID)

	var req resolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid JSON in create resolution request", "error", err)
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	res, err := resolutionFromRequest(req)
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
		return
	}
	res.ID = uuid.New().String()
	res.UserID = userID
	res.Status = resolution.StatusActive
	res.CreatedAt = time.Now().Unix()

	if err := s.store.PutResolution(userID, res); err != nil {
		logger.Error("Failed to store resolution", "user_id", userID, "error", err)
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	logger.Info("Resolution created", "user_id", userID, "resolution_id", res.ID, "cadence", res.Cadence)
	s.refreshActiveGauge(userID)

	if err := writeJSON(w, http.StatusCreated, res); err != nil {
		logger.Error("Failed to serialize resolution response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) listResolutions(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	list, err := s.store.ListResolutions(userID)
	if err != nil {
		logger.Error("Failed to list resolutions", "user_id", userID, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, ResolutionListResponse{Resolutions: list}); err != nil {
		logger.Error("Failed to serialize resolution list response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) getResolution(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	id := chi.URLParam(r, "resolution_id")

	res, err := s.store.GetResolution(userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, `{"error":"resolution not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to get resolution", "user_id", userID, "resolution_id", id, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, res); err != nil {
		logger.Error("Failed to serialize resolution response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) updateResolution(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	id := chi.URLParam(r, "resolution_id")

	existing, err := s.store.GetResolution(userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, `{"error":"resolution not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to get resolution for update", "user_id", userID, "resolution_id", id, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}

	var req resolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	updated, err := resolutionFromRequest(req)
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
		return
	}
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.Status = existing.Status
	updated.CreatedAt = existing.CreatedAt

	if err := s.store.PutResolution(userID, updated); err != nil {
		logger.Error("Failed to update resolution", "user_id", userID, "resolution_id", id, "error", err)
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	logger.Info("Resolution updated", "user_id", userID, "resolution_id", id)

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		logger.Error("Failed to serialize resolution response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) deleteResolution(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	id := chi.URLParam(r, "resolution_id")
	logger.Info("Deleting resolution", "user_id", userID, "resolution_id", id)

	err := s.store.DeleteResolution(userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, `{"error":"resolution not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to delete resolution", "user_id", userID, "resolution_id", id, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	s.refreshActiveGauge(userID)

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) searchResolutions(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if query == "" {
		_ = writeJSON(w, http.StatusOK, []SearchResult{})
		return
	}

	list, err := s.store.ListResolutions(userID)
	if err != nil {
		logger.Error("Failed to list resolutions for search", "user_id", userID, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}

	hits := []SearchResult{}
	for _, res := range list {
		if len(hits) == searchMaxHits {
			break
		}
		haystack := strings.ToLower(res.Title + " " + res.Action + " " + res.Situation + " " + res.Task)
		if strings.Contains(haystack, query) {
			hits = append(hits, SearchResult{ID: res.ID, Title: res.Title, Action: res.Action})
		}
	}
	if err := writeJSON(w, http.StatusOK, hits); err != nil {
		logger.Error("Failed to serialize search response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) upsertCheckIn(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	id := chi.URLParam(r, "resolution_id")

	res, err := s.store.GetResolution(userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, `{"error":"resolution not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to get resolution for check-in", "user_id", userID, "resolution_id", id, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}

	var req checkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	status, err := resolution.ParseCheckInStatus(req.Status)
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
		return
	}

	rawDate := time.Now().UTC()
	if req.Date != "" {
		rawDate, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			http.Error(w, `{"error":"date must be ISO-8601"}`, http.StatusBadRequest)
			return
		}
	}

	ci := resolution.CheckIn{
		ResolutionID: res.ID,
		Date:         resolution.PeriodStart(res.Cadence, rawDate),
		Status:       status,
	}
	if err := s.store.UpsertCheckIn(userID, ci); err != nil {
		logger.Error("Failed to store check-in", "user_id", userID, "resolution_id", id, "error", err)
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	logger.Info("Check-in recorded", "user_id", userID, "resolution_id", id,
		"period_start", ci.Date.Format(time.RFC3339), "status", ci.Status)
	recordCheckIn(string(ci.Status), string(res.Cadence))

	if err := writeJSON(w, http.StatusCreated, ci); err != nil {
		logger.Error("Failed to serialize check-in response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) listCheckIns(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	id := chi.URLParam(r, "resolution_id")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			http.Error(w, `{"error":"limit must be a non-negative integer"}`, http.StatusBadRequest)
			return
		}
	}

	list, err := s.store.ListCheckIns(userID, id, limit)
	if err != nil {
		logger.Error("Failed to list check-ins", "user_id", userID, "resolution_id", id, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	resp := CheckInListResponse{ResolutionID: id, CheckIns: list}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize check-in list response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)

	p, err := s.store.GetProfile(userID)
	if errors.Is(err, storage.ErrNotFound) {
		// an empty profile renders fine; missing is not an error here
		p = resolution.Profile{}
	} else if err != nil {
		logger.Error("Failed to get profile", "user_id", userID, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, p); err != nil {
		logger.Error("Failed to serialize profile response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)

	var p resolution.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.PutProfile(userID, p); err != nil {
		logger.Error("Failed to store profile", "user_id", userID, "error", err)
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	logger.Info("Profile updated", "user_id", userID)

	if err := writeJSON(w, http.StatusOK, p); err != nil {
		logger.Error("Failed to serialize profile response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func resolutionFromRequest(req resolutionRequest) (resolution.Resolution, error) {
	var res resolution.Resolution

	if req.Title == "" || len(req.Title) > maxTitleLength {
		return res, fmt.Errorf("bad title: must be 1-%d characters", maxTitleLength)
	}
	for name, val := range map[string]string{
		"situation": req.Situation,
		"task":      req.Task,
		"action":    req.Action,
	} {
		if val == "" {
			return res, fmt.Errorf("%s is required", name)
		}
		if len(val) > maxFieldLength {
			return res, fmt.Errorf("bad %s: must be 1-%d characters", name, maxFieldLength)
		}
	}
	if len(req.Result) > maxFieldLength {
		return res, fmt.Errorf("bad result: must be 0-%d characters", maxFieldLength)
	}

	cadence, err := resolution.ParseCadence(req.Cadence)
	if err != nil {
		return res, err
	}

	return resolution.Resolution{
		Title:        req.Title,
		Situation:    req.Situation,
		Task:         req.Task,
		Action:       req.Action,
		Result:       req.Result,
		Cadence:      cadence,
		ReminderTime: req.ReminderTime,
	}, nil
}

func (s *Server) refreshActiveGauge(userID string) {
	list, err := s.store.ListResolutions(userID)
	if err != nil {
		logger.Warn("Failed to refresh active resolutions metric", "user_id", userID, "error", err)
		return
	}
	active := 0
	for _, res := range list {
		if res.Status == resolution.StatusActive {
			active++
		}
	}
	updateActiveResolutions(userID, active)
}
