package rest

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

type AnalyticsHandlers struct {
	trackUC usecases_port.TrackVisitUseCase
	statsUC usecases_port.GetAnalyticsUseCase
}

func NewAnalyticsHandlers(trackUC usecases_port.TrackVisitUseCase, statsUC usecases_port.GetAnalyticsUseCase) *AnalyticsHandlers {
	return &AnalyticsHandlers{trackUC: trackUC, statsUC: statsUC}
}

// TrackVisit handles POST /api/analytics/track.
func (h *AnalyticsHandlers) TrackVisit(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req TrackVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Page == "" {
		WriteJSONError(w, http.StatusBadRequest, "page is required")
		return
	}

	if err := h.trackUC.Execute(r.Context(), req.Page, clientIP(r), req.Country); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "TrackVisit"})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	RespondWithMessage(w, http.StatusCreated, "Visit recorded")
}

// GetStats handles GET /api/analytics/stats.
func (h *AnalyticsHandlers) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	stats, err := h.statsUC.Stats(r.Context())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetStats"})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	RespondWithData(w, http.StatusOK, stats)
}

// GetLogs handles GET /api/analytics/logs.
func (h *AnalyticsHandlers) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	logs, err := h.statsUC.Logs(r.Context())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetLogs"})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	RespondWithData(w, http.StatusOK, logs)
}

// GetDaily handles GET /api/analytics/daily.
func (h *AnalyticsHandlers) GetDaily(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	stats, err := h.statsUC.Daily(r.Context(), days)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetDaily"})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	RespondWithData(w, http.StatusOK, stats)
}

// GetPages handles GET /api/analytics/pages.
func (h *AnalyticsHandlers) GetPages(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	stats, err := h.statsUC.Pages(r.Context())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetPages"})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	RespondWithData(w, http.StatusOK, stats)
}

// clientIP prefers the first X-Forwarded-For hop set by the edge proxy
// and falls back to the socket address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
