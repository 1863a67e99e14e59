package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/wellnest/wellnest-server/internal/api/respond"
	"github.com/wellnest/wellnest-server/internal/api/validate"
	"github.com/wellnest/wellnest-server/internal/services"
)

type HealthLogHandler struct {
	svc *services.HealthService
}

func NewHealthLogHandler(svc *services.HealthService) *HealthLogHandler {
	return &HealthLogHandler{svc: svc}
}

// Log POST /api/health
func (h *HealthLogHandler) Log(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	var req struct {
		FatigueLevel *int     `json:"fatigueLevel"`
		SleepHours   *float64 `json:"sleepHours"`
		SleepQuality *int     `json:"sleepQuality"`
		Stress       *int     `json:"stress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.FatigueLevel == nil || req.SleepHours == nil || req.SleepQuality == nil || req.Stress == nil {
		respond.WriteBadRequest(w, "All fields are required")
		return
	}
	in := services.HealthInput{
		FatigueLevel: *req.FatigueLevel,
		SleepHours:   *req.SleepHours,
		SleepQuality: *req.SleepQuality,
		Stress:       *req.Stress,
	}
	if err := validate.HealthMetrics(in); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.LogToday(r.Context(), u.UserID, in)
	if err != nil {
		writeServiceError(w, err, "health.log", u.UserID)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Health data saved successfully",
		"data":    out,
	})
}

// Month GET /api/health/month?year=YYYY&month=M
func (h *HealthLogHandler) Month(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		respond.WriteBadRequest(w, "year is required")
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		respond.WriteBadRequest(w, "month is required")
		return
	}
	if err := validate.YearMonth(year, month); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	grid, err := h.svc.MonthGrid(r.Context(), u.UserID, year, time.Month(month))
	if err != nil {
		writeServiceError(w, err, "health.month", u.UserID)
		return
	}
	respond.WriteJSON(w, http.StatusOK, grid)
}
