package api

import (
	"encoding/json"
	"net/http"

	"github.com/wellnest/wellnest-server/internal/api/respond"
	"github.com/wellnest/wellnest-server/internal/api/validate"
	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/services"
)

type MoodHandler struct {
	svc *services.MoodService
}

func NewMoodHandler(svc *services.MoodService) *MoodHandler { return &MoodHandler{svc: svc} }

// Log POST /api/moods
// The acting identity comes from the token gate; a userId in the body is
// ignored.
func (h *MoodHandler) Log(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	var req struct {
		Mood     string `json:"mood"`
		Reason   string `json:"reason"`
		Sleep    *int   `json:"sleep,omitempty"`
		Physical *int   `json:"physical,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Mood(req.Mood, req.Sleep, req.Physical); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	in := services.MoodInput{Mood: req.Mood, Reason: req.Reason, Sleep: req.Sleep, Physical: req.Physical}
	out, err := h.svc.LogToday(r.Context(), u.UserID, in)
	if err != nil {
		writeServiceError(w, err, "moods.log", u.UserID)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Daily stats saved successfully",
		"data":    out,
	})
}

// History GET /api/moods/history
func (h *MoodHandler) History(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	out, err := h.svc.History(r.Context(), u.UserID)
	if err != nil {
		writeServiceError(w, err, "moods.history", u.UserID)
		return
	}
	if out == nil {
		out = []*model.MoodEntry{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
