package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/wellnest/wellnest-server/internal/api/respond"
	"github.com/wellnest/wellnest-server/internal/api/validate"
	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/services"
)

type ReminderHandler struct {
	svc *services.ReminderService
}

func NewReminderHandler(svc *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{svc: svc}
}

// reminderID pulls and validates the {id} path variable. A malformed ID is
// a client error, distinct from a well-formed ID that matches nothing.
func reminderID(r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if uuid.Validate(id) != nil {
		return "", false
	}
	return id, true
}

// List GET /api/reminders
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	out, err := h.svc.List(r.Context(), u.UserID)
	if err != nil {
		writeServiceError(w, err, "reminders.list", u.UserID)
		return
	}
	if out == nil {
		out = []*model.Reminder{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// Create POST /api/reminders
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	var req struct {
		Title    string   `json:"title"`
		Time     string   `json:"time"`
		Days     []string `json:"days"`
		IsActive *bool    `json:"isActive,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Reminder(req.Title, req.Time, req.Days); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	in := services.ReminderInput{Title: req.Title, Time: req.Time, Days: req.Days, IsActive: req.IsActive}
	out, err := h.svc.Create(r.Context(), u.UserID, in)
	if err != nil {
		writeServiceError(w, err, "reminders.create", u.UserID)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// Update PUT /api/reminders/{id}
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	id, ok := reminderID(r)
	if !ok {
		respond.WriteBadRequest(w, "Invalid reminder ID")
		return
	}
	var req struct {
		Title    *string   `json:"title,omitempty"`
		Time     *string   `json:"time,omitempty"`
		Days     *[]string `json:"days,omitempty"`
		IsActive *bool     `json:"isActive,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Title != nil && *req.Title == "" {
		respond.WriteBadRequest(w, "title must not be empty")
		return
	}
	if req.Time != nil {
		if err := validate.TimeOfDay(*req.Time); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	if req.Days != nil {
		if err := validate.Weekdays(*req.Days); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	upd := model.ReminderUpdate{Title: req.Title, Time: req.Time, Days: req.Days, IsActive: req.IsActive}
	out, err := h.svc.Update(r.Context(), u.UserID, id, upd)
	if err != nil {
		writeServiceError(w, err, "reminders.update", u.UserID)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// Delete DELETE /api/reminders/{id}
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	id, ok := reminderID(r)
	if !ok {
		respond.WriteBadRequest(w, "Invalid reminder ID")
		return
	}
	if err := h.svc.Delete(r.Context(), u.UserID, id); err != nil {
		writeServiceError(w, err, "reminders.delete", u.UserID)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "Reminder removed"})
}

// Complete POST /api/reminders/{id}/complete
func (h *ReminderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	id, ok := reminderID(r)
	if !ok {
		respond.WriteBadRequest(w, "Invalid reminder ID")
		return
	}
	out, err := h.svc.Complete(r.Context(), u.UserID, id)
	if err != nil {
		writeServiceError(w, err, "reminders.complete", u.UserID)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
