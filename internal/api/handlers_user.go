package api

import (
	"encoding/json"
	"net/http"

	"github.com/wellnest/wellnest-server/internal/api/respond"
	"github.com/wellnest/wellnest-server/internal/api/validate"
	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{svc: svc} }

// Register POST /api/auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string  `json:"name"`
		Email    string  `json:"email"`
		Password string  `json:"password"`
		Sport    *string `json:"sport,omitempty"`
		Age      *int    `json:"age,omitempty"`
		Gender   *string `json:"gender,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Register(req.Name, req.Email, req.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	in := services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Sport:    req.Sport,
		Age:      req.Age,
		Gender:   req.Gender,
	}
	u, token, err := h.svc.Register(r.Context(), in)
	if err != nil {
		writeServiceError(w, err, "auth.register", "")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"token":   token,
		"user":    u,
	})
}

// Login POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Login(req.Email, req.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	u, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err, "auth.login", "")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logged in successfully",
		"token":   token,
		"user":    u,
	})
}

// Me GET /api/auth/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// UpdateMe PUT /api/auth/me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied.")
		return
	}
	var req struct {
		Name          *string   `json:"name,omitempty"`
		Sport         *string   `json:"sport,omitempty"`
		Age           *int      `json:"age,omitempty"`
		Gender        *string   `json:"gender,omitempty"`
		HeightCm      *float64  `json:"heightCm,omitempty"`
		WeightKg      *float64  `json:"weightKg,omitempty"`
		WellnessGoals *[]string `json:"wellnessGoals,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Name != nil && *req.Name == "" {
		respond.WriteBadRequest(w, "name must not be empty")
		return
	}
	upd := model.UserUpdate{
		Name:          req.Name,
		Sport:         req.Sport,
		Age:           req.Age,
		Gender:        req.Gender,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		WellnessGoals: req.WellnessGoals,
	}
	out, err := h.svc.UpdateProfile(r.Context(), u.UserID, upd)
	if err != nil {
		writeServiceError(w, err, "auth.updateProfile", u.UserID)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"user":    out,
	})
}
