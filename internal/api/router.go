package api

import (
	"github.com/gorilla/mux"

	"github.com/wellnest/wellnest-server/internal/api/recovery"
	"github.com/wellnest/wellnest-server/internal/auth"
	"github.com/wellnest/wellnest-server/internal/config"
	"github.com/wellnest/wellnest-server/internal/services"
	"github.com/wellnest/wellnest-server/internal/store"
)

// NewRouter wires all HTTP routes. Registration, login and the ping probes
// are public; everything else sits behind the bearer-token gate.
func NewRouter(st store.Store, signer *auth.Signer, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	// Domain services
	userService := services.NewUserService(st, signer, cfg.BcryptCost)
	moodService := services.NewMoodService(st)
	healthService := services.NewHealthService(st)
	reminderService := services.NewReminderService(st)

	// Handlers
	pingHandler := NewPingHandler(st)
	userHandler := NewUserHandler(userService)
	moodHandler := NewMoodHandler(moodService)
	healthHandler := NewHealthLogHandler(healthService)
	reminderHandler := NewReminderHandler(reminderService)

	// Liveness probes
	router.HandleFunc("/api/ping", pingHandler.Ping).Methods("GET")
	router.HandleFunc("/api/ping/db", pingHandler.PingStore).Methods("GET")

	// Public auth endpoints
	router.HandleFunc("/api/auth/register", userHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", userHandler.Login).Methods("POST")

	// Everything below requires a valid bearer token.
	gate := NewTokenGate(signer, st.Users())
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(gate.Middleware)

	protected.HandleFunc("/auth/me", userHandler.Me).Methods("GET")
	protected.HandleFunc("/auth/me", userHandler.UpdateMe).Methods("PUT")

	protected.HandleFunc("/moods", moodHandler.Log).Methods("POST")
	protected.HandleFunc("/moods/history", moodHandler.History).Methods("GET")

	protected.HandleFunc("/health", healthHandler.Log).Methods("POST")
	protected.HandleFunc("/health/month", healthHandler.Month).Methods("GET")

	protected.HandleFunc("/reminders", reminderHandler.List).Methods("GET")
	protected.HandleFunc("/reminders", reminderHandler.Create).Methods("POST")
	protected.HandleFunc("/reminders/{id}", reminderHandler.Update).Methods("PUT")
	protected.HandleFunc("/reminders/{id}", reminderHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/reminders/{id}/complete", reminderHandler.Complete).Methods("POST")

	return router
}
