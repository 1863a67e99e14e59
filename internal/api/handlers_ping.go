package api

import (
	"net/http"
	"time"

	"github.com/wellnest/wellnest-server/internal/api/respond"
	"github.com/wellnest/wellnest-server/internal/store"
)

type PingHandler struct {
	store store.Store
}

func NewPingHandler(st store.Store) *PingHandler {
	return &PingHandler{store: st}
}

// Ping GET /api/ping — process liveness only.
func (h *PingHandler) Ping(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// PingStore GET /api/ping/db — round-trips to the backing store.
func (h *PingHandler) PingStore(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "store unreachable")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
