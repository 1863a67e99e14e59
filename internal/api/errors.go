package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/wellnest/wellnest-server/internal/api/respond"
	"github.com/wellnest/wellnest-server/internal/model"
)

// writeServiceError maps service failures onto the HTTP error taxonomy.
// Client faults surface their message; anything unexpected is logged with
// the operation and identity, and the client only sees a generic fault.
func writeServiceError(w http.ResponseWriter, err error, op, userID string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrDuplicateEmail):
		respond.WriteBadRequest(w, "User with this email already exists.")
	case errors.Is(err, model.ErrInvalidCredentials):
		respond.WriteBadRequest(w, "Invalid credentials.")
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, "Not found")
	case errors.Is(err, model.ErrNotOwner):
		respond.WriteUnauthorized(w, "Not authorized")
	default:
		log.Error().Stack().Err(err).Str("op", op).Str("userId", userID).Msg("request failed")
		respond.WriteInternalError(w, "Server error")
	}
}
