package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/auth"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/match"
	"github.com/mauv0809/courtside/internal/player"
	"github.com/mauv0809/courtside/internal/reservation"
	"github.com/mauv0809/courtside/internal/social"
	"github.com/slack-go/slack"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// respondError maps domain errors onto HTTP statuses. Anything unrecognized
// becomes a 500 without leaking the underlying error text.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var verr *match.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, match.ErrInvalidTransition),
		errors.Is(err, reservation.ErrInvalidSlot),
		errors.Is(err, social.ErrSelfFollow),
		errors.Is(err, auth.ErrInvalidInput):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, match.ErrNotAuthorized),
		errors.Is(err, reservation.ErrNotAuthorized):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, match.ErrNotFound),
		errors.Is(err, player.ErrNotFound),
		errors.Is(err, club.ErrNotFound),
		errors.Is(err, reservation.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, match.ErrAlreadyFinalized),
		errors.Is(err, match.ErrMatchFull),
		errors.Is(err, reservation.ErrSlotTaken),
		errors.Is(err, player.ErrEmailTaken),
		errors.Is(err, club.ErrDuplicate):
		status = http.StatusConflict
		message = err.Error()
	default:
		log.Error("Unhandled error in request", "error", err)
	}

	respondJSON(w, status, map[string]string{"error": message})
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}
