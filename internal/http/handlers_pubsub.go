package http

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/pubsub"
)

// decodePushMessage unwraps a pubsub push delivery: an outer JSON envelope
// whose message data is base64-encoded MessagePack.
func (s *Server) decodePushMessage(w http.ResponseWriter, r *http.Request, payload any) bool {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("Failed to read request body", "error", err)
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return false
	}
	log.Debug("Received push message", "url", r.URL.Path, "body", string(bodyBytes))

	var pubsubMsg struct {
		Subscription string `json:"subscription"`
		Message      struct {
			Data string `json:"data"` // base64-encoded message payload
		} `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
		log.Error("Failed to unmarshal wrapper JSON", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}

	rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
	if err != nil {
		log.Error("Failed to decode base64 data", "error", err)
		http.Error(w, "Invalid base64 data", http.StatusBadRequest)
		return false
	}

	if err := s.pubsub.ProcessMessage(rawData, payload); err != nil {
		log.Error("Failed to decode message payload", "error", err)
		http.Error(w, "Invalid message payload", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) UpdatePlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event pubsub.MatchConfirmedEvent
		if !s.decodePushMessage(w, r, &event) {
			return
		}

		if err := s.Processor.UpdatePlayerStats(event.MatchID, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to update player stats", "matchID", event.MatchID, "error", err)
			http.Error(w, "Failed to update player stats", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) NotifyResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event pubsub.MatchConfirmedEvent
		if !s.decodePushMessage(w, r, &event) {
			return
		}

		if err := s.Processor.NotifyResult(event.MatchID, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to notify result", "matchID", event.MatchID, "error", err)
			http.Error(w, "Failed to notify result", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) NotifyBookingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event pubsub.ReservationBookedEvent
		if !s.decodePushMessage(w, r, &event) {
			return
		}

		if err := s.Processor.NotifyBooking(event.ReservationID, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to notify booking", "reservationID", event.ReservationID, "error", err)
			http.Error(w, "Failed to notify booking", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
