package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/pubsub"
	"github.com/mauv0809/courtside/internal/reservation"
)

func (s *Server) BookReservationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ClubID    string `json:"club_id"`
			CourtID   string `json:"court_id"`
			StartTime int64  `json:"start_time"`
			EndTime   int64  `json:"end_time"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		identity := identityFromContext(r)
		res := &reservation.Reservation{
			ClubID:    body.ClubID,
			CourtID:   body.CourtID,
			BookedBy:  identity.PlayerID,
			StartTime: body.StartTime,
			EndTime:   body.EndTime,
		}

		if err := s.Reservations.Book(res); err != nil {
			if errors.Is(err, reservation.ErrSlotTaken) {
				s.Metrics.IncReservationConflicts()
			}
			respondError(w, err)
			return
		}
		s.Metrics.IncReservationsBooked()

		event := pubsub.ReservationBookedEvent{ReservationID: res.ID}
		if err := s.pubsub.SendMessage(pubsub.EventNotifyBooking, event); err != nil {
			log.Error("Failed to publish booking notification event", "reservationID", res.ID, "error", err)
		}

		respondJSON(w, http.StatusCreated, res)
	}
}

func (s *Server) ListMyReservationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromContext(r)
		reservations, err := s.Reservations.GetByPlayer(identity.PlayerID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, reservations)
	}
}

func (s *Server) ListCourtReservationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, _ := strconv.ParseInt(r.URL.Query().Get("from"), 10, 64)
		to, _ := strconv.ParseInt(r.URL.Query().Get("to"), 10, 64)
		if to == 0 {
			to = 1<<63 - 1
		}

		reservations, err := s.Reservations.GetByCourt(r.PathValue("id"), from, to)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, reservations)
	}
}

func (s *Server) CancelReservationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservationID := r.PathValue("id")
		identity := identityFromContext(r)

		// Staff of the hosting club may cancel on behalf of members.
		staff := false
		if res, err := s.Reservations.Get(reservationID); err == nil && res.ClubID != "" {
			staff = s.Clubs.IsStaff(res.ClubID, identity.PlayerID)
		}

		if err := s.Reservations.Cancel(reservationID, identity.PlayerID, staff); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}
