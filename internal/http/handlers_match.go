package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/match"
	"github.com/mauv0809/courtside/internal/playtomic"
	"github.com/mauv0809/courtside/internal/pubsub"
	"github.com/mauv0809/courtside/internal/rating"
)

// matchActor resolves the acting identity for a lifecycle operation. Staff
// privileges only apply to matches hosted at a club the caller staffs.
func (s *Server) matchActor(r *http.Request, matchID string) (match.Actor, error) {
	identity := identityFromContext(r)
	actor := match.Actor{PlayerID: identity.PlayerID}

	m, err := s.Matches.Get(matchID)
	if err != nil {
		return actor, err
	}
	if m.ClubID != "" {
		actor.ClubStaff = s.Clubs.IsStaff(m.ClubID, identity.PlayerID)
	}
	return actor, nil
}

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Kind     match.Kind          `json:"kind"`
			ClubID   string              `json:"club_id"`
			PlayedAt int64               `json:"played_at"`
			Location string              `json:"location"`
			Notes    string              `json:"notes"`
			Public   *bool               `json:"public"`
			Sets     []match.SetInput    `json:"sets"`
			Roster   []match.Participant `json:"roster"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		identity := identityFromContext(r)
		m := &match.Match{
			OwnerID:  identity.PlayerID,
			Kind:     body.Kind,
			ClubID:   body.ClubID,
			PlayedAt: body.PlayedAt,
			Location: body.Location,
			Notes:    body.Notes,
			Public:   body.Public == nil || *body.Public,
			Roster:   body.Roster,
		}

		if len(body.Sets) > 0 {
			sets, err := match.ParseSets(body.Sets)
			if err != nil {
				respondError(w, err)
				return
			}
			m.Sets = sets
		}

		if err := s.Matches.Create(m); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, m)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromContext(r)
		matches, err := s.Matches.ListByPlayer(identity.PlayerID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) GetMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := s.Matches.Get(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}

func (s *Server) UpdateScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")

		var body struct {
			Sets  []match.SetInput `json:"sets"`
			Notes string           `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		sets, err := match.ParseSets(body.Sets)
		if err != nil {
			respondError(w, err)
			return
		}

		actor, err := s.matchActor(r, matchID)
		if err != nil {
			respondError(w, err)
			return
		}
		if err := s.Matches.UpdateScore(matchID, actor, sets, body.Notes); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func (s *Server) SetVisibilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")

		var body struct {
			Public bool `json:"public"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		actor, err := s.matchActor(r, matchID)
		if err != nil {
			respondError(w, err)
			return
		}
		if err := s.Matches.SetVisibility(matchID, actor, body.Public); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func (s *Server) JoinMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromContext(r)
		participant, err := s.Matches.Join(r.PathValue("id"), identity.PlayerID)
		if err != nil {
			respondError(w, err)
			return
		}

		s.Metrics.IncRosterJoins()
		respondJSON(w, http.StatusOK, participant)
	}
}

func (s *Server) SubmitMatchHandler() http.HandlerFunc {
	return s.transitionHandler(func(matchID string, actor match.Actor) error {
		return s.Matches.Submit(matchID, actor)
	})
}

func (s *Server) CancelMatchHandler() http.HandlerFunc {
	return s.transitionHandler(func(matchID string, actor match.Actor) error {
		return s.Matches.Cancel(matchID, actor)
	})
}

func (s *Server) transitionHandler(transition func(matchID string, actor match.Actor) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")

		actor, err := s.matchActor(r, matchID)
		if err != nil {
			respondError(w, err)
			return
		}
		if err := transition(matchID, actor); err != nil {
			respondError(w, err)
			return
		}

		m, err := s.Matches.Get(matchID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}

type confirmResponse struct {
	Match   *match.Match    `json:"match"`
	Changes []rating.Change `json:"changes"`
}

func (s *Server) ConfirmMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")

		actor, err := s.matchActor(r, matchID)
		if err != nil {
			respondError(w, err)
			return
		}

		start := time.Now()
		m, changes, err := s.Matches.Confirm(matchID, actor)
		if err != nil {
			respondError(w, err)
			return
		}
		s.Metrics.IncMatchesConfirmed()
		s.Metrics.ObserveConfirmDuration(time.Since(start).Seconds())

		// Stats folding and notifications run async behind pubsub. A publish
		// failure never rolls back the confirmation.
		event := pubsub.MatchConfirmedEvent{MatchID: m.ID}
		if err := s.pubsub.SendMessage(pubsub.EventUpdatePlayerStats, event); err != nil {
			log.Error("Failed to publish stats update event", "matchID", m.ID, "error", err)
		}
		if err := s.pubsub.SendMessage(pubsub.EventNotifyResult, event); err != nil {
			log.Error("Failed to publish result notification event", "matchID", m.ID, "error", err)
		}

		respondJSON(w, http.StatusOK, confirmResponse{Match: m, Changes: changes})
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")

		actor, err := s.matchActor(r, matchID)
		if err != nil {
			respondError(w, err)
			return
		}
		if err := s.Matches.Delete(matchID, actor); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func (s *Server) ImportHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ExternalUserID string `json:"external_user_id"`
			FromStartDate  string `json:"from_start_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if body.ExternalUserID == "" {
			http.Error(w, "external_user_id is required", http.StatusBadRequest)
			return
		}

		params := &playtomic.SearchMatchesParams{
			SportID:       "PADEL",
			HasPlayers:    true,
			Sort:          "start_date,ASC",
			FromStartDate: body.FromStartDate,
		}

		identity := identityFromContext(r)
		report, err := s.Importer.ImportHistory(identity.PlayerID, body.ExternalUserID, params)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}
