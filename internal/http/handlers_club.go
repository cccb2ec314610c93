package http

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/match"
)

func (s *Server) CreateClubHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
			City string `json:"city"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if body.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		c := &club.Club{Name: body.Name, City: body.City}
		if err := s.Clubs.Create(c); err != nil {
			respondError(w, err)
			return
		}

		// Whoever creates a club runs it.
		identity := identityFromContext(r)
		if err := s.Clubs.AddStaff(c.ID, identity.PlayerID, "owner"); err != nil {
			log.Error("Failed to register club creator as staff", "clubID", c.ID, "error", err)
		}

		respondJSON(w, http.StatusCreated, c)
	}
}

func (s *Server) ListClubsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubs, err := s.Clubs.GetAll()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, clubs)
	}
}

func (s *Server) GetClubHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := s.Clubs.Get(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// requireStaff rejects callers who do not staff the club.
func (s *Server) requireStaff(w http.ResponseWriter, r *http.Request, clubID string) bool {
	identity := identityFromContext(r)
	if !s.Clubs.IsStaff(clubID, identity.PlayerID) {
		respondError(w, match.ErrNotAuthorized)
		return false
	}
	return true
}

func (s *Server) AddCourtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID := r.PathValue("id")
		if !s.requireStaff(w, r, clubID) {
			return
		}

		var body struct {
			Name    string `json:"name"`
			Surface string `json:"surface"`
			Indoor  bool   `json:"indoor"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if body.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		c := &club.Court{
			ClubID:  clubID,
			Name:    body.Name,
			Surface: body.Surface,
			Indoor:  body.Indoor,
		}
		if err := s.Clubs.AddCourt(c); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, c)
	}
}

func (s *Server) ListCourtsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courts, err := s.Clubs.GetCourts(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, courts)
	}
}

func (s *Server) AddStaffHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID := r.PathValue("id")
		if !s.requireStaff(w, r, clubID) {
			return
		}

		var body struct {
			PlayerID string `json:"player_id"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if body.PlayerID == "" {
			http.Error(w, "player_id is required", http.StatusBadRequest)
			return
		}
		if body.Role == "" {
			body.Role = "staff"
		}

		if err := s.Clubs.AddStaff(clubID, body.PlayerID, body.Role); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "added"})
	}
}

func (s *Server) RemoveStaffHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID := r.PathValue("id")
		if !s.requireStaff(w, r, clubID) {
			return
		}

		if err := s.Clubs.RemoveStaff(clubID, r.PathValue("playerID")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}
