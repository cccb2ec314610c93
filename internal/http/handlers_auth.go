package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/player"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

type credentialsResponse struct {
	Player *player.Player `json:"player"`
	Token  string         `json:"token"`
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		p, token, err := s.Auth.Register(body.Name, body.Email, body.Password)
		if err != nil {
			respondError(w, err)
			return
		}

		log.Info("Registered player", "playerID", p.ID)
		respondJSON(w, http.StatusCreated, credentialsResponse{Player: p, Token: token})
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		p, token, err := s.Auth.Login(body.Email, body.Password)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, credentialsResponse{Player: p, Token: token})
	}
}
