package http

import (
	"net/http"
	"strconv"
)

func (s *Server) FollowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromContext(r)
		followedID := r.PathValue("id")

		// Following a non-existent player is a 404, not a dangling edge.
		if _, err := s.Players.Get(followedID); err != nil {
			respondError(w, err)
			return
		}

		if err := s.Social.Follow(identity.PlayerID, followedID); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "following"})
	}
}

func (s *Server) UnfollowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromContext(r)
		if err := s.Social.Unfollow(identity.PlayerID, r.PathValue("id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func (s *Server) FollowingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromContext(r)
		follows, err := s.Social.Following(identity.PlayerID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, follows)
	}
}

func (s *Server) FollowersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromContext(r)
		follows, err := s.Social.Followers(identity.PlayerID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, follows)
	}
}

func (s *Server) FeedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromContext(r)
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		feed, err := s.Social.Feed(identity.PlayerID, limit)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, feed)
	}
}
