package http

import (
	"net/http"

	"github.com/mauv0809/courtside/internal/auth"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/config"
	"github.com/mauv0809/courtside/internal/importer"
	"github.com/mauv0809/courtside/internal/match"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/mauv0809/courtside/internal/notifier"
	"github.com/mauv0809/courtside/internal/player"
	"github.com/mauv0809/courtside/internal/processor"
	"github.com/mauv0809/courtside/internal/pubsub"
	"github.com/mauv0809/courtside/internal/reservation"
	"github.com/mauv0809/courtside/internal/social"
)

func NewServer(
	matches match.MatchStore,
	players player.PlayerStore,
	clubs club.ClubStore,
	reservations reservation.ReservationStore,
	socialStore social.SocialStore,
	authSvc auth.Service,
	imp *importer.Importer,
	proc *processor.Processor,
	n notifier.Notifier,
	metricsSvc metrics.Metrics,
	metricsHandler http.Handler,
	cfg config.Config,
	ps pubsub.PubSubClient,
) *Server {
	server := &Server{
		Matches:        matches,
		Players:        players,
		Clubs:          clubs,
		Reservations:   reservations,
		Social:         socialStore,
		Auth:           authSvc,
		Importer:       imp,
		Processor:      proc,
		Notifier:       n,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		pubsub:         ps,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Routes below the auth block require a bearer token.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("POST /auth/register", Chain(s.RegisterHandler(), paramsMiddleware))
	s.Router.Handle("POST /auth/login", Chain(s.LoginHandler(), paramsMiddleware))

	s.Router.Handle("POST /matches", Chain(s.CreateMatchHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /matches/{id}", Chain(s.GetMatchHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("DELETE /matches/{id}", Chain(s.DeleteMatchHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("PUT /matches/{id}/score", Chain(s.UpdateScoreHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("PUT /matches/{id}/visibility", Chain(s.SetVisibilityHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /matches/{id}/join", Chain(s.JoinMatchHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /matches/{id}/submit", Chain(s.SubmitMatchHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /matches/{id}/cancel", Chain(s.CancelMatchHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /matches/{id}/confirm", Chain(s.ConfirmMatchHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /import/playtomic", Chain(s.ImportHistoryHandler(), paramsMiddleware, s.authMiddleware))

	s.Router.Handle("POST /clubs", Chain(s.CreateClubHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /clubs", Chain(s.ListClubsHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /clubs/{id}", Chain(s.GetClubHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /clubs/{id}/courts", Chain(s.AddCourtHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /clubs/{id}/courts", Chain(s.ListCourtsHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /clubs/{id}/staff", Chain(s.AddStaffHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("DELETE /clubs/{id}/staff/{playerID}", Chain(s.RemoveStaffHandler(), paramsMiddleware, s.authMiddleware))

	s.Router.Handle("POST /reservations", Chain(s.BookReservationHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /reservations", Chain(s.ListMyReservationsHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("DELETE /reservations/{id}", Chain(s.CancelReservationHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /courts/{id}/reservations", Chain(s.ListCourtReservationsHandler(), paramsMiddleware, s.authMiddleware))

	s.Router.Handle("POST /players/{id}/follow", Chain(s.FollowHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("DELETE /players/{id}/follow", Chain(s.UnfollowHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /feed", Chain(s.FeedHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /following", Chain(s.FollowingHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /followers", Chain(s.FollowersHandler(), paramsMiddleware, s.authMiddleware))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("PUT /players/me/name", Chain(s.UpdateNameHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /players/{id}/rating-history", Chain(s.RatingHistoryHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("GET /leaderboard/rating", Chain(s.RatingLeaderboardHandler(), paramsMiddleware))

	s.Router.Handle("POST /update-player-stats", Chain(s.UpdatePlayerStatsHandler(), paramsMiddleware))
	s.Router.Handle("POST /notify-result", Chain(s.NotifyResultHandler(), paramsMiddleware))
	s.Router.Handle("POST /notify-booking", Chain(s.NotifyBookingHandler(), paramsMiddleware))

	s.Router.Handle("POST /slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware))
	s.Router.Handle("POST /slack/command/player-stats", Chain(s.PlayerStatsCommandHandler(), paramsMiddleware))
	s.Router.Handle("POST /slack/command/rating-leaderboard", Chain(s.RatingLeaderboardCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
