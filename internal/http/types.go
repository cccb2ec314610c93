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

type Server struct {
	Matches        match.MatchStore
	Players        player.PlayerStore
	Clubs          club.ClubStore
	Reservations   reservation.ReservationStore
	Social         social.SocialStore
	Auth           auth.Service
	Importer       *importer.Importer
	Processor      *processor.Processor
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
