package notifier

import (
	"github.com/mauv0809/courtside/internal/match"
	"github.com/mauv0809/courtside/internal/player"
	"github.com/mauv0809/courtside/internal/rating"
	"github.com/mauv0809/courtside/internal/reservation"
)

// MatchResult carries everything needed to announce a finalized match. The
// names map resolves roster player IDs to display names; guests appear under
// their guest name already.
type MatchResult struct {
	Match   *match.Match
	Names   map[string]string
	Changes []rating.Change
}

// BookingNotice carries a fresh reservation with its display names resolved.
type BookingNotice struct {
	Reservation *reservation.Reservation
	ClubName    string
	CourtName   string
	PlayerName  string
}

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For finalized matches
	SendResultNotification(result *MatchResult, dryRun bool) error
	// For fresh court bookings
	SendBookingNotification(notice *BookingNotice, dryRun bool) error
	// For slash commands
	SendLeaderboard(stats []player.Stats, dryRun bool) error
	SendRatingLeaderboard(players []*player.Player, dryRun bool) error
	SendPlayerStats(stats *player.Stats, query string, dryRun bool) error
	SendPlayerNotFound(query string, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(stats []player.Stats) (any, error)
	FormatRatingLeaderboardResponse(players []*player.Player) (any, error)
	FormatPlayerStatsResponse(stats *player.Stats, query string) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
