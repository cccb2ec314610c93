package processor

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/match"
	"github.com/mauv0809/courtside/internal/notifier"
	"github.com/mauv0809/courtside/internal/player"
	"github.com/mauv0809/courtside/internal/rating"
	"github.com/mauv0809/courtside/internal/reservation"
)

// Processor reacts to published events: it folds confirmed matches into the
// player statistics and fans out notifications. It runs behind the pubsub
// push endpoints, never inline with the confirming request.
type Processor struct {
	matches      match.MatchStore
	players      player.PlayerStore
	clubs        club.ClubStore
	reservations reservation.ReservationStore
	notifier     notifier.Notifier
}

// New creates a new Processor.
func New(
	matches match.MatchStore,
	players player.PlayerStore,
	clubs club.ClubStore,
	reservations reservation.ReservationStore,
	n notifier.Notifier,
) *Processor {
	return &Processor{
		matches:      matches,
		players:      players,
		clubs:        clubs,
		reservations: reservations,
		notifier:     n,
	}
}

// UpdatePlayerStats folds one confirmed match into the aggregate stats of
// every rated participant.
func (p *Processor) UpdatePlayerStats(matchID string, dryRun bool) error {
	m, err := p.matches.Get(matchID)
	if err != nil {
		return fmt.Errorf("failed to load match %s: %w", matchID, err)
	}
	if m.Status != match.StatusConfirmed {
		log.Warn("Skipping stats update for non-confirmed match", "matchID", matchID, "status", m.Status)
		return nil
	}

	deltas := statsDeltas(m)
	if len(deltas) == 0 {
		log.Debug("No rated participants on match, nothing to update", "matchID", matchID)
		return nil
	}
	if dryRun {
		log.Info("[Dry Run] Would update player stats", "matchID", matchID, "players", len(deltas))
		return nil
	}
	return p.players.ApplyStats(deltas)
}

// NotifyResult announces a confirmed match, including the rating movements
// recorded for it.
func (p *Processor) NotifyResult(matchID string, dryRun bool) error {
	m, err := p.matches.Get(matchID)
	if err != nil {
		return fmt.Errorf("failed to load match %s: %w", matchID, err)
	}

	names := make(map[string]string)
	var changes []rating.Change
	for _, participant := range m.Roster {
		if participant.PlayerID == "" {
			continue
		}
		pl, err := p.players.Get(participant.PlayerID)
		if err != nil {
			log.Warn("Could not resolve participant name", "playerID", participant.PlayerID, "error", err)
			continue
		}
		names[pl.ID] = pl.Name

		entries, err := p.players.RatingHistory(pl.ID)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.MatchID == matchID {
				changes = append(changes, rating.Change{
					PlayerID: pl.ID,
					Before:   e.Before,
					After:    e.After,
					Delta:    e.Delta,
				})
				break
			}
		}
	}

	return p.notifier.SendResultNotification(&notifier.MatchResult{
		Match:   m,
		Names:   names,
		Changes: changes,
	}, dryRun)
}

// NotifyBooking announces a fresh court reservation.
func (p *Processor) NotifyBooking(reservationID string, dryRun bool) error {
	r, err := p.reservations.Get(reservationID)
	if err != nil {
		return fmt.Errorf("failed to load reservation %s: %w", reservationID, err)
	}

	notice := &notifier.BookingNotice{Reservation: r}
	if c, err := p.clubs.Get(r.ClubID); err == nil {
		notice.ClubName = c.Name
	}
	if court, err := p.clubs.GetCourt(r.CourtID); err == nil {
		notice.CourtName = court.Name
	}
	if pl, err := p.players.Get(r.BookedBy); err == nil {
		notice.PlayerName = pl.Name
	}

	return p.notifier.SendBookingNotification(notice, dryRun)
}

// statsDeltas computes the per-player contribution of one finalized match.
func statsDeltas(m *match.Match) []player.StatsDelta {
	winner, _ := match.Winner(m.Sets)

	homeWins, awayWins := match.SetWins(m.Sets)

	var gamesHome, gamesAway int
	for _, set := range m.Sets {
		gamesHome += set.Home
		gamesAway += set.Away
	}

	var deltas []player.StatsDelta
	for _, participant := range m.Roster {
		if participant.PlayerID == "" {
			continue
		}
		d := player.StatsDelta{PlayerID: participant.PlayerID}
		if participant.Team == match.TeamHome {
			d.Won = winner == match.TeamHome
			d.SetsWon, d.SetsLost = homeWins, awayWins
			d.GamesWon, d.GamesLost = gamesHome, gamesAway
		} else {
			d.Won = winner == match.TeamAway
			d.SetsWon, d.SetsLost = awayWins, homeWins
			d.GamesWon, d.GamesLost = gamesAway, gamesHome
		}
		deltas = append(deltas, d)
	}
	return deltas
}
