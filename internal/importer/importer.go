package importer

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/match"
	"github.com/mauv0809/courtside/internal/playtomic"
)

// Importer pulls played match history from Playtomic and records it as
// already-confirmed matches. Imported matches never adjust ratings; they only
// backfill a player's record.
type Importer struct {
	client  playtomic.PlaytomicClient
	matches match.MatchStore
}

// Report summarizes one import run.
type Report struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// New creates a new Importer.
func New(client playtomic.PlaytomicClient, matches match.MatchStore) *Importer {
	return &Importer{
		client:  client,
		matches: matches,
	}
}

// ImportHistory fetches the matches found by params and records every played,
// result-confirmed one under the given courtside player. The player's own
// roster entry is linked by their external user ID; everyone else becomes a
// guest entry.
func (i *Importer) ImportHistory(playerID, externalUserID string, params *playtomic.SearchMatchesParams) (Report, error) {
	var report Report

	summaries, err := i.client.GetMatches(params)
	if err != nil {
		return report, fmt.Errorf("failed to search matches: %w", err)
	}

	for _, summary := range summaries {
		external, err := i.client.GetSpecificMatch(summary.MatchID)
		if err != nil {
			log.Error("Failed to fetch match, skipping", "matchID", summary.MatchID, "error", err)
			report.Skipped++
			continue
		}

		m, ok := convert(&external, playerID, externalUserID)
		if !ok {
			report.Skipped++
			continue
		}

		if err := i.matches.Import(m); err != nil {
			// An import re-run hits the primary key of already imported
			// matches; that is a skip, not a failure.
			log.Debug("Match not imported", "matchID", m.ID, "error", err)
			report.Skipped++
			continue
		}
		report.Imported++
	}

	log.Info("Import run finished", "playerID", playerID, "imported", report.Imported, "skipped", report.Skipped)
	return report, nil
}

// convert maps an external match onto the local shape. The first external
// team becomes the home side. Only played matches with confirmed results and
// exactly two teams qualify.
func convert(external *playtomic.ExternalMatch, playerID, externalUserID string) (*match.Match, bool) {
	if external.GameStatus != playtomic.GameStatusPlayed || external.ResultsStatus != playtomic.ResultsStatusConfirmed {
		return nil, false
	}
	if len(external.Teams) != 2 {
		log.Warn("Unexpected team count on external match", "matchID", external.MatchID, "teams", len(external.Teams))
		return nil, false
	}

	home, away := external.Teams[0], external.Teams[1]

	kind := match.KindSingles
	if len(home.Players) > 1 || len(away.Players) > 1 {
		kind = match.KindDoubles
	}

	var roster []match.Participant
	ownerOnRoster := false
	for teamIdx, team := range []playtomic.ExternalTeam{home, away} {
		side := match.TeamHome
		if teamIdx == 1 {
			side = match.TeamAway
		}
		for slot, p := range team.Players {
			if slot >= kind.TeamSize() {
				break
			}
			entry := match.Participant{Team: side, Slot: slot + 1}
			if p.UserID == externalUserID {
				entry.PlayerID = playerID
				ownerOnRoster = true
			} else {
				entry.GuestName = p.Name
			}
			roster = append(roster, entry)
		}
	}
	if !ownerOnRoster {
		return nil, false
	}

	var sets []match.SetScore
	for idx, set := range external.Sets {
		if idx >= 3 {
			break
		}
		sets = append(sets, match.SetScore{
			Home: set.Scores[home.ID],
			Away: set.Scores[away.ID],
		})
	}

	location := external.ResourceName
	if external.TenantName != "" {
		location = fmt.Sprintf("%s, %s", external.ResourceName, external.TenantName)
	}

	return &match.Match{
		ID:       "playtomic:" + external.MatchID,
		OwnerID:  playerID,
		Kind:     kind,
		PlayedAt: external.Start,
		Location: location,
		Sets:     sets,
		Status:   match.StatusConfirmed,
		Roster:   roster,
	}, true
}
