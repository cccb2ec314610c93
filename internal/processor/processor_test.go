package processor

import (
	"testing"

	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/match"
	"github.com/mauv0809/courtside/internal/notifier"
	"github.com/mauv0809/courtside/internal/player"
	"github.com/mauv0809/courtside/internal/reservation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedDoubles(matchID string) *match.Match {
	return &match.Match{
		ID:       matchID,
		OwnerID:  "p1",
		Kind:     match.KindDoubles,
		PlayedAt: 1000,
		Location: "Court 1",
		Status:   match.StatusConfirmed,
		Sets: []match.SetScore{
			{Home: 6, Away: 4},
			{Home: 6, Away: 2},
		},
		Roster: []match.Participant{
			{PlayerID: "p1", Team: match.TeamHome, Slot: 1},
			{PlayerID: "p2", Team: match.TeamHome, Slot: 2},
			{PlayerID: "p3", Team: match.TeamAway, Slot: 1},
			{GuestName: "Ringer", Team: match.TeamAway, Slot: 2},
		},
	}
}

func setupProcessor(matches *match.MockStore, players *player.MockStore) (*Processor, *notifier.Mock) {
	n := notifier.NewMock()
	p := New(matches, players, club.NewMock(), reservation.NewMock(), n)
	return p, n
}

func TestUpdatePlayerStats(t *testing.T) {
	matches := match.NewMock()
	matches.GetFunc = func(matchID string) (*match.Match, error) {
		return confirmedDoubles(matchID), nil
	}
	players := player.NewMock()
	p, _ := setupProcessor(matches, players)

	err := p.UpdatePlayerStats("m1", false)
	require.NoError(t, err)

	require.Len(t, players.ApplyStatsCalls, 1)
	deltas := players.ApplyStatsCalls[0]
	// The guest has no local record and contributes no delta.
	require.Len(t, deltas, 3)

	byID := make(map[string]player.StatsDelta)
	for _, d := range deltas {
		byID[d.PlayerID] = d
	}
	assert.True(t, byID["p1"].Won)
	assert.Equal(t, 2, byID["p1"].SetsWon)
	assert.Equal(t, 0, byID["p1"].SetsLost)
	assert.Equal(t, 12, byID["p1"].GamesWon)
	assert.Equal(t, 6, byID["p1"].GamesLost)

	assert.False(t, byID["p3"].Won)
	assert.Equal(t, 0, byID["p3"].SetsWon)
	assert.Equal(t, 2, byID["p3"].SetsLost)
	assert.Equal(t, 6, byID["p3"].GamesWon)
	assert.Equal(t, 12, byID["p3"].GamesLost)
}

func TestUpdatePlayerStatsSkipsNonConfirmed(t *testing.T) {
	matches := match.NewMock()
	matches.GetFunc = func(matchID string) (*match.Match, error) {
		m := confirmedDoubles(matchID)
		m.Status = match.StatusPendingConfirmation
		return m, nil
	}
	players := player.NewMock()
	p, _ := setupProcessor(matches, players)

	err := p.UpdatePlayerStats("m1", false)
	require.NoError(t, err)
	assert.Empty(t, players.ApplyStatsCalls)
}

func TestUpdatePlayerStatsDryRun(t *testing.T) {
	matches := match.NewMock()
	matches.GetFunc = func(matchID string) (*match.Match, error) {
		return confirmedDoubles(matchID), nil
	}
	players := player.NewMock()
	p, _ := setupProcessor(matches, players)

	err := p.UpdatePlayerStats("m1", true)
	require.NoError(t, err)
	assert.Empty(t, players.ApplyStatsCalls)
}

func TestNotifyResult(t *testing.T) {
	matches := match.NewMock()
	matches.GetFunc = func(matchID string) (*match.Match, error) {
		return confirmedDoubles(matchID), nil
	}
	players := player.NewMock()
	players.GetFunc = func(playerID string) (*player.Player, error) {
		return &player.Player{ID: playerID, Name: "Player " + playerID}, nil
	}
	players.RatingHistoryFunc = func(playerID string) ([]player.RatingEntry, error) {
		return []player.RatingEntry{
			{MatchID: "other", Before: 1200, After: 1190, Delta: -10},
			{MatchID: "m1", Before: 1200, After: 1216, Delta: 16},
		}, nil
	}
	p, n := setupProcessor(matches, players)

	err := p.NotifyResult("m1", false)
	require.NoError(t, err)

	require.Len(t, n.ResultCalls, 1)
	result := n.ResultCalls[0]
	assert.Equal(t, "m1", result.Match.ID)
	assert.Equal(t, "Player p1", result.Names["p1"])
	require.Len(t, result.Changes, 3)
	assert.Equal(t, 16.0, result.Changes[0].Delta)
}

func TestNotifyBooking(t *testing.T) {
	reservations := reservation.NewMock()
	reservations.GetFunc = func(reservationID string) (*reservation.Reservation, error) {
		return &reservation.Reservation{
			ID:        reservationID,
			ClubID:    "c1",
			CourtID:   "court-1",
			BookedBy:  "p1",
			StartTime: 1000,
			EndTime:   4600,
		}, nil
	}
	clubs := club.NewMock()
	clubs.GetFunc = func(clubID string) (*club.Club, error) {
		return &club.Club{ID: clubID, Name: "Padel Palace"}, nil
	}
	clubs.GetCourtFunc = func(courtID string) (*club.Court, error) {
		return &club.Court{ID: courtID, Name: "Court 1"}, nil
	}
	players := player.NewMock()
	players.GetFunc = func(playerID string) (*player.Player, error) {
		return &player.Player{ID: playerID, Name: "Anna"}, nil
	}

	n := notifier.NewMock()
	p := New(match.NewMock(), players, clubs, reservations, n)

	err := p.NotifyBooking("r1", false)
	require.NoError(t, err)

	require.Len(t, n.BookingCalls, 1)
	notice := n.BookingCalls[0]
	assert.Equal(t, "Padel Palace", notice.ClubName)
	assert.Equal(t, "Court 1", notice.CourtName)
	assert.Equal(t, "Anna", notice.PlayerName)
}
