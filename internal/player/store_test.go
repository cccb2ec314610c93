package player_test

import (
	"testing"

	"github.com/mauv0809/courtside/internal/database"
	"github.com/mauv0809/courtside/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (player.PlayerStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return player.New(db), dbTeardown
}

func TestCreateAndLookup(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	p := &player.Player{Name: "Morten Voss", Email: "Morten@Example.com", PasswordHash: "hash"}
	require.NoError(t, store.Create(p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 1200.0, p.Rating)

	byID, err := store.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morten Voss", byID.Name)

	// Email lookup is case-insensitive.
	byEmail, err := store.GetByEmail("morten@example.com")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byEmail.ID)

	_, err = store.Get("nope")
	assert.ErrorIs(t, err, player.ErrNotFound)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.Create(&player.Player{Name: "A", Email: "a@example.com", PasswordHash: "x"}))
	err := store.Create(&player.Player{Name: "B", Email: "A@Example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, player.ErrEmailTaken)
}

func TestApplyStatsAccumulates(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	p := &player.Player{Name: "Anna", Email: "anna@example.com", PasswordHash: "x"}
	require.NoError(t, store.Create(p))

	require.NoError(t, store.ApplyStats([]player.StatsDelta{
		{PlayerID: p.ID, Won: true, SetsWon: 2, SetsLost: 0, GamesWon: 12, GamesLost: 5},
	}))
	require.NoError(t, store.ApplyStats([]player.StatsDelta{
		{PlayerID: p.ID, Won: false, SetsWon: 1, SetsLost: 2, GamesWon: 14, GamesLost: 16},
	}))

	stat, err := store.GetStatsByName("anna")
	require.NoError(t, err)
	assert.Equal(t, 2, stat.MatchesPlayed)
	assert.Equal(t, 1, stat.MatchesWon)
	assert.Equal(t, 1, stat.MatchesLost)
	assert.Equal(t, 3, stat.SetsWon)
	assert.Equal(t, 2, stat.SetsLost)
	assert.Equal(t, 26, stat.GamesWon)
	assert.Equal(t, 21, stat.GamesLost)
	assert.InDelta(t, 50.0, stat.WinPercentage, 0.0001)
}

func TestGetStatsByNameIsFuzzy(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	p := &player.Player{Name: "Morten Voss", Email: "mv@example.com", PasswordHash: "x"}
	require.NoError(t, store.Create(p))

	stat, err := store.GetStatsByName("morten")
	require.NoError(t, err)
	assert.Equal(t, "Morten Voss", stat.PlayerName)
	// No recorded matches yet still resolves with zeroed aggregates.
	assert.Equal(t, 0, stat.MatchesPlayed)

	_, err = store.GetStatsByName("nobody")
	assert.ErrorIs(t, err, player.ErrNotFound)
}

func TestRatingLeaderboardOrdersByRating(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	for _, fix := range []struct {
		name   string
		rating float64
	}{
		{"Low", 1100},
		{"High", 1400},
		{"Mid", 1250},
	} {
		require.NoError(t, store.Create(&player.Player{
			Name: fix.name, Email: fix.name + "@example.com", PasswordHash: "x", Rating: fix.rating,
		}))
	}

	top, err := store.RatingLeaderboard(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "High", top[0].Name)
	assert.Equal(t, "Mid", top[1].Name)
}

func TestUpdateName(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	p := &player.Player{Name: "Old", Email: "old@example.com", PasswordHash: "x"}
	require.NoError(t, store.Create(p))

	require.NoError(t, store.UpdateName(p.ID, "New"))
	got, err := store.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)

	assert.ErrorIs(t, store.UpdateName("missing", "x"), player.ErrNotFound)
}
