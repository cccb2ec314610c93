package social_test

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/mauv0809/courtside/internal/database"
	"github.com/mauv0809/courtside/internal/social"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (social.SocialStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return social.New(db), db, dbTeardown
}

func addPlayer(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO players (id, name, email, password_hash, rating, created_at) VALUES (?, ?, ?, 'x', 1200, 0)",
		id, "Player "+id, id+"@example.com",
	)
	require.NoError(t, err)
}

// addConfirmedMatch inserts a finished singles match with the given player on
// the roster.
func addConfirmedMatch(t *testing.T, db *sql.DB, id, playerID string, playedAt int64, public bool) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO matches (id, owner_id, kind, played_at, set1_home, set1_away, set2_home, set2_away, status, public, created_at)
		VALUES (?, ?, 'SINGLES', ?, 6, 2, 6, 3, 'CONFIRMED', ?, 0)`,
		id, playerID, playedAt, public,
	)
	require.NoError(t, err)
	_, err = db.Exec(
		"INSERT INTO participants (match_id, player_id, team, slot, joined_at) VALUES (?, ?, 'A', 1, 0)",
		id, playerID,
	)
	require.NoError(t, err)
}

func TestFollowIsIdempotent(t *testing.T) {
	store, db, teardown := setupTestStore(t)
	defer teardown()

	addPlayer(t, db, "p1")
	addPlayer(t, db, "p2")

	require.NoError(t, store.Follow("p1", "p2"))
	require.NoError(t, store.Follow("p1", "p2"))

	following, err := store.Following("p1")
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "p2", following[0].FollowedID)

	followers, err := store.Followers("p2")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "p1", followers[0].FollowerID)
}

func TestFollowRejectsSelf(t *testing.T) {
	store, db, teardown := setupTestStore(t)
	defer teardown()

	addPlayer(t, db, "p1")
	assert.ErrorIs(t, store.Follow("p1", "p1"), social.ErrSelfFollow)
}

func TestUnfollow(t *testing.T) {
	store, db, teardown := setupTestStore(t)
	defer teardown()

	addPlayer(t, db, "p1")
	addPlayer(t, db, "p2")

	require.NoError(t, store.Follow("p1", "p2"))
	require.NoError(t, store.Unfollow("p1", "p2"))
	// Unfollowing again is a no-op.
	require.NoError(t, store.Unfollow("p1", "p2"))

	following, err := store.Following("p1")
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestFeedShowsConfirmedPublicMatchesOfFollowed(t *testing.T) {
	store, db, teardown := setupTestStore(t)
	defer teardown()

	addPlayer(t, db, "viewer")
	addPlayer(t, db, "followed")
	addPlayer(t, db, "stranger")

	require.NoError(t, store.Follow("viewer", "followed"))

	addConfirmedMatch(t, db, "m1", "followed", 100, true)
	addConfirmedMatch(t, db, "m2", "followed", 200, true)
	addConfirmedMatch(t, db, "m3", "stranger", 300, true)
	// Private matches stay out of the feed.
	addConfirmedMatch(t, db, "m4", "followed", 400, false)

	feed, err := store.Feed("viewer", 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "m2", feed[0].MatchID)
	assert.Equal(t, "m1", feed[1].MatchID)
	assert.Equal(t, "followed", feed[0].PlayerID)
	assert.Equal(t, "6-2 6-3", feed[0].Score)
}

func TestFeedExcludesUnconfirmedMatches(t *testing.T) {
	store, db, teardown := setupTestStore(t)
	defer teardown()

	addPlayer(t, db, "viewer")
	addPlayer(t, db, "followed")
	require.NoError(t, store.Follow("viewer", "followed"))

	_, err := db.Exec(`
		INSERT INTO matches (id, owner_id, kind, played_at, status, public, created_at)
		VALUES ('pending', 'followed', 'SINGLES', 100, 'PENDING_CONFIRMATION', 1, 0)`)
	require.NoError(t, err)
	_, err = db.Exec(
		"INSERT INTO participants (match_id, player_id, team, slot, joined_at) VALUES ('pending', 'followed', 'A', 1, 0)")
	require.NoError(t, err)

	feed, err := store.Feed("viewer", 10)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFeedRespectsLimit(t *testing.T) {
	store, db, teardown := setupTestStore(t)
	defer teardown()

	addPlayer(t, db, "viewer")
	addPlayer(t, db, "followed")
	require.NoError(t, store.Follow("viewer", "followed"))

	for i := 0; i < 5; i++ {
		addConfirmedMatch(t, db, fmt.Sprintf("m%d", i), "followed", int64(i*100), true)
	}

	feed, err := store.Feed("viewer", 3)
	require.NoError(t, err)
	assert.Len(t, feed, 3)
}
