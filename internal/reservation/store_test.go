package reservation_test

import (
	"database/sql"
	"sync"
	"testing"

	"github.com/mauv0809/courtside/internal/database"
	"github.com/mauv0809/courtside/internal/reservation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (reservation.ReservationStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	seedFixtures(t, db)
	return reservation.New(db), dbTeardown
}

// seedFixtures satisfies the foreign keys: one club, one court, two players.
func seedFixtures(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec("INSERT INTO clubs (id, name, city, created_at) VALUES ('club1', 'Padel Palace', 'Copenhagen', 0)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO courts (id, club_id, name) VALUES ('court1', 'club1', 'Court 1')")
	require.NoError(t, err)
	for _, id := range []string{"p1", "p2"} {
		_, err = db.Exec(
			"INSERT INTO players (id, name, email, password_hash, rating, created_at) VALUES (?, ?, ?, 'x', 1200, 0)",
			id, "Player "+id, id+"@example.com",
		)
		require.NoError(t, err)
	}
}

func TestBookAndGet(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	r := &reservation.Reservation{
		ClubID: "club1", CourtID: "court1", BookedBy: "p1",
		StartTime: 1000, EndTime: 2000,
	}
	require.NoError(t, store.Book(r))
	assert.NotEmpty(t, r.ID)

	got, err := store.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.BookedBy)
	assert.Equal(t, int64(1000), got.StartTime)
}

func TestBookRejectsDoubleBooking(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	first := &reservation.Reservation{
		ClubID: "club1", CourtID: "court1", BookedBy: "p1",
		StartTime: 1000, EndTime: 2000,
	}
	require.NoError(t, store.Book(first))

	// Same court, same slot, different player.
	second := &reservation.Reservation{
		ClubID: "club1", CourtID: "court1", BookedBy: "p2",
		StartTime: 1000, EndTime: 2000,
	}
	assert.ErrorIs(t, store.Book(second), reservation.ErrSlotTaken)

	// The next slot is free.
	second.StartTime, second.EndTime = 2000, 3000
	second.ID = ""
	assert.NoError(t, store.Book(second))
}

func TestBookConcurrentSameSlot(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, p := range []string{"p1", "p2"} {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			errs[i] = store.Book(&reservation.Reservation{
				ClubID: "club1", CourtID: "court1", BookedBy: p,
				StartTime: 1000, EndTime: 2000,
			})
		}(i, p)
	}
	wg.Wait()

	// Exactly one booking wins.
	if errs[0] == nil {
		assert.ErrorIs(t, errs[1], reservation.ErrSlotTaken)
	} else {
		assert.ErrorIs(t, errs[0], reservation.ErrSlotTaken)
		assert.NoError(t, errs[1])
	}
}

func TestBookRejectsInvalidSlot(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	err := store.Book(&reservation.Reservation{
		ClubID: "club1", CourtID: "court1", BookedBy: "p1",
		StartTime: 2000, EndTime: 1000,
	})
	assert.ErrorIs(t, err, reservation.ErrInvalidSlot)
}

func TestGetByCourtWindow(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	for _, start := range []int64{1000, 2000, 3000} {
		require.NoError(t, store.Book(&reservation.Reservation{
			ClubID: "club1", CourtID: "court1", BookedBy: "p1",
			StartTime: start, EndTime: start + 1000,
		}))
	}

	inWindow, err := store.GetByCourt("court1", 1000, 3000)
	require.NoError(t, err)
	require.Len(t, inWindow, 2)
	assert.Equal(t, int64(1000), inWindow[0].StartTime)
	assert.Equal(t, int64(2000), inWindow[1].StartTime)
}

func TestCancelAuthorization(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	r := &reservation.Reservation{
		ClubID: "club1", CourtID: "court1", BookedBy: "p1",
		StartTime: 1000, EndTime: 2000,
	}
	require.NoError(t, store.Book(r))

	assert.ErrorIs(t, store.Cancel(r.ID, "p2", false), reservation.ErrNotAuthorized)

	// Club staff may cancel any booking at their club.
	require.NoError(t, store.Cancel(r.ID, "p2", true))
	_, err := store.Get(r.ID)
	assert.ErrorIs(t, err, reservation.ErrNotFound)

	assert.ErrorIs(t, store.Cancel(r.ID, "p1", false), reservation.ErrNotFound)
}
