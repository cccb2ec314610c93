package reservation

import (
	"database/sql"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new ReservationStore.
func New(db *sql.DB) ReservationStore {
	return &store{
		db: db,
	}
}

// Book inserts a reservation. The unique (court, start time) constraint is
// the authority on double booking, so a lost race surfaces as ErrSlotTaken
// rather than a silent overwrite.
func (s *store) Book(r *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.StartTime <= 0 || r.EndTime <= r.StartTime {
		return ErrInvalidSlot
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now().Unix()

	_, err := s.db.Exec(`
		INSERT INTO reservations (id, club_id, court_id, booked_by, start_time, end_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ClubID, r.CourtID, r.BookedBy, r.StartTime, r.EndTime, r.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrSlotTaken
		}
		return err
	}
	log.Info("Booked court", "reservationID", r.ID, "courtID", r.CourtID, "start", r.StartTime, "by", r.BookedBy)
	return nil
}

func (s *store) Get(reservationID string) (*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r Reservation
	err := s.db.QueryRow(`
		SELECT id, club_id, court_id, booked_by, start_time, end_time, created_at
		FROM reservations WHERE id = ?`, reservationID,
	).Scan(&r.ID, &r.ClubID, &r.CourtID, &r.BookedBy, &r.StartTime, &r.EndTime, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetByCourt retrieves the bookings of one court inside a time window.
func (s *store) GetByCourt(courtID string, from, to int64) ([]*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, club_id, court_id, booked_by, start_time, end_time, created_at
		FROM reservations
		WHERE court_id = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time`, courtID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

func (s *store) GetByPlayer(playerID string) ([]*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, club_id, court_id, booked_by, start_time, end_time, created_at
		FROM reservations
		WHERE booked_by = ?
		ORDER BY start_time DESC`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

// Cancel removes a booking. The booker may always cancel their own; club
// staff may cancel any booking at their club.
func (s *store) Cancel(reservationID, playerID string, staff bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bookedBy string
	err := s.db.QueryRow("SELECT booked_by FROM reservations WHERE id = ?", reservationID).Scan(&bookedBy)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if bookedBy != playerID && !staff {
		return ErrNotAuthorized
	}

	_, err = s.db.Exec("DELETE FROM reservations WHERE id = ?", reservationID)
	if err != nil {
		return err
	}
	log.Info("Cancelled reservation", "reservationID", reservationID, "by", playerID)
	return nil
}

func collectReservations(rows *sql.Rows) ([]*Reservation, error) {
	var reservations []*Reservation
	for rows.Next() {
		var r Reservation
		err := rows.Scan(&r.ID, &r.ClubID, &r.CourtID, &r.BookedBy, &r.StartTime, &r.EndTime, &r.CreatedAt)
		if err != nil {
			log.Error("Failed to scan reservation row", "error", err)
			continue
		}
		reservations = append(reservations, &r)
	}
	return reservations, rows.Err()
}
