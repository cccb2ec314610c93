package reservation

import (
	"database/sql"
	"sync"
)

// store handles all database operations for court reservations.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Reservation books one court for one fixed slot. The (court, start time)
// pair is unique, which is what makes double booking impossible.
type Reservation struct {
	ID        string `json:"id"`
	ClubID    string `json:"club_id"`
	CourtID   string `json:"court_id"`
	BookedBy  string `json:"booked_by"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
	CreatedAt int64  `json:"created_at"`
}
