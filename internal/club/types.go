package club

import (
	"database/sql"
	"sync"
)

// store handles all database operations for clubs, courts and staff.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Club is a venue that hosts courts and matches.
type Club struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	CreatedAt int64  `json:"created_at"`
}

// Court belongs to exactly one club. Names are unique within the club.
type Court struct {
	ID      string `json:"id"`
	ClubID  string `json:"club_id"`
	Name    string `json:"name"`
	Surface string `json:"surface"`
	Indoor  bool   `json:"indoor"`
}

// StaffMember links a player account to a club with a role.
type StaffMember struct {
	ClubID   string `json:"club_id"`
	PlayerID string `json:"player_id"`
	Role     string `json:"role"`
	AddedAt  int64  `json:"added_at"`
}
