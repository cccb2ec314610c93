package player

import (
	"database/sql"
	"sync"
)

// store handles all database operations for players.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a registered account. PasswordHash never leaves the package
// boundary in API responses.
type Player struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Rating       float64 `json:"rating"`
	CreatedAt    int64   `json:"created_at"`
}

// Stats is the aggregated match record of a player.
type Stats struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	MatchesPlayed int     `json:"matches_played"`
	MatchesWon    int     `json:"matches_won"`
	MatchesLost   int     `json:"matches_lost"`
	SetsWon       int     `json:"sets_won"`
	SetsLost      int     `json:"sets_lost"`
	GamesWon      int     `json:"games_won"`
	GamesLost     int     `json:"games_lost"`
	WinPercentage float64 `json:"win_percentage"`
}

// StatsDelta is one player's contribution from a single finalized match.
type StatsDelta struct {
	PlayerID  string
	Won       bool
	SetsWon   int
	SetsLost  int
	GamesWon  int
	GamesLost int
}

// RatingEntry is one row of a player's rating history, newest first.
type RatingEntry struct {
	MatchID string  `json:"match_id"`
	Before  float64 `json:"rating_before"`
	After   float64 `json:"rating_after"`
	Delta   float64 `json:"delta"`
	At      int64   `json:"at"`
}
