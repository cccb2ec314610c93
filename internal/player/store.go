package player

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new PlayerStore.
func New(db *sql.DB) PlayerStore {
	return &store{
		db: db,
	}
}

// Create inserts a new player. The caller provides the password hash; new
// accounts start at the default rating unless one is already set.
func (s *store) Create(p *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Rating == 0 {
		p.Rating = 1200
	}
	p.CreatedAt = time.Now().Unix()

	_, err := s.db.Exec(`
		INSERT INTO players (id, name, email, password_hash, rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, strings.ToLower(p.Email), p.PasswordHash, p.Rating, p.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrEmailTaken
		}
		return err
	}
	log.Info("Registered new player", "playerID", p.ID, "name", p.Name)
	return nil
}

func (s *store) Get(playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getPlayer("id = ?", playerID)
}

func (s *store) GetByEmail(email string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getPlayer("email = ?", strings.ToLower(email))
}

func (s *store) getPlayer(where string, arg any) (*Player, error) {
	var p Player
	err := s.db.QueryRow(
		"SELECT id, name, email, password_hash, rating, created_at FROM players WHERE "+where, arg,
	).Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.Rating, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *store) GetAll() ([]*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, email, password_hash, rating, created_at FROM players ORDER BY name")
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()
	return collectPlayers(rows)
}

func (s *store) UpdateName(playerID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE players SET name = ? WHERE id = ?", name, playerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplyStats folds the deltas into player_stats in one transaction. The
// upsert keeps the aggregates additive, so replaying a different match never
// overwrites earlier totals.
func (s *store) ApplyStats(deltas []StatsDelta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO player_stats (player_id, matches_played, matches_won, matches_lost, sets_won, sets_lost, games_won, games_lost)
		VALUES (?, 1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			matches_played = matches_played + 1,
			matches_won = matches_won + excluded.matches_won,
			matches_lost = matches_lost + excluded.matches_lost,
			sets_won = sets_won + excluded.sets_won,
			sets_lost = sets_lost + excluded.sets_lost,
			games_won = games_won + excluded.games_won,
			games_lost = games_lost + excluded.games_lost;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range deltas {
		won, lost := 0, 1
		if d.Won {
			won, lost = 1, 0
		}
		if _, err := stmt.Exec(d.PlayerID, won, lost, d.SetsWon, d.SetsLost, d.GamesWon, d.GamesLost); err != nil {
			return fmt.Errorf("failed to update stats for player %s: %w", d.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Updated player stats", "players", len(deltas))
	return nil
}

func (s *store) GetStats() ([]Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT
			ps.player_id,
			p.name,
			ps.matches_played,
			ps.matches_won,
			ps.matches_lost,
			ps.sets_won,
			ps.sets_lost,
			ps.games_won,
			ps.games_lost
		FROM player_stats ps
		JOIN players p ON ps.player_id = p.id
		ORDER BY ps.matches_won DESC, ps.sets_won DESC, ps.games_won DESC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var stat Stats
		err := rows.Scan(
			&stat.PlayerID,
			&stat.PlayerName,
			&stat.MatchesPlayed,
			&stat.MatchesWon,
			&stat.MatchesLost,
			&stat.SetsWon,
			&stat.SetsLost,
			&stat.GamesWon,
			&stat.GamesLost,
		)
		if err != nil {
			return nil, err
		}
		if stat.MatchesPlayed > 0 {
			stat.WinPercentage = (float64(stat.MatchesWon) / float64(stat.MatchesPlayed)) * 100
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

// GetStatsByName retrieves the statistics for a single player by their name.
// It performs a case-insensitive, fuzzy search (e.g., "morten" will match
// "Morten Voss").
func (s *store) GetStatsByName(playerName string) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT
			p.id,
			p.name,
			COALESCE(ps.matches_played, 0),
			COALESCE(ps.matches_won, 0),
			COALESCE(ps.matches_lost, 0),
			COALESCE(ps.sets_won, 0),
			COALESCE(ps.sets_lost, 0),
			COALESCE(ps.games_won, 0),
			COALESCE(ps.games_lost, 0)
		FROM players p
		LEFT JOIN player_stats ps ON p.id = ps.player_id
		WHERE p.name LIKE ? COLLATE NOCASE
		LIMIT 1
	`

	var stat Stats
	pattern := "%" + playerName + "%"

	row := s.db.QueryRow(query, pattern)
	err := row.Scan(
		&stat.PlayerID,
		&stat.PlayerName,
		&stat.MatchesPlayed,
		&stat.MatchesWon,
		&stat.MatchesLost,
		&stat.SetsWon,
		&stat.SetsLost,
		&stat.GamesWon,
		&stat.GamesLost,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("No stats found for player matching pattern", "pattern", pattern)
			return nil, ErrNotFound
		}
		log.Error("Failed to query player stats by name", "error", err, "pattern", pattern)
		return nil, fmt.Errorf("database error: %w", err)
	}

	if stat.MatchesPlayed > 0 {
		stat.WinPercentage = (float64(stat.MatchesWon) / float64(stat.MatchesPlayed)) * 100
	}
	return &stat, nil
}

// RatingLeaderboard retrieves the top rated players.
func (s *store) RatingLeaderboard(limit int) ([]*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		"SELECT id, name, email, password_hash, rating, created_at FROM players ORDER BY rating DESC, name LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlayers(rows)
}

func (s *store) RatingHistory(playerID string) ([]RatingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT match_id, rating_before, rating_after, delta, created_at
		FROM rating_history
		WHERE player_id = ?
		ORDER BY created_at DESC`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []RatingEntry
	for rows.Next() {
		var e RatingEntry
		if err := rows.Scan(&e.MatchID, &e.Before, &e.After, &e.Delta, &e.At); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func collectPlayers(rows *sql.Rows) ([]*Player, error) {
	var players []*Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.Rating, &p.CreatedAt); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, &p)
	}
	return players, rows.Err()
}
