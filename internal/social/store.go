package social

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new SocialStore.
func New(db *sql.DB) SocialStore {
	return &store{
		db: db,
	}
}

// Follow adds a directed edge. Following someone twice is a no-op.
func (s *store) Follow(followerID, followedID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if followerID == followedID {
		return ErrSelfFollow
	}

	_, err := s.db.Exec(`
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(follower_id, followed_id) DO NOTHING`,
		followerID, followedID, time.Now().Unix(),
	)
	if err != nil {
		return err
	}
	log.Debug("Follow edge added", "follower", followerID, "followed", followedID)
	return nil
}

// Unfollow removes the edge. Removing a missing edge is a no-op.
func (s *store) Unfollow(followerID, followedID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"DELETE FROM follows WHERE follower_id = ? AND followed_id = ?",
		followerID, followedID,
	)
	return err
}

func (s *store) Following(playerID string) ([]Follow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edges("follower_id", playerID)
}

func (s *store) Followers(playerID string) ([]Follow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edges("followed_id", playerID)
}

func (s *store) edges(column, playerID string) ([]Follow, error) {
	rows, err := s.db.Query(
		"SELECT follower_id, followed_id, created_at FROM follows WHERE "+column+" = ? ORDER BY created_at DESC",
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var follows []Follow
	for rows.Next() {
		var f Follow
		if err := rows.Scan(&f.FollowerID, &f.FollowedID, &f.CreatedAt); err != nil {
			return nil, err
		}
		follows = append(follows, f)
	}
	return follows, rows.Err()
}

// Feed lists the confirmed public matches of followed players, newest first.
// A match where the viewer follows several participants appears once per
// followed participant so the rendering can say who it came from.
func (s *store) Feed(playerID string, limit int) ([]FeedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT DISTINCT m.id, pt.player_id, m.owner_id, m.played_at, m.location,
			m.set1_home, m.set1_away, m.set2_home, m.set2_away, m.set3_home, m.set3_away
		FROM follows f
		JOIN participants pt ON pt.player_id = f.followed_id
		JOIN matches m ON m.id = pt.match_id
		WHERE f.follower_id = ?
		  AND m.status = 'CONFIRMED'
		  AND m.public = 1
		ORDER BY m.played_at DESC
		LIMIT ?`, playerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feed []FeedItem
	for rows.Next() {
		var item FeedItem
		var pairs [6]sql.NullInt64
		err := rows.Scan(
			&item.MatchID, &item.PlayerID, &item.OwnerID, &item.PlayedAt, &item.Location,
			&pairs[0], &pairs[1], &pairs[2], &pairs[3], &pairs[4], &pairs[5],
		)
		if err != nil {
			log.Error("Failed to scan feed row", "error", err)
			continue
		}
		item.Score = formatScore(pairs)
		feed = append(feed, item)
	}
	return feed, rows.Err()
}

func formatScore(pairs [6]sql.NullInt64) string {
	var sets []string
	for i := 0; i < 3; i++ {
		if pairs[2*i].Valid && pairs[2*i+1].Valid {
			sets = append(sets, fmt.Sprintf("%d-%d", pairs[2*i].Int64, pairs[2*i+1].Int64))
		}
	}
	return strings.Join(sets, " ")
}
