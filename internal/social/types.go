package social

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the follow graph and the feed.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Follow is one directed edge in the follow graph.
type Follow struct {
	FollowerID string `json:"follower_id"`
	FollowedID string `json:"followed_id"`
	CreatedAt  int64  `json:"created_at"`
}

// FeedItem is one finalized public match of a followed player, ready for
// rendering.
type FeedItem struct {
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
	OwnerID  string `json:"owner_id"`
	PlayedAt int64  `json:"played_at"`
	Location string `json:"location"`
	Score    string `json:"score"`
}
