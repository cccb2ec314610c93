package match

import "github.com/mauv0809/courtside/internal/rating"

// MatchStore defines the interface for match lifecycle and roster operations.
type MatchStore interface {
	Create(m *Match) error
	Get(matchID string) (*Match, error)
	ListByPlayer(playerID string) ([]*Match, error)
	ListAll() ([]*Match, error)
	UpdateScore(matchID string, actor Actor, sets []SetScore, notes string) error
	SetVisibility(matchID string, actor Actor, public bool) error
	Submit(matchID string, actor Actor) error
	Cancel(matchID string, actor Actor) error
	Confirm(matchID string, actor Actor) (*Match, []rating.Change, error)
	Join(matchID, playerID string) (*Participant, error)
	// Import inserts an externally sourced match verbatim, including an
	// already confirmed status. Imported matches never touch ratings.
	Import(m *Match) error
	Delete(matchID string, actor Actor) error
}
