package player

// PlayerStore defines the interface for player account and statistics storage.
type PlayerStore interface {
	Create(p *Player) error
	Get(playerID string) (*Player, error)
	GetByEmail(email string) (*Player, error)
	GetAll() ([]*Player, error)
	UpdateName(playerID, name string) error

	// ApplyStats folds the per-player deltas of a finalized match into the
	// running aggregates.
	ApplyStats(deltas []StatsDelta) error
	GetStats() ([]Stats, error)
	GetStatsByName(playerName string) (*Stats, error)
	RatingLeaderboard(limit int) ([]*Player, error)
	RatingHistory(playerID string) ([]RatingEntry, error)
}
