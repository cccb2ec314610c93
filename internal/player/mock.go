package player

import "sync"

// MockStore is a mock implementation of the PlayerStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	CreateFunc            func(p *Player) error
	GetFunc               func(playerID string) (*Player, error)
	GetByEmailFunc        func(email string) (*Player, error)
	GetAllFunc            func() ([]*Player, error)
	UpdateNameFunc        func(playerID, name string) error
	ApplyStatsFunc        func(deltas []StatsDelta) error
	GetStatsFunc          func() ([]Stats, error)
	GetStatsByNameFunc    func(playerName string) (*Stats, error)
	RatingLeaderboardFunc func(limit int) ([]*Player, error)
	RatingHistoryFunc     func(playerID string) ([]RatingEntry, error)

	// Call records
	CreateCalls     []*Player
	ApplyStatsCalls [][]StatsDelta
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Create(p *Player) error {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, p)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(p)
	}
	return nil
}

func (m *MockStore) Get(playerID string) (*Player, error) {
	if m.GetFunc != nil {
		return m.GetFunc(playerID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetByEmail(email string) (*Player, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(email)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetAll() ([]*Player, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockStore) UpdateName(playerID, name string) error {
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(playerID, name)
	}
	return nil
}

func (m *MockStore) ApplyStats(deltas []StatsDelta) error {
	m.mu.Lock()
	m.ApplyStatsCalls = append(m.ApplyStatsCalls, deltas)
	m.mu.Unlock()
	if m.ApplyStatsFunc != nil {
		return m.ApplyStatsFunc(deltas)
	}
	return nil
}

func (m *MockStore) GetStats() ([]Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetStatsByName(playerName string) (*Stats, error) {
	if m.GetStatsByNameFunc != nil {
		return m.GetStatsByNameFunc(playerName)
	}
	return nil, ErrNotFound
}

func (m *MockStore) RatingLeaderboard(limit int) ([]*Player, error) {
	if m.RatingLeaderboardFunc != nil {
		return m.RatingLeaderboardFunc(limit)
	}
	return nil, nil
}

func (m *MockStore) RatingHistory(playerID string) ([]RatingEntry, error) {
	if m.RatingHistoryFunc != nil {
		return m.RatingHistoryFunc(playerID)
	}
	return nil, nil
}
