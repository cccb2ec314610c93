package match

import (
	"sync"

	"github.com/mauv0809/courtside/internal/rating"
)

// MockStore is a mock implementation of the MatchStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateFunc        func(m *Match) error
	GetFunc           func(matchID string) (*Match, error)
	ListByPlayerFunc  func(playerID string) ([]*Match, error)
	ListAllFunc       func() ([]*Match, error)
	UpdateScoreFunc   func(matchID string, actor Actor, sets []SetScore, notes string) error
	SetVisibilityFunc func(matchID string, actor Actor, public bool) error
	SubmitFunc        func(matchID string, actor Actor) error
	CancelFunc        func(matchID string, actor Actor) error
	ConfirmFunc       func(matchID string, actor Actor) (*Match, []rating.Change, error)
	JoinFunc          func(matchID, playerID string) (*Participant, error)
	ImportFunc        func(m *Match) error
	DeleteFunc        func(matchID string, actor Actor) error

	// Call records
	CreateCalls  []*Match
	ImportCalls  []*Match
	ConfirmCalls []string
	JoinCalls    []struct {
		MatchID  string
		PlayerID string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Create(ma *Match) error {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, ma)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ma)
	}
	return nil
}

func (m *MockStore) Get(matchID string) (*Match, error) {
	if m.GetFunc != nil {
		return m.GetFunc(matchID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) ListByPlayer(playerID string) ([]*Match, error) {
	if m.ListByPlayerFunc != nil {
		return m.ListByPlayerFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) ListAll() ([]*Match, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc()
	}
	return nil, nil
}

func (m *MockStore) UpdateScore(matchID string, actor Actor, sets []SetScore, notes string) error {
	if m.UpdateScoreFunc != nil {
		return m.UpdateScoreFunc(matchID, actor, sets, notes)
	}
	return nil
}

func (m *MockStore) SetVisibility(matchID string, actor Actor, public bool) error {
	if m.SetVisibilityFunc != nil {
		return m.SetVisibilityFunc(matchID, actor, public)
	}
	return nil
}

func (m *MockStore) Submit(matchID string, actor Actor) error {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(matchID, actor)
	}
	return nil
}

func (m *MockStore) Cancel(matchID string, actor Actor) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(matchID, actor)
	}
	return nil
}

func (m *MockStore) Confirm(matchID string, actor Actor) (*Match, []rating.Change, error) {
	m.mu.Lock()
	m.ConfirmCalls = append(m.ConfirmCalls, matchID)
	m.mu.Unlock()
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(matchID, actor)
	}
	return nil, nil, ErrNotFound
}

func (m *MockStore) Join(matchID, playerID string) (*Participant, error) {
	m.mu.Lock()
	m.JoinCalls = append(m.JoinCalls, struct {
		MatchID  string
		PlayerID string
	}{matchID, playerID})
	m.mu.Unlock()
	if m.JoinFunc != nil {
		return m.JoinFunc(matchID, playerID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) Import(ma *Match) error {
	m.mu.Lock()
	m.ImportCalls = append(m.ImportCalls, ma)
	m.mu.Unlock()
	if m.ImportFunc != nil {
		return m.ImportFunc(ma)
	}
	return nil
}

func (m *MockStore) Delete(matchID string, actor Actor) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(matchID, actor)
	}
	return nil
}
