package reservation

import "sync"

// MockStore is a mock implementation of the ReservationStore interface for
// testing.
type MockStore struct {
	mu sync.Mutex

	BookFunc        func(r *Reservation) error
	GetFunc         func(reservationID string) (*Reservation, error)
	GetByCourtFunc  func(courtID string, from, to int64) ([]*Reservation, error)
	GetByPlayerFunc func(playerID string) ([]*Reservation, error)
	CancelFunc      func(reservationID, playerID string, staff bool) error

	// Call records
	BookCalls []*Reservation
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Book(r *Reservation) error {
	m.mu.Lock()
	m.BookCalls = append(m.BookCalls, r)
	m.mu.Unlock()
	if m.BookFunc != nil {
		return m.BookFunc(r)
	}
	return nil
}

func (m *MockStore) Get(reservationID string) (*Reservation, error) {
	if m.GetFunc != nil {
		return m.GetFunc(reservationID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetByCourt(courtID string, from, to int64) ([]*Reservation, error) {
	if m.GetByCourtFunc != nil {
		return m.GetByCourtFunc(courtID, from, to)
	}
	return nil, nil
}

func (m *MockStore) GetByPlayer(playerID string) ([]*Reservation, error) {
	if m.GetByPlayerFunc != nil {
		return m.GetByPlayerFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) Cancel(reservationID, playerID string, staff bool) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(reservationID, playerID, staff)
	}
	return nil
}
