package club

import "sync"

// MockStore is a mock implementation of the ClubStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	CreateFunc      func(c *Club) error
	GetFunc         func(clubID string) (*Club, error)
	GetAllFunc      func() ([]*Club, error)
	AddCourtFunc    func(c *Court) error
	GetCourtFunc    func(courtID string) (*Court, error)
	GetCourtsFunc   func(clubID string) ([]*Court, error)
	AddStaffFunc    func(clubID, playerID, role string) error
	RemoveStaffFunc func(clubID, playerID string) error
	GetStaffFunc    func(clubID string) ([]StaffMember, error)
	IsStaffFunc     func(clubID, playerID string) bool

	// Call records
	CreateCalls   []*Club
	AddCourtCalls []*Court
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Create(c *Club) error {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, c)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(c)
	}
	return nil
}

func (m *MockStore) Get(clubID string) (*Club, error) {
	if m.GetFunc != nil {
		return m.GetFunc(clubID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetAll() ([]*Club, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockStore) AddCourt(c *Court) error {
	m.mu.Lock()
	m.AddCourtCalls = append(m.AddCourtCalls, c)
	m.mu.Unlock()
	if m.AddCourtFunc != nil {
		return m.AddCourtFunc(c)
	}
	return nil
}

func (m *MockStore) GetCourt(courtID string) (*Court, error) {
	if m.GetCourtFunc != nil {
		return m.GetCourtFunc(courtID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetCourts(clubID string) ([]*Court, error) {
	if m.GetCourtsFunc != nil {
		return m.GetCourtsFunc(clubID)
	}
	return nil, nil
}

func (m *MockStore) AddStaff(clubID, playerID, role string) error {
	if m.AddStaffFunc != nil {
		return m.AddStaffFunc(clubID, playerID, role)
	}
	return nil
}

func (m *MockStore) RemoveStaff(clubID, playerID string) error {
	if m.RemoveStaffFunc != nil {
		return m.RemoveStaffFunc(clubID, playerID)
	}
	return nil
}

func (m *MockStore) GetStaff(clubID string) ([]StaffMember, error) {
	if m.GetStaffFunc != nil {
		return m.GetStaffFunc(clubID)
	}
	return nil, nil
}

func (m *MockStore) IsStaff(clubID, playerID string) bool {
	if m.IsStaffFunc != nil {
		return m.IsStaffFunc(clubID, playerID)
	}
	return false
}
