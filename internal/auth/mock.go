package auth

import "github.com/mauv0809/courtside/internal/player"

// MockService is a mock implementation of the Service interface for testing.
type MockService struct {
	RegisterFunc func(name, email, password string) (*player.Player, string, error)
	LoginFunc    func(email, password string) (*player.Player, string, error)
	VerifyFunc   func(tokenString string) (*Identity, error)
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Register(name, email, password string) (*player.Player, string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(name, email, password)
	}
	return nil, "", nil
}

func (m *MockService) Login(email, password string) (*player.Player, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(email, password)
	}
	return nil, "", ErrInvalidCredentials
}

func (m *MockService) Verify(tokenString string) (*Identity, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(tokenString)
	}
	return nil, ErrInvalidToken
}
