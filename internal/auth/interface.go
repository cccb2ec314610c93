package auth

import "github.com/mauv0809/courtside/internal/player"

// Service defines the authentication operations.
type Service interface {
	Register(name, email, password string) (*player.Player, string, error)
	Login(email, password string) (*player.Player, string, error)
	Verify(tokenString string) (*Identity, error)
}
