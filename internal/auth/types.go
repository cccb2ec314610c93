package auth

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/mauv0809/courtside/internal/player"
)

// BcryptCost balances hashing time against brute-force resistance.
const BcryptCost = 12

// Claims is what a courtside token carries.
type Claims struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller attached to request contexts.
type Identity struct {
	PlayerID string
	Name     string
}

type service struct {
	players player.PlayerStore
	secret  []byte
}
