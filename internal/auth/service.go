package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mauv0809/courtside/internal/player"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// New creates a new authentication service.
func New(players player.PlayerStore, secret string) Service {
	return &service{
		players: players,
		secret:  []byte(secret),
	}
}

// Register creates the account and immediately signs a token for it.
func (s *service) Register(name, email, password string) (*player.Player, string, error) {
	name = strings.TrimSpace(name)
	if name == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: name and a valid email are required", ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, "", fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	p := &player.Player{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.players.Create(p); err != nil {
		return nil, "", err
	}

	token, err := s.sign(p)
	if err != nil {
		return nil, "", err
	}
	return p, token, nil
}

func (s *service) Login(email, password string) (*player.Player, string, error) {
	p, err := s.players.GetByEmail(email)
	if err == player.ErrNotFound {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		log.Debug("Password mismatch", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sign(p)
	if err != nil {
		return nil, "", err
	}
	return p, token, nil
}

func (s *service) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.PlayerID == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{PlayerID: claims.PlayerID, Name: claims.Name}, nil
}

func (s *service) sign(p *player.Player) (string, error) {
	now := time.Now()
	claims := Claims{
		PlayerID: p.ID,
		Name:     p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
