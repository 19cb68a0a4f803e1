// Package session is the single authority for issuing and verifying the
// bearer tokens the API runs on. Nothing else in the codebase touches
// token encoding; components receive an Identity instead of reading
// credentials from ambient state.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired = errors.New("session expired")
	ErrInvalid = errors.New("invalid session token")
)

// Identity is the verified content of a session token.
type Identity struct {
	Username string
	Role     string
	FamilyID string
}

type claims struct {
	Username string `json:"username"`
	Role     string `json:"userrole"`
	FamilyID string `json:"userfamily"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed token for the identity, expiring after the
// manager's TTL.
func (m *Manager) Issue(id Identity, now time.Time) (string, error) {
	c := claims{
		Username: id.Username,
		Role:     id.Role,
		FamilyID: id.FamilyID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
func (m *Manager) Verify(tokenString string) (Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpired
		}
		return Identity{}, ErrInvalid
	}
	if !token.Valid || c.Username == "" {
		return Identity{}, ErrInvalid
	}

	return Identity{Username: c.Username, Role: c.Role, FamilyID: c.FamilyID}, nil
}

// TTL reports how long issued tokens stay valid.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
