package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName carries the signed admin session token.
const CookieName = "petcare_admin_session"

type SessionClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// Sessions issues and verifies the signed admin session token. There is
// exactly one shared credential pair, so the token carries no identity
// beyond the admin flag.
type Sessions struct {
	Secret []byte
	TTL    time.Duration
}

func (s *Sessions) Issue() (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "petcare",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *Sessions) Verify(tokenStr string) (*SessionClaims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return s.Secret, nil
	}, jwt.WithIssuer("petcare"), jwt.WithLeeway(60*time.Second))
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*SessionClaims); ok && t.Valid && c.Admin {
		return c, nil
	}
	return nil, errors.New("invalid session token")
}
