package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/chitresh99/cybersecurity-club-apsit/config"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carried by an access token. The subject is the admin username;
// liveness of the account is re-checked by the caller on every request
// since the token itself carries no deactivation state.
type Claims struct {
	Subject string `json:"sub"`
	jwtv5.RegisteredClaims
}

// Manager issues and verifies signed, time-limited access tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager from the auth configuration.
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.AccessTokenTTL,
	}
}

// TTL reports the configured token lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Generate issues an access token for the given username.
func (m *Manager) Generate(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Subject: username,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "cybersecurity-club-apsit",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a token and returns its claims. It fails closed: a bad
// signature, a non-HMAC signing method, a malformed payload, or an expired
// token all yield an error, never a partial identity.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
