package session

import (
	"errors"
	"fmt"
	"time"

	"finance-view/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid session token")
	ErrExpiredToken  = errors.New("session token is expired")
	ErrInvalidIssuer = errors.New("invalid issuer")
	ErrEmptyToken    = errors.New("empty session token")
)

// Claims carried by the session cookie
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// Tokens issues and validates HS256 session cookies
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(cfg config.SessionConfig) *Tokens {
	return &Tokens{
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    time.Now,
	}
}

// NewSessionID returns a fresh random session id
func NewSessionID() string {
	return uuid.New().String()
}

// Issue signs a token for sessionID and returns it with its expiry
func (t *Tokens) Issue(sessionID string) (string, time.Time, error) {
	if sessionID == "" {
		return "", time.Time{}, errors.New("session id cannot be empty")
	}

	now := t.now()
	expiresAt := now.Add(t.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   sessionID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		SessionID: sessionID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate parses a token and returns its session id
func (t *Tokens) Validate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, t.keyFunc, jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Issuer != t.issuer {
		return "", ErrInvalidIssuer
	}
	if claims.SessionID == "" {
		return "", ErrInvalidToken
	}

	return claims.SessionID, nil
}

func (t *Tokens) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return t.secret, nil
}
