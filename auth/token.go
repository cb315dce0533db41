package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the access token lifetime used when no TTL is configured.
const DefaultTokenTTL = 15 * time.Minute

// TokenService issues and verifies HS256-signed bearer tokens carrying the
// user id as the sub claim. The signing key and TTL are fixed at construction.
type TokenService struct {
	secret []byte
	ttl    time.Duration

	// now is swappable in tests
	now func() time.Time
}

// NewTokenService builds a TokenService with the given signing secret.
// A zero or negative ttl falls back to DefaultTokenTTL.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the given user id, expiring after the configured TTL.
func (s *TokenService) Issue(subjectID uint) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(subjectID), 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	})
	return token.SignedString(s.secret)
}

// Verify validates the signature and expiry of a token and returns the user
// id from its sub claim. It fails with ErrTokenExpired, ErrMissingSubject or
// ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}

	if claims.Subject == "" {
		return 0, ErrMissingSubject
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
