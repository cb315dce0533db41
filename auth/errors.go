package auth

import "errors"

// ErrInvalidCredentials is returned when an email/password pair does not
// match a stored user. Callers get the same error for an unknown email and
// a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken covers malformed tokens, bad signatures and tokens signed
// with an unexpected algorithm.
var ErrInvalidToken = errors.New("invalid token")

// ErrTokenExpired is returned for tokens past their exp claim.
var ErrTokenExpired = errors.New("token expired")

// ErrMissingSubject is returned for otherwise valid tokens without a sub claim.
var ErrMissingSubject = errors.New("token has no subject")

// ErrUnknownUser is returned when a token's subject does not resolve to a
// stored user.
var ErrUnknownUser = errors.New("unknown user")

// IsAuthError reports whether err belongs to the authentication taxonomy,
// i.e. should surface as a 401 at the HTTP boundary.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrMissingSubject) ||
		errors.Is(err, ErrUnknownUser)
}
