package services

import "errors"

// Conflict errors surface as HTTP 400 at the boundary.
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrAdminExists    = errors.New("an admin already exists")
	ErrPeriodConflict = errors.New("book is already borrowed during the requested period")
	ErrInvalidPeriod  = errors.New("start date must be before end date")
	ErrInvalidCopies  = errors.New("copies must not be negative")
)

// Not-found errors surface as HTTP 404.
var (
	ErrBookNotFound    = errors.New("book not found")
	ErrRequestNotFound = errors.New("borrow request not found")
)

// IsConflict reports whether err belongs to the conflict/validation taxonomy.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrAdminExists) ||
		errors.Is(err, ErrPeriodConflict) ||
		errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrInvalidCopies)
}

// IsNotFound reports whether err belongs to the not-found taxonomy.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBookNotFound) || errors.Is(err, ErrRequestNotFound)
}
