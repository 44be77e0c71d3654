package errs

import (
	"errors"
)

var (
	// ErrNotFound covers a missing ShelfStatus or BorrowRecord for the given
	// (book, owner) keys, and missing users/books on read surfaces.
	ErrNotFound = errors.New("not found")
	// ErrConflict is a transition attempted from the wrong location.
	ErrConflict = errors.New("conflicting lending state")
	// ErrUpstreamUnavailable means the primary catalog search call itself
	// failed; distinct from an empty result.
	ErrUpstreamUnavailable = errors.New("catalog upstream unavailable")
	ErrUserExists          = errors.New("username already taken")
	ErrEmailExists         = errors.New("email already in use")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	// ErrNotBorrowed rejects a lender rating from someone who never borrowed
	// from that lender.
	ErrNotBorrowed = errors.New("no prior borrow from this lender")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
