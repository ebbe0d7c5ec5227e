package domain

import "errors"

var (
	// ErrMalformedData is returned when the persisted account list cannot be decoded.
	ErrMalformedData = errors.New("malformed persisted account data")

	// ErrIndexOutOfRange is returned when an index does not address an existing account.
	ErrIndexOutOfRange = errors.New("account index out of range")

	// ErrPersist is returned when the account list could not be written back.
	// The in-memory list has already changed when this is reported.
	ErrPersist = errors.New("persist accounts")
)
