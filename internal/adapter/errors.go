package adapter

import "errors"

var (
	// ErrEngineUnavailable is returned when the index backend cannot be
	// reached or responds with a server-side failure.
	ErrEngineUnavailable = errors.New("index backend unavailable")

	// ErrIndexNotFound is returned when an open or close call targets an
	// index the backend does not know about.
	ErrIndexNotFound = errors.New("index not found")
)
