package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a user lookup (by username or by
	// API key) produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrDatasetNotFound is returned when a dataset lookup or removal
	// targets a name that does not exist in the store.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrStoreUnavailable is returned (wrapped around the driver error)
	// when the underlying persistence fails for any reason other than the
	// domain conditions above. It is always surfaced to the caller and
	// never silently retried: delete and update are not idempotent, so a
	// blind retry could violate ownership invariants.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
