package store

import (
	"context"

	"github.com/mkarev/go-dataset-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store. It persists user records
// (username, hashed password, API key, group memberships) and is the only
// component allowed to touch the users table.
type UserRepository interface {
	// CreateUser persists a new user account and returns the stored record.
	// Returns ErrUsernameAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUser retrieves a user by username.
	// Returns ErrUserNotFound when no such account exists.
	GetUser(ctx context.Context, username string) (models.User, error)

	// GetUserByAPIKey resolves a user from a long-lived API key.
	// Returns ErrUserNotFound when no account carries the key.
	GetUserByAPIKey(ctx context.Context, apiKey string) (models.User, error)
}

// DatasetRepository is the dataset store. Lookups are unscoped by design:
// ownership checks belong to the service layer, which needs to distinguish
// "does not exist" from "exists under another owner".
type DatasetRepository interface {
	// List returns every dataset whose owner is a member of owners, in
	// store-defined order. An empty result is not an error.
	List(ctx context.Context, owners []string) ([]models.Dataset, error)

	// Get retrieves a dataset by name regardless of owner.
	// Returns ErrDatasetNotFound when no dataset carries the name.
	Get(ctx context.Context, name string) (models.Dataset, error)

	// Put persists the full dataset record (insert or overwrite) and
	// returns the stored version with the refreshed LastUpdated stamp.
	Put(ctx context.Context, dataset models.Dataset) (models.Dataset, error)

	// Remove deletes the record for name.
	// Returns ErrDatasetNotFound when nothing was removed.
	Remove(ctx context.Context, name string) error
}
