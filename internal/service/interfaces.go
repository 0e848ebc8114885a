package service

import (
	"context"

	"github.com/mkarev/go-dataset-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService proves identity from one of two credential kinds (password or
// API key) and exposes read-only user lookups plus session token management.
type AuthService interface {
	// AuthenticateUser verifies username/password against the stored
	// bcrypt digest. Unknown username and wrong password are both
	// reported as ErrInvalidCredentials and are indistinguishable to the
	// caller, so usernames cannot be enumerated.
	AuthenticateUser(ctx context.Context, username, password string) (models.User, error)

	// GetUser looks a user up with no credential check; used for internal
	// resolution once identity is otherwise established.
	GetUser(ctx context.Context, username string) (models.User, error)

	// FindUserByAPIKey resolves a user from a long-lived bearer-style
	// credential. Blocks only on store I/O.
	FindUserByAPIKey(ctx context.Context, apiKey string) (models.User, error)

	// CreateToken issues a signed session JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DatasetService is the single authorization-and-mutation boundary for
// dataset resources. Every operation takes the caller's resolved group scope
// explicitly; no dataset whose owner falls outside that scope is ever
// returned or mutated.
type DatasetService interface {
	// List returns every dataset whose owner is a member of owners.
	// An empty result is a success, not an error.
	List(ctx context.Context, owners []string) ([]models.Dataset, error)

	// FindByName looks a dataset up by name scoped to owner. Fails with
	// store.ErrDatasetNotFound if no dataset carries the name at all, or
	// ErrNotAuthorized if it exists under a different owner.
	FindByName(ctx context.Context, name, owner string) (models.Dataset, error)

	// Update merges the partial data into the stored record (fields and
	// keys absent from data are left untouched), persists the result in a
	// single store call, and returns the post-merge record.
	Update(ctx context.Context, name string, data models.DatasetUpdate, owner string) (models.Dataset, error)

	// Delete removes the dataset record and drops its backend index.
	// Deletion is not idempotent: a second call fails with
	// store.ErrDatasetNotFound.
	Delete(ctx context.Context, name, owner string) error

	// CloseDataset transitions the dataset to the closed state and
	// triggers the backend resource release. Closing an already-closed
	// dataset is a no-op success.
	CloseDataset(ctx context.Context, name, owner string) error

	// OpenDataset transitions the dataset to the open state and triggers
	// backend resource re-allocation. Opening an already-open dataset is
	// a no-op success.
	OpenDataset(ctx context.Context, name, owner string) error
}

// AppInfoService reports build metadata about the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
