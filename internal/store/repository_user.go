package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the stored [models.User].
//
// Error handling:
//   - unique violation (username or api_key taken) → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertUserQuery(r.db.Builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building insert query")
		return models.User{}, err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: executing insert")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, r.storeError(err)
		}
	}

	return user, nil
}

// GetUser retrieves a user record by username.
//
// Error handling:
//   - empty result set → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrStoreUnavailable].
func (r *userRepository) GetUser(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.Builder(), username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error: building select query")
		return models.User{}, err
	}

	return r.scanUser(ctx, query, args)
}

// GetUserByAPIKey retrieves a user record by its long-lived API key.
// The call blocks only on the underlying driver I/O; no locks are held.
//
// Error handling mirrors [userRepository.GetUser].
func (r *userRepository) GetUserByAPIKey(ctx context.Context, apiKey string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByAPIKeyQuery(r.db.Builder(), apiKey)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByAPIKey").Msg("error: building select query")
		return models.User{}, err
	}

	return r.scanUser(ctx, query, args)
}

func (r *userRepository) scanUser(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		user      models.User
		apiKey    sql.NullString
		rawGroups []byte
	)

	row := r.db.QueryRowContext(ctx, query, args...)
	err := row.Scan(&user.Username, &user.FullName, &user.HashedPassword, &apiKey, &rawGroups, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.scanUser").Msg("error: scanning user row")
		return models.User{}, r.storeError(err)
	}

	user.APIKey = apiKey.String
	if len(rawGroups) > 0 {
		if err := json.Unmarshal(rawGroups, &user.UserGroups); err != nil {
			log.Err(err).Str("func", "*userRepository.scanUser").Msg("error: decoding user groups")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return user, nil
}

func (r *userRepository) storeError(err error) error {
	r.logger.Debug().
		Int("classification", int(r.db.errorClassificator.Classify(err))).
		Msg("classified store error")
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
