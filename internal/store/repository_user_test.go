package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db: &DB{
			DB:                 db,
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:       "john",
		FullName:       "John Doe",
		HashedPassword: "$2a$10$digest",
		UserGroups:     []string{"team-a"},
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.Username, user.FullName, user.HashedPassword, nil, `["team-a"]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped on creation")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, models.User{Username: "john"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(ctx, models.User{Username: "john"})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func userRows(createdAt time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"username", "full_name", "hashed_password", "api_key", "user_groups", "created_at"}).
		AddRow("john", "John Doe", "$2a$10$digest", "key-123", []byte(`["team-a","team-b"]`), createdAt)
}

func TestGetUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT username, full_name, hashed_password, api_key, user_groups, created_at FROM users").
		WithArgs("john").
		WillReturnRows(userRows(now))

	user, err := repo.GetUser(ctx, "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "john" {
		t.Errorf("expected username john, got %s", user.Username)
	}
	if len(user.UserGroups) != 2 || user.UserGroups[0] != "team-a" {
		t.Errorf("unexpected groups: %v", user.UserGroups)
	}
	if user.APIKey != "key-123" {
		t.Errorf("expected api key to be scanned, got %q", user.APIKey)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT username, full_name, hashed_password, api_key, user_groups, created_at FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUser(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByAPIKey_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT username, full_name, hashed_password, api_key, user_groups, created_at FROM users").
		WithArgs("key-123").
		WillReturnRows(userRows(time.Now()))

	user, err := repo.GetUserByAPIKey(ctx, "key-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "john" {
		t.Errorf("expected username john, got %s", user.Username)
	}
}

func TestGetUserByAPIKey_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT username, full_name, hashed_password, api_key, user_groups, created_at FROM users").
		WithArgs("bogus").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByAPIKey(ctx, "bogus")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
