package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/migrations"
)

// DB wraps *sql.DB with the driver-specific pieces the repositories need:
// a squirrel statement builder configured with the right placeholder format,
// the goose dialect name, and an error classifier.
type DB struct {
	*sql.DB

	builder            sq.StatementBuilderType
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Builder returns the statement builder preconfigured for this database's
// placeholder format ($1 for PostgreSQL, ? for SQLite).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Migrate applies all embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
