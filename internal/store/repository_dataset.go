package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/models"
)

// datasetRepository is the SQL-backed implementation of [DatasetRepository].
// It persists dataset records in the "datasets" table; the tags, metadata and
// metrics maps are stored as JSON text columns so the same schema works on
// both PostgreSQL and SQLite.
type datasetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDatasetRepository constructs a [DatasetRepository] backed by the
// provided database connection and logger.
func NewDatasetRepository(db *DB, logger *logger.Logger) DatasetRepository {
	logger.Debug().Msg("creating dataset repository")
	return &datasetRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all datasets whose owner is one of owners, ordered by name.
// An empty owner set short-circuits to an empty result without touching
// the database.
func (r *datasetRepository) List(ctx context.Context, owners []string) ([]models.Dataset, error) {
	log := logger.FromContext(ctx)

	if len(owners) == 0 {
		return []models.Dataset{}, nil
	}

	query, args, err := buildListDatasetsQuery(r.db.Builder(), owners)
	if err != nil {
		log.Err(err).Str("func", "*datasetRepository.List").Msg("error: building list query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*datasetRepository.List").Msg("error: executing list query")
		return nil, r.storeError(err)
	}
	defer rows.Close()

	datasets := make([]models.Dataset, 0)
	for rows.Next() {
		dataset, err := scanDataset(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*datasetRepository.List").Msg("error: scanning dataset row")
			return nil, err
		}
		datasets = append(datasets, dataset)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*datasetRepository.List").Msg("error: iterating dataset rows")
		return nil, r.storeError(err)
	}

	return datasets, nil
}

// Get retrieves a dataset record by name regardless of owner. Ownership
// filtering is intentionally absent here: the service layer needs the raw
// record to tell "not found" apart from "owned by someone else".
func (r *datasetRepository) Get(ctx context.Context, name string) (models.Dataset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDatasetQuery(r.db.Builder(), name)
	if err != nil {
		log.Err(err).Str("func", "*datasetRepository.Get").Msg("error: building select query")
		return models.Dataset{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	dataset, err := scanDataset(row.Scan)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Dataset{}, ErrDatasetNotFound
	case err != nil:
		log.Err(err).Str("func", "*datasetRepository.Get").Msg("error: scanning dataset row")
		return models.Dataset{}, r.storeError(err)
	}

	return dataset, nil
}

// Put persists the full dataset record, inserting or overwriting by name in
// a single statement, and returns the stored version with a refreshed
// LastUpdated stamp.
func (r *datasetRepository) Put(ctx context.Context, dataset models.Dataset) (models.Dataset, error) {
	log := logger.FromContext(ctx)

	dataset.LastUpdated = time.Now().UTC()
	if dataset.CreatedAt.IsZero() {
		dataset.CreatedAt = dataset.LastUpdated
	}

	query, args, err := buildUpsertDatasetQuery(r.db.Builder(), dataset)
	if err != nil {
		log.Err(err).Str("func", "*datasetRepository.Put").Msg("error: building upsert query")
		return models.Dataset{}, err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*datasetRepository.Put").Msg("error: executing upsert")
		return models.Dataset{}, r.storeError(err)
	}

	return dataset, nil
}

// Remove deletes the record for name. Removal of an absent dataset reports
// [ErrDatasetNotFound] so the service can keep delete non-idempotent.
func (r *datasetRepository) Remove(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDatasetQuery(r.db.Builder(), name)
	if err != nil {
		log.Err(err).Str("func", "*datasetRepository.Remove").Msg("error: building delete query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*datasetRepository.Remove").Msg("error: executing delete")
		return r.storeError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*datasetRepository.Remove").Msg("error: reading affected rows")
		return r.storeError(err)
	}
	if affected == 0 {
		return ErrDatasetNotFound
	}

	return nil
}

// scanDataset reads one dataset row using the provided scan function,
// decoding the JSON text columns into their map types.
func scanDataset(scan func(dest ...any) error) (models.Dataset, error) {
	var (
		dataset                      models.Dataset
		state                        string
		rawTags, rawMeta, rawMetrics sql.NullString
	)

	err := scan(&dataset.Name, &dataset.Owner, &dataset.Task, &state, &rawTags, &rawMeta, &rawMetrics,
		&dataset.CreatedAt, &dataset.LastUpdated)
	if err != nil {
		return models.Dataset{}, err
	}

	dataset.State = models.DatasetState(state)
	if err := unmarshalNullable(rawTags, &dataset.Tags); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if err := unmarshalNullable(rawMeta, &dataset.Metadata); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if err := unmarshalNullable(rawMetrics, &dataset.Metrics); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return dataset, nil
}

func unmarshalNullable(raw sql.NullString, dest any) error {
	if !raw.Valid || raw.String == "" || raw.String == "null" {
		return nil
	}
	return json.Unmarshal([]byte(raw.String), dest)
}

func (r *datasetRepository) storeError(err error) error {
	r.logger.Debug().
		Int("classification", int(r.db.errorClassificator.Classify(err))).
		Msg("classified store error")
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
