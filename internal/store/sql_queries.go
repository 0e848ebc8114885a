package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mkarev/go-dataset-hub/models"
)

// Column sets shared between query builders and row scanners. Order matters:
// scanners read columns positionally.
var (
	userColumns    = []string{"username", "full_name", "hashed_password", "api_key", "user_groups", "created_at"}
	datasetColumns = []string{"name", "owner", "task", "state", "tags", "metadata", "metrics", "created_at", "last_updated"}
)

func buildSelectUserQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSelectUserByAPIKeyQuery(b sq.StatementBuilderType, apiKey string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"api_key": apiKey}).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	groups, err := json.Marshal(user.UserGroups)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var apiKey any
	if user.APIKey != "" {
		apiKey = user.APIKey
	}

	return b.Insert("users").
		Columns(userColumns...).
		Values(user.Username, user.FullName, user.HashedPassword, apiKey, string(groups), user.CreatedAt).
		ToSql()
}

func buildListDatasetsQuery(b sq.StatementBuilderType, owners []string) (string, []any, error) {
	return b.Select(datasetColumns...).
		From("datasets").
		Where(sq.Eq{"owner": owners}).
		OrderBy("name").
		ToSql()
}

func buildSelectDatasetQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select(datasetColumns...).
		From("datasets").
		Where(sq.Eq{"name": name}).
		ToSql()
}

// buildUpsertDatasetQuery produces an INSERT ... ON CONFLICT(name) DO UPDATE
// statement that works on both PostgreSQL and SQLite. The dataset's owner is
// deliberately left out of the conflict update set: a dataset's owner never
// changes after creation.
func buildUpsertDatasetQuery(b sq.StatementBuilderType, dataset models.Dataset) (string, []any, error) {
	tags, metadata, metrics, err := marshalDatasetJSON(dataset)
	if err != nil {
		return "", nil, err
	}

	return b.Insert("datasets").
		Columns(datasetColumns...).
		Values(dataset.Name, dataset.Owner, dataset.Task, string(dataset.State), tags, metadata, metrics,
			dataset.CreatedAt, dataset.LastUpdated).
		Suffix(`ON CONFLICT(name) DO UPDATE SET
			task = excluded.task,
			state = excluded.state,
			tags = excluded.tags,
			metadata = excluded.metadata,
			metrics = excluded.metrics,
			last_updated = excluded.last_updated`).
		ToSql()
}

func buildDeleteDatasetQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Delete("datasets").
		Where(sq.Eq{"name": name}).
		ToSql()
}

func marshalDatasetJSON(dataset models.Dataset) (tags, metadata, metrics string, err error) {
	rawTags, err := json.Marshal(dataset.Tags)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	rawMetadata, err := json.Marshal(dataset.Metadata)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	rawMetrics, err := json.Marshal(dataset.Metrics)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return string(rawTags), string(rawMetadata), string(rawMetrics), nil
}
