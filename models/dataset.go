package models

import "time"

// DatasetState is the lifecycle flag of a dataset.
type DatasetState string

const (
	// DatasetOpen means the backend index resources are allocated and the
	// dataset is queryable.
	DatasetOpen DatasetState = "open"

	// DatasetClosed means the backend index resources have been released.
	DatasetClosed DatasetState = "closed"
)

// Dataset represents a named, group-owned dataset resource.
//
// The Owner field never changes after creation; every read or write against
// a dataset is scoped by it (see the dataset service for the exact rules).
type Dataset struct {
	// Name identifies the dataset within its owning group.
	Name string `json:"name"`

	// Owner is the group identifier that created and controls the dataset.
	Owner string `json:"owner"`

	// Task is a free-form label describing what kind of records the
	// dataset holds (e.g. "text-classification").
	Task string `json:"task,omitempty"`

	// State is the current lifecycle state, one of [DatasetOpen] or
	// [DatasetClosed].
	State DatasetState `json:"state"`

	// Tags holds user-managed labels. Updated with partial-merge semantics.
	Tags map[string]string `json:"tags,omitempty"`

	// Metadata holds arbitrary descriptive key/value pairs. Updated with
	// partial-merge semantics.
	Metadata map[string]string `json:"metadata,omitempty"`

	// Metrics holds per-dataset aggregate counters (e.g. record counts by
	// label) maintained by the ingestion path.
	Metrics PropertyBag `json:"metrics,omitempty"`

	// CreatedAt is the timestamp when the dataset was created.
	CreatedAt time.Time `json:"created_at,omitzero"`

	// LastUpdated is the timestamp of the last persisted mutation.
	LastUpdated time.Time `json:"last_updated,omitzero"`
}

// TableName returns the name of the database table
// associated with the Dataset model.
func (d Dataset) TableName() string {
	return "datasets"
}

// DatasetUpdate represents a partial update of a dataset's mutable settings.
// Only non-nil fields are applied; absent fields leave the stored values
// untouched.
type DatasetUpdate struct {
	// Tags is merged key-wise into the stored tag set when non-nil;
	// stored keys not present here are kept.
	Tags map[string]string `json:"tags,omitempty"`

	// Metadata is merged key-wise into the stored metadata when non-nil;
	// stored keys not present here are kept.
	Metadata map[string]string `json:"metadata,omitempty"`
}
