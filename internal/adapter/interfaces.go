// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

// Package adapter provides transport-layer abstractions for communicating
// with the index backend that holds each dataset's physical resources.
//
// The primary abstraction is [EngineAdapter], which decouples the service
// layer from the backend protocol. The package ships an HTTP/REST
// implementation ([NewHTTPEngineAdapter]) and a no-op implementation
// ([NewNoopEngineAdapter]) for deployments without an index backend.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_adapter_mock.go -package=mock

// EngineAdapter manages the physical index resources behind a dataset.
// Closing an index releases its backend resources; opening re-allocates
// them; dropping removes them permanently.
//
// Implementations must be safe for concurrent use and must not retain any
// per-request state.
type EngineAdapter interface {
	// OpenIndex re-allocates the backend resources for the named dataset
	// index so the dataset becomes queryable again.
	OpenIndex(ctx context.Context, index string) error

	// CloseIndex releases the backend resources held by the named dataset
	// index. The record itself stays intact and can be re-opened later.
	CloseIndex(ctx context.Context, index string) error

	// DeleteIndex permanently removes the named dataset index and all the
	// resources behind it. Deleting an absent index is not an error: the
	// dataset record is the source of truth for existence.
	DeleteIndex(ctx context.Context, index string) error
}
