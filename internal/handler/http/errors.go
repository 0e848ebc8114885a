// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package http

import "errors"

// Sentinel errors used by the authentication middleware when resolving the
// request identity. Callers can match against them with [errors.Is].
var (
	// ErrNoCredentialsProvided is returned when the request carries neither
	// an "Authorization" header nor an "X-API-KEY" header.
	ErrNoCredentialsProvided = errors.New("no credentials provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains
	// the scheme prefix but the token value itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrGroupNotAllowed is returned when the "X-Group" header names a
	// group the resolved user is not a member of.
	ErrGroupNotAllowed = errors.New("requested group is outside user memberships")
)
