package service

import "errors"

var (
	// ErrInvalidCredentials is returned for every failed authentication,
	// whatever the underlying reason.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthorized marks an existing dataset owned outside the
	// caller's scope.
	ErrNotAuthorized = errors.New("not authorized to access dataset")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrMergingDatasetUpdate = errors.New("merging dataset update failed")
)
