package http

import (
	"errors"
	"net/http"

	"github.com/mkarev/go-dataset-hub/internal/service"
	"github.com/mkarev/go-dataset-hub/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotAuthorized:           http.StatusForbidden,

	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrDatasetNotFound:       http.StatusNotFound,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrStoreUnavailable:      http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
