package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarev/go-dataset-hub/internal/service"
	"github.com/mkarev/go-dataset-hub/models"
)

func TestAuth_NoCredentials(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockDatasetService{})

	rec, _ := doRequest(t, router, http.MethodGet, "/api/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedAuthorizationHeader(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockDatasetService{})

	rec, _ := doRequest(t, router, http.MethodGet, "/api/me", "",
		map[string]string{"Authorization": "Bearer"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	router := newTestRouter(t, auth, &mockDatasetService{})

	rec, _ := doRequest(t, router, http.MethodGet, "/api/me", "",
		map[string]string{"Authorization": "Bearer expired.jwt.token"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_UnknownAPIKey(t *testing.T) {
	auth := &mockAuthService{
		findUserByAPIKeyFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(t, auth, &mockDatasetService{})

	rec, _ := doRequest(t, router, http.MethodGet, "/api/me", "", apiKeyHeaders())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// The Authorization header wins when both credential kinds are present.
func TestAuth_BearerTakesPrecedenceOverAPIKey(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Username: "alice"}, nil
		},
		getUserFn: func(_ context.Context, _ string) (models.User, error) {
			return testUser, nil
		},
		findUserByAPIKeyFn: func(_ context.Context, _ string) (models.User, error) {
			t.Fatal("API key lookup must not run when a bearer token is present")
			return models.User{}, nil
		},
	}
	router := newTestRouter(t, auth, &mockDatasetService{})

	headers := apiKeyHeaders()
	headers["Authorization"] = "Bearer valid.jwt.token"
	rec, _ := doRequest(t, router, http.MethodGet, "/api/me", "", headers)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// X-Group working group selection
// ─────────────────────────────────────────────

func TestAuth_GroupHeaderSelectsWorkingGroup(t *testing.T) {
	datasets := &mockDatasetService{
		findByNameFn: func(_ context.Context, name, owner string) (models.Dataset, error) {
			assert.Equal(t, "team-b", owner)
			return models.Dataset{Name: name, Owner: owner}, nil
		},
	}
	router := newTestRouter(t, apiKeyAuth(testUser), datasets)

	headers := apiKeyHeaders()
	headers[groupHeader] = "team-b"
	rec, _ := doRequest(t, router, http.MethodGet, "/api/datasets/reviews", "", headers)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_GroupHeaderOutsideMemberships(t *testing.T) {
	router := newTestRouter(t, apiKeyAuth(testUser), &mockDatasetService{})

	headers := apiKeyHeaders()
	headers[groupHeader] = "team-z"
	rec, _ := doRequest(t, router, http.MethodGet, "/api/datasets/reviews", "", headers)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// Selecting a working group must not shrink the caller's list scope.
func TestAuth_GroupHeaderKeepsFullListScope(t *testing.T) {
	datasets := &mockDatasetService{
		listFn: func(_ context.Context, owners []string) ([]models.Dataset, error) {
			assert.ElementsMatch(t, []string{"team-a", "team-b"}, owners)
			return []models.Dataset{}, nil
		},
	}
	router := newTestRouter(t, apiKeyAuth(testUser), datasets)

	headers := apiKeyHeaders()
	headers[groupHeader] = "team-b"
	rec, _ := doRequest(t, router, http.MethodGet, "/api/datasets/", "", headers)

	assert.Equal(t, http.StatusOK, rec.Code)
}
