package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/service"
	"github.com/mkarev/go-dataset-hub/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	authenticateUserFn func(ctx context.Context, username, password string) (models.User, error)
	getUserFn          func(ctx context.Context, username string) (models.User, error)
	findUserByAPIKeyFn func(ctx context.Context, apiKey string) (models.User, error)
	createTokenFn      func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn       func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) AuthenticateUser(ctx context.Context, username, password string) (models.User, error) {
	return m.authenticateUserFn(ctx, username, password)
}

func (m *mockAuthService) GetUser(ctx context.Context, username string) (models.User, error) {
	return m.getUserFn(ctx, username)
}

func (m *mockAuthService) FindUserByAPIKey(ctx context.Context, apiKey string) (models.User, error) {
	return m.findUserByAPIKeyFn(ctx, apiKey)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockDatasetService implements service.DatasetService for unit tests.
type mockDatasetService struct {
	listFn         func(ctx context.Context, owners []string) ([]models.Dataset, error)
	findByNameFn   func(ctx context.Context, name, owner string) (models.Dataset, error)
	updateFn       func(ctx context.Context, name string, data models.DatasetUpdate, owner string) (models.Dataset, error)
	deleteFn       func(ctx context.Context, name, owner string) error
	closeDatasetFn func(ctx context.Context, name, owner string) error
	openDatasetFn  func(ctx context.Context, name, owner string) error
}

func (m *mockDatasetService) List(ctx context.Context, owners []string) ([]models.Dataset, error) {
	return m.listFn(ctx, owners)
}

func (m *mockDatasetService) FindByName(ctx context.Context, name, owner string) (models.Dataset, error) {
	return m.findByNameFn(ctx, name, owner)
}

func (m *mockDatasetService) Update(ctx context.Context, name string, data models.DatasetUpdate, owner string) (models.Dataset, error) {
	return m.updateFn(ctx, name, data, owner)
}

func (m *mockDatasetService) Delete(ctx context.Context, name, owner string) error {
	return m.deleteFn(ctx, name, owner)
}

func (m *mockDatasetService) CloseDataset(ctx context.Context, name, owner string) error {
	return m.closeDatasetFn(ctx, name, owner)
}

func (m *mockDatasetService) OpenDataset(ctx context.Context, name, owner string) error {
	return m.openDatasetFn(ctx, name, owner)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppBuildInfo {
	return models.AppBuildInfo{Version: m.version}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full chi router around the given mocks so tests
// exercise real route matching and middleware ordering.
func newTestRouter(t *testing.T, auth *mockAuthService, datasets *mockDatasetService) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService:    auth,
		DatasetService: datasets,
		AppInfoService: &mockAppInfoService{version: "test"},
	}

	return NewHandler(svcs, logger.Nop()).Init()
}

// apiKeyAuth returns a mockAuthService that resolves the fixture user from
// the canonical test API key.
func apiKeyAuth(user models.User) *mockAuthService {
	return &mockAuthService{
		findUserByAPIKeyFn: func(_ context.Context, apiKey string) (models.User, error) {
			return user, nil
		},
	}
}

// doRequest performs req against router and returns the recorded response
// with its body drained.
func doRequest(t *testing.T, router http.Handler, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	responseBody, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return rec, string(responseBody)
}

// testUser is a convenience fixture used across multiple tests.
var testUser = models.User{
	Username:   "alice",
	UserGroups: []string{"team-a", "team-b"},
}

const testAPIKey = "alice-api-key"

func apiKeyHeaders() map[string]string {
	return map[string]string{apiKeyHeader: testAPIKey}
}
