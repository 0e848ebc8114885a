// Package service holds the business rules of the dataset hub: credential
// verification, dataset ownership enforcement and lifecycle transitions.
// Services depend on store repositories and the engine adapter through
// interfaces only.
package service

import (
	"context"

	"github.com/mkarev/go-dataset-hub/internal/adapter"
	"github.com/mkarev/go-dataset-hub/internal/config"
	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/store"
	"github.com/mkarev/go-dataset-hub/models"
)

// Services aggregates every business-logic service of the server.
type Services struct {
	AuthService
	DatasetService
	AppInfoService
}

// NewServices builds the full service set on top of the storages and the
// engine adapter.
func NewServices(storages *store.Storages, engine adapter.EngineAdapter, appConfig config.App, log *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, appConfig, log),
		DatasetService: NewDatasetService(storages.DatasetRepository, engine, log),
		AppInfoService: NewAppInfoService(appConfig),
	}
}

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService exposes static build metadata taken from the app config.
func NewAppInfoService(appConfig config.App) AppInfoService {
	return &appInfoService{buildInfo: models.AppBuildInfo{Version: appConfig.Version}}
}

func (s *appInfoService) GetAppInfo(_ context.Context) models.AppBuildInfo {
	return s.buildInfo
}
