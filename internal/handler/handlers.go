package handler

import (
	"github.com/mkarev/go-dataset-hub/internal/config"
	"github.com/mkarev/go-dataset-hub/internal/handler/grpc"
	"github.com/mkarev/go-dataset-hub/internal/handler/http"
	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
