// Package grpc implements the gRPC transport layer of the dataset hub.
//
// The gRPC surface is currently limited to the standard health checking
// protocol, which load balancers and orchestrators probe to decide whether
// the instance should receive traffic.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/service"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services

	healthServer *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:     services,
		healthServer: health.NewServer(),
		logger:       logger,
	}
}

// Register attaches the handler's services to the given gRPC server.
func (h *Handler) Register(server *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(server, h.healthServer)
	h.healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
}

// Shutdown marks every registered service as NOT_SERVING so health probes
// start failing before in-flight requests drain.
func (h *Handler) Shutdown() {
	h.healthServer.Shutdown()
}
