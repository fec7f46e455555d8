package grpcv1

import (
	"github.com/Egor213/LogBoard/internal/service"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthSetter is satisfied by *health.Server.
type HealthSetter interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}

func RegisterServices(services *service.Services) func(s *grpc.Server) {
	return func(s *grpc.Server) {
		RegisterLogServiceServer(s, NewLogController(services.Log))
	}
}

func MarkServing(h HealthSetter) {
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}
