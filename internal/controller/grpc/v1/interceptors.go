package grpcv1

import (
	"context"
	"path"
	"time"

	"github.com/Egor213/LogBoard/internal/metrics"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// MetricsInterceptor counts every unary call by method and resulting status code.
func MetricsInterceptor(counters *metrics.Counters) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		method := path.Base(info.FullMethod)
		code := status.Code(err)
		counters.GrpcRequests.Inc(method, code.String())

		log.WithFields(log.Fields{
			"method":  info.FullMethod,
			"code":    code.String(),
			"latency": time.Since(start).String(),
		}).Info("gRPC request")

		return resp, err
	}
}
