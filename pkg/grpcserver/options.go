package grpcserver

import (
	"net"
	"time"

	"google.golang.org/grpc"
)

type Option func(*Server)

func WithPort(port string) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort("", port)
	}
}

// WithListener serves on an existing listener, e.g. bufconn in tests.
func WithListener(listener net.Listener) Option {
	return func(s *Server) {
		s.listener = listener
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

func WithUnaryInterceptors(interceptors ...grpc.UnaryServerInterceptor) Option {
	return func(s *Server) {
		s.interceptors = append(s.interceptors, interceptors...)
	}
}
