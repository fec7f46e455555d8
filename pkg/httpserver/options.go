package httpserver

import (
	"net"
	"time"

	"github.com/klauspost/compress/gzhttp"
)

type Option func(*Server)

func Port(port string) Option {
	return func(s *Server) {
		s.server.Addr = net.JoinHostPort("", port)
	}
}

func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.server.ReadTimeout = timeout
	}
}

func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.server.WriteTimeout = timeout
	}
}

func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}

// Gzip compresses responses for clients that accept it. CSV exports shrink a lot.
func Gzip() Option {
	return func(s *Server) {
		s.server.Handler = gzhttp.GzipHandler(s.server.Handler)
	}
}
