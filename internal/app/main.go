package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/LogBoard/internal/broker"
	kafkabroker "github.com/Egor213/LogBoard/internal/broker/kafka"
	"github.com/Egor213/LogBoard/internal/config"
	grpcv1 "github.com/Egor213/LogBoard/internal/controller/grpc/v1"
	httpv1 "github.com/Egor213/LogBoard/internal/controller/http/v1"
	"github.com/Egor213/LogBoard/internal/metrics"
	"github.com/Egor213/LogBoard/internal/repo"
	"github.com/Egor213/LogBoard/internal/service"
	errorsUtils "github.com/Egor213/LogBoard/pkg/errors"
	"github.com/Egor213/LogBoard/pkg/grpcserver"
	"github.com/Egor213/LogBoard/pkg/httpserver"
	"github.com/Egor213/LogBoard/pkg/postgres"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	log "github.com/sirupsen/logrus"
)

func Run(cfg *config.Config) error {
	// Migrations
	if err := Migrate(cfg.PG.URL); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Broker
	producer, closeProducer := newProducer(cfg.Kafka)
	defer closeProducer()

	// Services
	counters := metrics.New()
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       counters,
		BrokerProducer: producer,
		TrManager:      pg.TrManager(),
	}
	services := service.NewServices(deps)

	// HTTP API server
	log.Infof("Starting HTTP API server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	httpv1.ConfigureRouter(apiHandler, services, httpv1.RouterConfig{
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		GenerateRPS:   cfg.HTTP.GenerateRPS,
		GenerateBurst: cfg.HTTP.GenerateBurst,
		Middlewares:   []echo.MiddlewareFunc{metrics.HTTPMiddleware(prometheus.DefaultRegisterer)},
	})
	apiServer := httpserver.New(apiHandler,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		httpserver.Gzip(),
	)

	// gRPC Server
	log.Infof("Starting gRPC server...")
	log.Debugf("Server port: %s", cfg.GRPC.Port)
	grpcServer, err := grpcserver.New(
		grpcv1.RegisterServices(services),
		grpcserver.WithPort(cfg.GRPC.Port),
		grpcserver.WithUnaryInterceptors(grpcv1.MetricsInterceptor(counters)),
	)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	grpcv1.MarkServing(grpcServer.Health)

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-apiServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := apiServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	grpcServer.Shutdown()
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}

	return nil
}

func newProducer(cfg config.Kafka) (broker.Producer, func()) {
	if !cfg.Enabled {
		log.Info("Kafka is disabled, events are dropped")
		return broker.NopProducer{}, func() {}
	}

	log.WithField("topic", cfg.Topic).Info("Kafka producer enabled")
	p := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	return p, func() {
		if err := p.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
}
