package app

import (
	"context"
	"fmt"
	"os"

	"github.com/Egor213/LogBoard/internal/config"
	"github.com/Egor213/LogBoard/internal/controller/validators"
	"github.com/Egor213/LogBoard/internal/metrics"
	"github.com/Egor213/LogBoard/internal/repo"
	"github.com/Egor213/LogBoard/internal/service"
	errorsUtils "github.com/Egor213/LogBoard/pkg/errors"
	"github.com/Egor213/LogBoard/pkg/logger"
	"github.com/Egor213/LogBoard/pkg/postgres"
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "logboard",
		Short:         "Log dashboard backend",
		Long:          "Stores log entries and serves listing, aggregation and export over HTTP and gRPC.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd(), newGenerateCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP, gRPC and metrics servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			return Migrate(cfg.PG.URL)
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var (
		count    int
		daysBack int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Insert random log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validators.ValidateGenerate(count, daysBack); err != nil {
				return err
			}

			cfg, err := setup()
			if err != nil {
				return err
			}
			return generate(cmd.Context(), cfg, count, daysBack)
		},
	}

	cmd.Flags().IntVar(&count, "count", 100, "number of entries to insert (10..1000)")
	cmd.Flags().IntVar(&daysBack, "days-back", 7, "spread timestamps over this many past days (0..365)")
	return cmd
}

func serve() error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	return Run(cfg)
}

func setup() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	log.Info("Logger has been set up")

	return cfg, nil
}

func generate(ctx context.Context, cfg *config.Config, count, daysBack int) error {
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer pg.Close()

	producer, closeProducer := newProducer(cfg.Kafka)
	defer closeProducer()

	logService := service.NewLogService(
		repo.NewRepositories(pg).Log,
		metrics.New(),
		producer,
		pg.TrManager(),
	)

	inserted, err := logService.GenerateLogs(ctx, count, daysBack)
	if err != nil {
		return err
	}

	log.WithField("count", inserted).Info("Done")
	return nil
}
