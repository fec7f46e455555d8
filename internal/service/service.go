package service

import (
	"context"

	"github.com/Egor213/LogBoard/internal/broker"
	"github.com/Egor213/LogBoard/internal/domain"
	"github.com/Egor213/LogBoard/internal/metrics"
	"github.com/Egor213/LogBoard/internal/repo"
	"github.com/Egor213/LogBoard/internal/repo/repotypes"
)

type Log interface {
	GetLogs(ctx context.Context, filter repotypes.LogFilter, page repotypes.Pagination) (domain.LogsPage, error)
	GetAggregatedLogs(ctx context.Context, filter repotypes.LogFilter) (domain.LogsAggregation, error)
	ExportLogs(ctx context.Context, filter repotypes.LogFilter, page repotypes.Pagination) ([]domain.LogEntry, error)
	GetLog(ctx context.Context, id string) (domain.LogEntry, error)
	CreateLog(ctx context.Context, logObj *domain.LogEntry) (domain.LogEntry, error)
	UpdateLog(ctx context.Context, logObj *domain.LogEntry) (domain.LogEntry, error)
	DeleteLog(ctx context.Context, id string) error
	GenerateLogs(ctx context.Context, count, daysBack int) (int, error)
}

// TxManager runs fn in a transaction that the repositories pick up from ctx.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Services struct {
	Log
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	TrManager      TxManager
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Log: NewLogService(deps.Repos.Log, deps.Counters, deps.BrokerProducer, deps.TrManager),
	}
}
