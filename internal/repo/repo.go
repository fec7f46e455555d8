package repo

import (
	"context"

	"github.com/Egor213/LogBoard/internal/domain"
	"github.com/Egor213/LogBoard/internal/repo/pgdb"
	"github.com/Egor213/LogBoard/internal/repo/repotypes"
	"github.com/Egor213/LogBoard/pkg/postgres"
)

type Log interface {
	CountLogs(ctx context.Context, filter repotypes.LogFilter) (int, error)
	FindLogs(ctx context.Context, filter repotypes.LogFilter, page repotypes.Pagination) ([]domain.LogEntry, error)
	GroupCountLogs(ctx context.Context, filter repotypes.LogFilter, field repotypes.GroupField) ([]repotypes.GroupCount, error)
	GetLogByID(ctx context.Context, id string) (domain.LogEntry, error)
	CreateLog(ctx context.Context, logObj *domain.LogEntry) (domain.LogEntry, error)
	CreateLogs(ctx context.Context, logs []domain.LogEntry) (int, error)
	UpdateLog(ctx context.Context, logObj *domain.LogEntry) (domain.LogEntry, error)
	DeleteLog(ctx context.Context, id string) error
}

type Repositories struct {
	Log
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Log: pgdb.NewLogRepo(pg),
	}
}
