package service

import (
	"context"

	"github.com/Egor213/LogBoard/internal/domain"
	"github.com/Egor213/LogBoard/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogBoard/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// GetLogs counts and fetches the filtered set concurrently. Both calls share the filter,
// and nothing is returned unless both succeed.
func (s *LogService) GetLogs(ctx context.Context, filter repotypes.LogFilter, page repotypes.Pagination) (domain.LogsPage, error) {
	page = normalizePage(page)

	var (
		total int
		logs  []domain.LogEntry
		g     errgroup.Group
	)

	g.Go(func() error {
		var err error
		total, err = s.logRepo.CountLogs(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.logRepo.FindLogs(ctx, filter, page)
		return err
	})

	if err := g.Wait(); err != nil {
		s.observe("get_logs", err)
		return domain.LogsPage{}, errorsUtils.WrapOpErr(ErrCannotGetLogs, err)
	}
	s.observe("get_logs", nil)

	if logs == nil {
		logs = []domain.LogEntry{}
	}

	return domain.LogsPage{
		Logs:       logs,
		Total:      total,
		TotalPages: repotypes.TotalPages(total, page.Limit),
	}, nil
}

// ExportLogs fetches one page for CSV download. No total is computed.
func (s *LogService) ExportLogs(ctx context.Context, filter repotypes.LogFilter, page repotypes.Pagination) ([]domain.LogEntry, error) {
	logs, err := s.logRepo.FindLogs(ctx, filter, normalizePage(page))
	if err != nil {
		s.observe("export_logs", err)
		return nil, errorsUtils.WrapOpErr(ErrCannotGetLogs, err)
	}
	s.observe("export_logs", nil)

	if logs == nil {
		logs = []domain.LogEntry{}
	}
	return logs, nil
}

func normalizePage(page repotypes.Pagination) repotypes.Pagination {
	normalized := page.Normalize()
	if normalized.SortBy != page.SortBy || normalized.SortOrder != page.SortOrder {
		log.WithFields(log.Fields{
			"sort_by":    page.SortBy,
			"sort_order": page.SortOrder,
		}).Debug("Unknown sort directive replaced with defaults")
	}
	return normalized
}
