package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Egor213/LogBoard/internal/broker"
	"github.com/Egor213/LogBoard/internal/domain"
	"github.com/Egor213/LogBoard/internal/metrics"
	"github.com/Egor213/LogBoard/internal/repo"
	"github.com/Egor213/LogBoard/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogBoard/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	statusOk     = "ok"
	statusFailed = "failed"
)

type LogService struct {
	logRepo        repo.Log
	counters       *metrics.Counters
	brokerProducer broker.Producer
	trManager      TxManager
}

func NewLogService(lr repo.Log, cnt *metrics.Counters, p broker.Producer, trm TxManager) *LogService {
	if p == nil {
		p = broker.NopProducer{}
	}
	return &LogService{
		logRepo:        lr,
		counters:       cnt,
		brokerProducer: p,
		trManager:      trm,
	}
}

func (s *LogService) GetLog(ctx context.Context, id string) (domain.LogEntry, error) {
	logObj, err := s.logRepo.GetLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.LogEntry{}, ErrLogNotFound
		}
		s.observe("get_log", err)
		return domain.LogEntry{}, errorsUtils.WrapOpErr(ErrCannotGetLog, err)
	}
	s.observe("get_log", nil)
	return logObj, nil
}

// CreateLog assigns a fresh id and, unless the caller set one, the current time.
func (s *LogService) CreateLog(ctx context.Context, logObj *domain.LogEntry) (domain.LogEntry, error) {
	logObj.Id = domain.NewLogID()
	if logObj.Timestamp.IsZero() {
		logObj.Timestamp = time.Now().UTC()
	}

	created, err := s.logRepo.CreateLog(ctx, logObj)
	if err != nil {
		s.observe("create_log", err)
		if errors.Is(err, repoerrs.ErrAlreadyExists) {
			return domain.LogEntry{}, ErrLogAlreadyExists
		}
		if errors.Is(err, repoerrs.ErrInvalidValue) {
			return domain.LogEntry{}, ErrInvalidLog
		}
		return domain.LogEntry{}, errorsUtils.WrapOpErr(ErrCannotCreateLog, err)
	}
	s.observe("create_log", nil)
	s.counters.LogsCreated.Inc(created.Severity.String())

	s.publish(ctx, broker.Event{Event: broker.EventLogCreated, LogID: created.Id, Count: 1})
	return created, nil
}

// UpdateLog replaces severity, message, source and metadata. Id and timestamp are kept.
func (s *LogService) UpdateLog(ctx context.Context, logObj *domain.LogEntry) (domain.LogEntry, error) {
	updated, err := s.logRepo.UpdateLog(ctx, logObj)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.LogEntry{}, ErrLogNotFound
		}
		if errors.Is(err, repoerrs.ErrInvalidValue) {
			return domain.LogEntry{}, ErrInvalidLog
		}
		s.observe("update_log", err)
		return domain.LogEntry{}, errorsUtils.WrapOpErr(ErrCannotUpdateLog, err)
	}
	s.observe("update_log", nil)

	s.publish(ctx, broker.Event{Event: broker.EventLogUpdated, LogID: updated.Id, Count: 1})
	return updated, nil
}

func (s *LogService) DeleteLog(ctx context.Context, id string) error {
	if err := s.logRepo.DeleteLog(ctx, id); err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return ErrLogNotFound
		}
		s.observe("delete_log", err)
		return errorsUtils.WrapOpErr(ErrCannotDeleteLog, err)
	}
	s.observe("delete_log", nil)

	s.publish(ctx, broker.Event{Event: broker.EventLogDeleted, LogID: id, Count: 1})
	return nil
}

// publish never fails the caller: the mutation is already committed.
func (s *LogService) publish(ctx context.Context, ev broker.Event) {
	ev.At = time.Now().UTC()

	value, err := json.Marshal(ev)
	if err != nil {
		log.WithField("event", ev.Event).Errorf("Failed to encode event: %v", err)
		return
	}

	if err := s.brokerProducer.SendMessage(ctx, value); err != nil {
		log.WithFields(log.Fields{
			"event":  ev.Event,
			"log_id": ev.LogID,
			"error":  err,
		}).Warn("Failed to publish event")
	}
}

func (s *LogService) observe(operation string, err error) {
	if err != nil {
		s.counters.LogQueries.Inc(operation, statusFailed)
		return
	}
	s.counters.LogQueries.Inc(operation, statusOk)
}
