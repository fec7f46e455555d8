package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Egor213/LogBoard/internal/broker"
	"github.com/Egor213/LogBoard/internal/domain"
	"github.com/Egor213/LogBoard/internal/metrics"
	counter_mock "github.com/Egor213/LogBoard/internal/mocks/counters"
	repository_mock "github.com/Egor213/LogBoard/internal/mocks/repository"
	"github.com/Egor213/LogBoard/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLogService_Counters(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		mockBehavior func(r *repository_mock.MockLog, created, queries *counter_mock.MockCounter)
		call         func(svc *service.LogService) error
	}{
		{
			name: "create increments created and ok",
			mockBehavior: func(r *repository_mock.MockLog, created, queries *counter_mock.MockCounter) {
				r.EXPECT().CreateLog(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, l *domain.LogEntry) (domain.LogEntry, error) {
						return *l, nil
					})
				queries.EXPECT().Inc("create_log", "ok")
				created.EXPECT().Inc("ERROR")
			},
			call: func(svc *service.LogService) error {
				_, err := svc.CreateLog(ctx, &domain.LogEntry{
					Severity: domain.SeverityError,
					Message:  "Payment processing failed",
					Source:   "payment-service",
				})
				return err
			},
		},
		{
			name: "failed delete increments failed only",
			mockBehavior: func(r *repository_mock.MockLog, created, queries *counter_mock.MockCounter) {
				r.EXPECT().DeleteLog(ctx, "abc").Return(errors.New("db error"))
				queries.EXPECT().Inc("delete_log", "failed")
			},
			call: func(svc *service.LogService) error {
				return svc.DeleteLog(ctx, "abc")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repository_mock.NewMockLog(ctrl)
			created := counter_mock.NewMockCounter(ctrl)
			queries := counter_mock.NewMockCounter(ctrl)
			tc.mockBehavior(repo, created, queries)

			counters := &metrics.Counters{LogsCreated: created, LogQueries: queries}
			svc := service.NewLogService(repo, counters, broker.NopProducer{}, nil)

			// outcome is covered elsewhere, only counter calls are checked here
			_ = tc.call(svc)
			assert.True(t, ctrl.Satisfied())
		})
	}
}
