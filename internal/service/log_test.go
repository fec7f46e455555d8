package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Egor213/LogBoard/internal/broker"
	"github.com/Egor213/LogBoard/internal/domain"
	"github.com/Egor213/LogBoard/internal/metrics"
	broker_mock "github.com/Egor213/LogBoard/internal/mocks/broker"
	repository_mock "github.com/Egor213/LogBoard/internal/mocks/repository"
	service_mock "github.com/Egor213/LogBoard/internal/mocks/service"
	"github.com/Egor213/LogBoard/internal/repo/repoerrs"
	"github.com/Egor213/LogBoard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo     *repository_mock.MockLog
	producer *broker_mock.MockProducer
	trm      *service_mock.MockTxManager
}

func newTestService(t *testing.T) (*service.LogService, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:     repository_mock.NewMockLog(ctrl),
		producer: broker_mock.NewMockProducer(ctrl),
		trm:      service_mock.NewMockTxManager(ctrl),
	}
	svc := service.NewLogService(deps.repo, metrics.NewTestCounters(), deps.producer, deps.trm)
	return svc, deps
}

func TestLogService_GetLog(t *testing.T) {
	ctx := context.Background()
	stored := domain.LogEntry{Id: "abc", Severity: domain.SeverityInfo, Message: "User login successful", Source: "auth-service"}

	testCases := []struct {
		name         string
		mockBehavior func(r *repository_mock.MockLog)
		want         domain.LogEntry
		wantErr      error
	}{
		{
			name: "success",
			mockBehavior: func(r *repository_mock.MockLog) {
				r.EXPECT().GetLogByID(ctx, "abc").Return(stored, nil)
			},
			want: stored,
		},
		{
			name: "not found",
			mockBehavior: func(r *repository_mock.MockLog) {
				r.EXPECT().GetLogByID(ctx, "abc").Return(domain.LogEntry{}, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrLogNotFound,
		},
		{
			name: "repository error",
			mockBehavior: func(r *repository_mock.MockLog) {
				r.EXPECT().GetLogByID(ctx, "abc").Return(domain.LogEntry{}, errors.New("db error"))
			},
			wantErr: service.ErrCannotGetLog,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, deps := newTestService(t)
			tc.mockBehavior(deps.repo)

			got, err := svc.GetLog(ctx, "abc")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLogService_CreateLog(t *testing.T) {
	ctx := context.Background()

	t.Run("success publishes event", func(t *testing.T) {
		svc, deps := newTestService(t)
		in := &domain.LogEntry{Severity: domain.SeverityWarn, Message: "Disk space running low", Source: "file-service"}

		deps.repo.EXPECT().
			CreateLog(ctx, in).
			DoAndReturn(func(_ context.Context, l *domain.LogEntry) (domain.LogEntry, error) {
				return *l, nil
			})
		deps.producer.EXPECT().
			SendMessage(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, value []byte) error {
				var ev broker.Event
				require.NoError(t, json.Unmarshal(value, &ev))
				assert.Equal(t, broker.EventLogCreated, ev.Event)
				assert.Equal(t, in.Id, ev.LogID)
				assert.Equal(t, 1, ev.Count)
				return nil
			})

		got, err := svc.CreateLog(ctx, in)

		require.NoError(t, err)
		assert.NotEmpty(t, got.Id)
		assert.False(t, got.Timestamp.IsZero())
		assert.Equal(t, "file-service", got.Source)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		svc, deps := newTestService(t)
		in := &domain.LogEntry{Severity: domain.SeverityInfo, Message: "m", Source: "s"}

		deps.repo.EXPECT().CreateLog(ctx, in).Return(domain.LogEntry{Id: "x"}, nil)
		deps.producer.EXPECT().SendMessage(ctx, gomock.Any()).Return(errors.New("broker down"))

		got, err := svc.CreateLog(ctx, in)

		assert.NoError(t, err)
		assert.Equal(t, "x", got.Id)
	})

	t.Run("duplicate id", func(t *testing.T) {
		svc, deps := newTestService(t)
		in := &domain.LogEntry{Severity: domain.SeverityInfo, Message: "m", Source: "s"}

		deps.repo.EXPECT().CreateLog(ctx, in).Return(domain.LogEntry{}, repoerrs.ErrAlreadyExists)

		_, err := svc.CreateLog(ctx, in)

		assert.ErrorIs(t, err, service.ErrLogAlreadyExists)
	})

	t.Run("constraint violation", func(t *testing.T) {
		svc, deps := newTestService(t)
		in := &domain.LogEntry{Severity: domain.SeverityInfo, Message: "m", Source: "s"}

		deps.repo.EXPECT().CreateLog(ctx, in).Return(domain.LogEntry{}, repoerrs.ErrInvalidValue)

		_, err := svc.CreateLog(ctx, in)

		assert.ErrorIs(t, err, service.ErrInvalidLog)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, deps := newTestService(t)
		in := &domain.LogEntry{Severity: domain.SeverityInfo, Message: "m", Source: "s"}

		deps.repo.EXPECT().CreateLog(ctx, in).Return(domain.LogEntry{}, errors.New("db error"))

		_, err := svc.CreateLog(ctx, in)

		assert.ErrorIs(t, err, service.ErrCannotCreateLog)
		assert.ErrorContains(t, err, "db error")
	})
}

func TestLogService_UpdateLog(t *testing.T) {
	ctx := context.Background()
	in := &domain.LogEntry{Id: "abc", Severity: domain.SeverityError, Message: "Authentication failed", Source: "auth-service"}

	t.Run("success", func(t *testing.T) {
		svc, deps := newTestService(t)
		ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		stored := *in
		stored.Timestamp = ts

		deps.repo.EXPECT().UpdateLog(ctx, in).Return(stored, nil)
		deps.producer.EXPECT().SendMessage(ctx, gomock.Any()).Return(nil)

		got, err := svc.UpdateLog(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().UpdateLog(ctx, in).Return(domain.LogEntry{}, repoerrs.ErrNotFound)

		_, err := svc.UpdateLog(ctx, in)

		assert.ErrorIs(t, err, service.ErrLogNotFound)
	})

	t.Run("constraint violation", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().UpdateLog(ctx, in).Return(domain.LogEntry{}, repoerrs.ErrInvalidValue)

		_, err := svc.UpdateLog(ctx, in)

		assert.ErrorIs(t, err, service.ErrInvalidLog)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().UpdateLog(ctx, in).Return(domain.LogEntry{}, errors.New("db error"))

		_, err := svc.UpdateLog(ctx, in)

		assert.ErrorIs(t, err, service.ErrCannotUpdateLog)
	})
}

func TestLogService_DeleteLog(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		mockBehavior func(d testDeps)
		wantErr      error
	}{
		{
			name: "success",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().DeleteLog(ctx, "abc").Return(nil)
				d.producer.EXPECT().SendMessage(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "not found",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().DeleteLog(ctx, "abc").Return(repoerrs.ErrNotFound)
			},
			wantErr: service.ErrLogNotFound,
		},
		{
			name: "repository error",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().DeleteLog(ctx, "abc").Return(errors.New("db error"))
			},
			wantErr: service.ErrCannotDeleteLog,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, deps := newTestService(t)
			tc.mockBehavior(deps)

			err := svc.DeleteLog(ctx, "abc")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewLogService_NilProducer(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := repository_mock.NewMockLog(ctrl)
	svc := service.NewLogService(r, metrics.NewTestCounters(), nil, nil)

	r.EXPECT().DeleteLog(gomock.Any(), "abc").Return(nil)

	assert.NoError(t, svc.DeleteLog(context.Background(), "abc"))
}
