package httpv1_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpv1 "github.com/Egor213/LogBoard/internal/controller/http/v1"
	"github.com/Egor213/LogBoard/internal/domain"
	service_mock "github.com/Egor213/LogBoard/internal/mocks/service"
	"github.com/Egor213/LogBoard/internal/repo/repotypes"
	"github.com/Egor213/LogBoard/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*echo.Echo, *service_mock.MockLog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := service_mock.NewMockLog(ctrl)

	e := echo.New()
	httpv1.ConfigureRouter(e, &service.Services{Log: svc}, httpv1.RouterConfig{
		CORSOrigins:   []string{"http://localhost:3000"},
		GenerateRPS:   1,
		GenerateBurst: 1,
	})
	return e, svc
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

var testTimestamp = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func TestLogController_GetLogs(t *testing.T) {
	testCases := []struct {
		name         string
		target       string
		mockBehavior func(s *service_mock.MockLog)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "filtered listing",
			target: "/api/v1/logs?severity=ERROR&start_date=2024-01-01&end_date=2024-01-31&limit=50",
			mockBehavior: func(s *service_mock.MockLog) {
				s.EXPECT().
					GetLogs(gomock.Any(), repotypes.LogFilter{
						Severity: domain.SeverityError,
						From:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
						To:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
					}, repotypes.Pagination{Limit: 50, SortBy: "timestamp", SortOrder: "desc"}).
					Return(domain.LogsPage{
						Logs: []domain.LogEntry{{
							Id: "1", Severity: domain.SeverityError, Message: "Database connection failed",
							Source: "database", Timestamp: testTimestamp,
						}},
						Total:      51,
						TotalPages: 2,
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"status_code":200,"total":51,"total_pages":2,"logs":[{"id":"1","severity":"ERROR",
				"message":"Database connection failed","source":"database","timestamp":"2024-01-15T10:00:00Z"}]}`,
		},
		{
			name:   "defaults",
			target: "/api/v1/logs",
			mockBehavior: func(s *service_mock.MockLog) {
				s.EXPECT().
					GetLogs(gomock.Any(), repotypes.LogFilter{}, repotypes.Pagination{Limit: 100, SortBy: "timestamp", SortOrder: "desc"}).
					Return(domain.LogsPage{Logs: []domain.LogEntry{}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status_code":200,"logs":[],"total":0,"total_pages":0}`,
		},
		{
			name:   "unknown sort is passed on for normalization",
			target: "/api/v1/logs?sort_by=bogus_field&sort_order=up",
			mockBehavior: func(s *service_mock.MockLog) {
				s.EXPECT().
					GetLogs(gomock.Any(), repotypes.LogFilter{}, repotypes.Pagination{Limit: 100, SortBy: "bogus_field", SortOrder: "up"}).
					Return(domain.LogsPage{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status_code":200,"logs":[],"total":0,"total_pages":0}`,
		},
		{
			name:         "bad severity",
			target:       "/api/v1/logs?severity=LOUD",
			mockBehavior: func(s *service_mock.MockLog) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "bad limit",
			target:       "/api/v1/logs?limit=0",
			mockBehavior: func(s *service_mock.MockLog) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "non numeric offset",
			target:       "/api/v1/logs?offset=abc",
			mockBehavior: func(s *service_mock.MockLog) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "service failure",
			target: "/api/v1/logs",
			mockBehavior: func(s *service_mock.MockLog) {
				s.EXPECT().GetLogs(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.LogsPage{}, fmt.Errorf("%w: %w", service.ErrCannotGetLogs, errors.New("db down")))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"cannot get logs"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			rec := doRequest(e, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestLogController_GetAggregatedLogs(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().
			GetAggregatedLogs(gomock.Any(), repotypes.LogFilter{Source: "auth-service"}).
			Return(domain.LogsAggregation{
				TotalLogs:      3,
				SeverityCounts: map[domain.Severity]int{domain.SeverityInfo: 3},
				SourceCounts:   map[string]int{"auth-service": 3},
			}, nil)

		rec := doRequest(e, http.MethodGet, "/api/v1/logs/aggregated?source=auth-service", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"status_code":200,"severity_counts":{"INFO":3},"source_counts":{"auth-service":3},"total_logs":3}`,
			rec.Body.String())
	})

	t.Run("limit above aggregation ceiling", func(t *testing.T) {
		e, _ := newTestRouter(t)

		rec := doRequest(e, http.MethodGet, "/api/v1/logs/aggregated?limit=1001", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogController_DownloadLogs(t *testing.T) {
	e, svc := newTestRouter(t)
	svc.EXPECT().
		ExportLogs(gomock.Any(), repotypes.LogFilter{}, repotypes.Pagination{Limit: 10000, SortBy: "timestamp", SortOrder: "desc"}).
		Return([]domain.LogEntry{
			{Id: "1", Severity: domain.SeverityWarn, Message: "Disk space running low, 5% left", Source: "file-service", Timestamp: testTimestamp},
		}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/logs/download", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment; filename=")
	assert.Equal(t,
		"id,severity,message,source,timestamp\n"+
			"1,WARN,\"Disk space running low, 5% left\",file-service,2024-01-15T10:00:00Z\n",
		rec.Body.String())
}

func TestLogController_GetLog(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().GetLog(gomock.Any(), "abc").Return(domain.LogEntry{
			Id: "abc", Severity: domain.SeverityInfo, Message: "m", Source: "s", Timestamp: testTimestamp,
		}, nil)

		rec := doRequest(e, http.MethodGet, "/api/v1/logs/abc", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"abc","severity":"INFO","message":"m","source":"s","timestamp":"2024-01-15T10:00:00Z"}`, rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().GetLog(gomock.Any(), "abc").Return(domain.LogEntry{}, service.ErrLogNotFound)

		rec := doRequest(e, http.MethodGet, "/api/v1/logs/abc", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"log not found"}`, rec.Body.String())
	})
}

func TestLogController_CreateLog(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(s *service_mock.MockLog)
		wantStatus   int
	}{
		{
			name: "created",
			body: `{"severity":"INFO","message":"User account created","source":"user-service","metadata":{"user_id":"user_123"}}`,
			mockBehavior: func(s *service_mock.MockLog) {
				s.EXPECT().
					CreateLog(gomock.Any(), &domain.LogEntry{
						Severity: domain.SeverityInfo,
						Message:  "User account created",
						Source:   "user-service",
						Metadata: map[string]any{"user_id": "user_123"},
					}).
					DoAndReturn(func(_ any, l *domain.LogEntry) (domain.LogEntry, error) {
						out := *l
						out.Id = "new-id"
						out.Timestamp = testTimestamp
						return out, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "invalid severity",
			body:         `{"severity":"NOTICE","message":"m","source":"s"}`,
			mockBehavior: func(s *service_mock.MockLog) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "message too long",
			body:         fmt.Sprintf(`{"severity":"INFO","message":%q,"source":"s"}`, strings.Repeat("x", 1025)),
			mockBehavior: func(s *service_mock.MockLog) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "malformed json",
			body:         `{"severity":`,
			mockBehavior: func(s *service_mock.MockLog) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"severity":"INFO","message":"m","source":"s"}`,
			mockBehavior: func(s *service_mock.MockLog) {
				s.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(domain.LogEntry{}, service.ErrCannotCreateLog)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			rec := doRequest(e, http.MethodPost, "/api/v1/logs", tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusCreated {
				assert.JSONEq(t, `{"id":"new-id","severity":"INFO","message":"User account created","source":"user-service",
					"timestamp":"2024-01-15T10:00:00Z","metadata":{"user_id":"user_123"},"status_code":201}`, rec.Body.String())
			}
		})
	}
}

func TestLogController_UpdateLog(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().
			UpdateLog(gomock.Any(), &domain.LogEntry{Id: "abc", Severity: domain.SeverityFatal, Message: "System disk full", Source: "database"}).
			DoAndReturn(func(_ any, l *domain.LogEntry) (domain.LogEntry, error) {
				out := *l
				out.Timestamp = testTimestamp
				return out, nil
			})

		rec := doRequest(e, http.MethodPut, "/api/v1/logs/abc", `{"severity":"FATAL","message":"System disk full","source":"database"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status_code":200`)
	})

	t.Run("metadata is passed through", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().
			UpdateLog(gomock.Any(), &domain.LogEntry{
				Id:       "abc",
				Severity: domain.SeverityWarn,
				Message:  "High memory usage detected",
				Source:   "api-gateway",
				Metadata: map[string]any{"memory_usage": "85%"},
			}).
			DoAndReturn(func(_ any, l *domain.LogEntry) (domain.LogEntry, error) {
				out := *l
				out.Timestamp = testTimestamp
				return out, nil
			})

		rec := doRequest(e, http.MethodPut, "/api/v1/logs/abc",
			`{"severity":"WARN","message":"High memory usage detected","source":"api-gateway","metadata":{"memory_usage":"85%"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"metadata":{"memory_usage":"85%"}`)
	})

	t.Run("rejected by storage", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().UpdateLog(gomock.Any(), gomock.Any()).Return(domain.LogEntry{}, service.ErrInvalidLog)

		rec := doRequest(e, http.MethodPut, "/api/v1/logs/abc", `{"severity":"FATAL","message":"m","source":"s"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"log entry rejected by storage constraints"}`, rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().UpdateLog(gomock.Any(), gomock.Any()).Return(domain.LogEntry{}, service.ErrLogNotFound)

		rec := doRequest(e, http.MethodPut, "/api/v1/logs/abc", `{"severity":"FATAL","message":"m","source":"s"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLogController_DeleteLog(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().DeleteLog(gomock.Any(), "abc").Return(nil)

		rec := doRequest(e, http.MethodDelete, "/api/v1/logs/abc", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().DeleteLog(gomock.Any(), "abc").Return(service.ErrLogNotFound)

		rec := doRequest(e, http.MethodDelete, "/api/v1/logs/abc", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLogController_GenerateLogs(t *testing.T) {
	t.Run("generated then rate limited", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().GenerateLogs(gomock.Any(), 100, 7).Return(100, nil)

		rec := doRequest(e, http.MethodPost, "/api/v1/logs/generate", `{"count":100,"days_back":7}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"count":100,"status_code":201}`, rec.Body.String())

		rec = doRequest(e, http.MethodPost, "/api/v1/logs/generate", `{"count":100,"days_back":7}`)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("count out of range", func(t *testing.T) {
		e, _ := newTestRouter(t)

		rec := doRequest(e, http.MethodPost, "/api/v1/logs/generate", `{"count":5,"days_back":7}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_Health(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","message":"API is operational"}`, rec.Body.String())
}

func TestRouter_CORS(t *testing.T) {
	e, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/logs", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
