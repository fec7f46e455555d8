package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/Egor213/LogBoard/internal/broker"
	"github.com/Egor213/LogBoard/internal/domain"
	errorsUtils "github.com/Egor213/LogBoard/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	generateBatchSize = 500
	metadataChance    = 4
)

var sampleSources = []string{
	"user-service",
	"auth-service",
	"payment-service",
	"notification-service",
	"api-gateway",
	"database",
	"cache-service",
	"file-service",
	"email-service",
	"analytics-service",
}

var sampleMessages = map[domain.Severity][]string{
	domain.SeverityDebug: {
		"Database query executed successfully",
		"Cache hit for user session",
		"Request validation completed",
		"Configuration loaded from environment",
		"Background job started",
		"Memory usage within normal range",
		"Connection pool status checked",
	},
	domain.SeverityInfo: {
		"User login successful",
		"Payment processed successfully",
		"Email notification sent",
		"File uploaded successfully",
		"User account created",
		"Password reset requested",
		"API request completed",
		"Data backup completed",
		"Report generated successfully",
	},
	domain.SeverityWarn: {
		"High memory usage detected",
		"Slow database query detected",
		"Rate limit threshold approaching",
		"Disk space running low",
		"Connection timeout occurred",
		"Invalid request parameter ignored",
		"Cache miss rate high",
		"Deprecated API endpoint used",
	},
	domain.SeverityError: {
		"Database connection failed",
		"Payment processing failed",
		"Email delivery failed",
		"File upload failed",
		"Authentication failed",
		"Invalid user credentials",
		"API request timeout",
		"Data validation error",
		"External service unavailable",
	},
	domain.SeverityFatal: {
		"Database server crashed",
		"Out of memory error",
		"Critical security breach detected",
		"Application startup failed",
		"Data corruption detected",
		"System disk full",
		"Unable to connect to essential services",
	},
}

var sampleMetadata = []map[string]any{
	{"user_id": "user_123", "ip_address": "192.168.1.100", "browser": "Chrome"},
	{"user_id": "user_456", "ip_address": "10.0.0.50", "browser": "Firefox"},
	{"transaction_id": "txn_789", "amount": 99.99, "currency": "USD"},
	{"request_id": "req_abc123", "endpoint": "/api/users", "method": "GET"},
	{"file_name": "document.pdf", "file_size": 1024000, "upload_time": 2.5},
	{"query": "SELECT * FROM users", "execution_time": 150, "rows_affected": 25},
	{"email": "user@example.com", "template": "welcome", "delivery_status": "sent"},
	{"process_id": "proc_xyz", "memory_usage": 512, "cpu_usage": 15.5},
	{"cache_key": "user_session_123", "ttl": 3600, "hit_rate": 0.85},
	{"backup_size": 2048000000, "compression_ratio": 0.7, "duration": 300},
}

// GenerateLogs stores count random entries spread over the last daysBack days.
// All batches share one transaction: either every entry is stored or none is.
func (s *LogService) GenerateLogs(ctx context.Context, count, daysBack int) (int, error) {
	now := time.Now().UTC()
	logs := make([]domain.LogEntry, 0, count)
	for range count {
		logs = append(logs, RandomLog(now, daysBack))
	}

	inserted := 0
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		for start := 0; start < len(logs); start += generateBatchSize {
			end := min(start+generateBatchSize, len(logs))
			n, err := s.logRepo.CreateLogs(ctx, logs[start:end])
			if err != nil {
				return err
			}
			inserted += n
		}
		return nil
	})
	if err != nil {
		s.observe("generate_logs", err)
		return 0, errorsUtils.WrapOpErr(ErrCannotGenerateLogs, err)
	}
	s.observe("generate_logs", nil)

	for _, l := range logs {
		s.counters.LogsCreated.Inc(l.Severity.String())
	}
	log.WithFields(log.Fields{
		"count":     inserted,
		"days_back": daysBack,
	}).Info("Random logs generated")

	s.publish(ctx, broker.Event{Event: broker.EventLogGenerated, Count: inserted})
	return inserted, nil
}

// RandomLog builds one entry with a timestamp uniformly drawn from [now - daysBack days, now].
func RandomLog(now time.Time, daysBack int) domain.LogEntry {
	severity := domain.Severities[rand.IntN(len(domain.Severities))]
	messages := sampleMessages[severity]

	timestamp := now
	if daysBack > 0 {
		span := int64(time.Duration(daysBack) * 24 * time.Hour)
		timestamp = now.Add(-time.Duration(rand.Int64N(span + 1)))
	}

	entry := domain.LogEntry{
		Id:        domain.NewLogID(),
		Severity:  severity,
		Message:   messages[rand.IntN(len(messages))],
		Source:    sampleSources[rand.IntN(len(sampleSources))],
		Timestamp: timestamp,
	}
	if rand.IntN(metadataChance) == 0 {
		entry.Metadata = sampleMetadata[rand.IntN(len(sampleMetadata))]
	}
	return entry
}
