package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	MaxMessageLength = 1024
	MaxSourceLength  = 256
)

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
	SeverityFatal Severity = "FATAL"
)

// Severities lists the levels from least to most severe.
var Severities = []Severity{
	SeverityDebug,
	SeverityInfo,
	SeverityWarn,
	SeverityError,
	SeverityFatal,
}

var ErrUnknownSeverity = errors.New("unknown severity")

// ParseSeverity accepts only the exact upper-case level names.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.Valid() {
		return "", ErrUnknownSeverity
	}
	return sev, nil
}

func (s Severity) Valid() bool {
	switch s {
	case SeverityDebug, SeverityInfo, SeverityWarn, SeverityError, SeverityFatal:
		return true
	}
	return false
}

func (s Severity) String() string {
	return string(s)
}

type LogEntry struct {
	Id        string         `db:"id"`
	Severity  Severity       `db:"severity"`
	Message   string         `db:"message"`
	Source    string         `db:"source"`
	Timestamp time.Time      `db:"timestamp"`
	Metadata  map[string]any `db:"metadata"`
}

// NewLogID returns a time-ordered UUIDv7 string.
func NewLogID() string {
	return uuid.Must(uuid.NewV7()).String()
}

type LogsPage struct {
	Logs       []LogEntry
	Total      int
	TotalPages int
}

type LogsAggregation struct {
	TotalLogs      int
	SeverityCounts map[Severity]int
	SourceCounts   map[string]int
}
