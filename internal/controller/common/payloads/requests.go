package payloads

import (
	"errors"
	"fmt"
	"time"

	"github.com/Egor213/LogBoard/internal/controller/validators"
	"github.com/Egor213/LogBoard/internal/domain"
	"github.com/Egor213/LogBoard/internal/repo/repotypes"
)

const (
	DefaultListLimit      = 100
	DefaultExportLimit    = 10000
	DefaultAggregateLimit = 100
)

var (
	ErrInvalidSeverity = errors.New("invalid severity")
	ErrInvalidDate     = errors.New("invalid date, expected RFC3339 or YYYY-MM-DD")
)

// Accepted date layouts, tried in order. Values without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// LogQuery is the filter, paging and sort part of a listing, export or aggregation request.
// Fields left empty mean "no constraint"; Limit and Offset must be prefilled with defaults
// before binding, see NewLogQuery.
type LogQuery struct {
	Severity  string `query:"severity" json:"severity,omitempty"`
	Source    string `query:"source" json:"source,omitempty"`
	StartDate string `query:"start_date" json:"start_date,omitempty"`
	EndDate   string `query:"end_date" json:"end_date,omitempty"`
	Limit     int    `query:"limit" json:"limit,omitempty"`
	Offset    int    `query:"offset" json:"offset,omitempty"`
	SortBy    string `query:"sort_by" json:"sort_by,omitempty"`
	SortOrder string `query:"sort_order" json:"sort_order,omitempty"`
}

func NewLogQuery(defaultLimit int) LogQuery {
	return LogQuery{
		Limit:     defaultLimit,
		SortBy:    repotypes.DefaultSortBy,
		SortOrder: repotypes.DefaultSortOrder,
	}
}

// Parse validates q and converts it to storage shapes. Sort fields are passed through
// untouched: unknown values are replaced by the service, not rejected.
func (q LogQuery) Parse(maxLimit int) (repotypes.LogFilter, repotypes.Pagination, error) {
	if err := validators.ValidatePage(q.Limit, q.Offset, maxLimit); err != nil {
		return repotypes.LogFilter{}, repotypes.Pagination{}, err
	}

	filter, err := q.Filter()
	if err != nil {
		return repotypes.LogFilter{}, repotypes.Pagination{}, err
	}

	return filter, repotypes.Pagination{
		Limit:     q.Limit,
		Offset:    q.Offset,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}, nil
}

func (q LogQuery) Filter() (repotypes.LogFilter, error) {
	var (
		filter repotypes.LogFilter
		err    error
	)

	if q.Severity != "" {
		if filter.Severity, err = domain.ParseSeverity(q.Severity); err != nil {
			return repotypes.LogFilter{}, fmt.Errorf("%w: %q", ErrInvalidSeverity, q.Severity)
		}
	}
	filter.Source = q.Source

	if filter.From, err = ParseDate(q.StartDate); err != nil {
		return repotypes.LogFilter{}, fmt.Errorf("start_date: %w", err)
	}
	if filter.To, err = ParseDate(q.EndDate); err != nil {
		return repotypes.LogFilter{}, fmt.Errorf("end_date: %w", err)
	}

	return filter, nil
}

// ParseDate returns the zero time for an empty string. A bare date means midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

type LogPayload struct {
	Severity string         `json:"severity"`
	Message  string         `json:"message"`
	Source   string         `json:"source"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Entry validates p and turns it into a log entry without id and timestamp.
func (p LogPayload) Entry() (*domain.LogEntry, error) {
	entry := &domain.LogEntry{
		Severity: domain.Severity(p.Severity),
		Message:  p.Message,
		Source:   p.Source,
		Metadata: p.Metadata,
	}
	if err := validators.ValidateLog(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

type GeneratePayload struct {
	Count    int `json:"count"`
	DaysBack int `json:"days_back"`
}

func (p GeneratePayload) Validate() error {
	return validators.ValidateGenerate(p.Count, p.DaysBack)
}

type GetLogRequest struct {
	Id string `json:"id"`
}
