package payloads

import (
	"net/http"
	"time"

	"github.com/Egor213/LogBoard/internal/domain"
)

type LogResponse struct {
	Id        string          `json:"id"`
	Severity  domain.Severity `json:"severity"`
	Message   string          `json:"message"`
	Source    string          `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
}

type LogWithStatusResponse struct {
	LogResponse
	StatusCode int `json:"status_code"`
}

type LogsResponse struct {
	StatusCode int           `json:"status_code"`
	Logs       []LogResponse `json:"logs"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
}

type AggregatedLogsResponse struct {
	StatusCode     int                     `json:"status_code"`
	SeverityCounts map[domain.Severity]int `json:"severity_counts"`
	SourceCounts   map[string]int          `json:"source_counts"`
	TotalLogs      int                     `json:"total_logs"`
}

type GenerateLogsResponse struct {
	Count      int `json:"count"`
	StatusCode int `json:"status_code"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func NewLogResponse(l domain.LogEntry) LogResponse {
	return LogResponse{
		Id:        l.Id,
		Severity:  l.Severity,
		Message:   l.Message,
		Source:    l.Source,
		Timestamp: l.Timestamp,
		Metadata:  l.Metadata,
	}
}

func NewLogWithStatusResponse(l domain.LogEntry, status int) LogWithStatusResponse {
	return LogWithStatusResponse{
		LogResponse: NewLogResponse(l),
		StatusCode:  status,
	}
}

func NewLogsResponse(page domain.LogsPage) LogsResponse {
	logs := make([]LogResponse, 0, len(page.Logs))
	for _, l := range page.Logs {
		logs = append(logs, NewLogResponse(l))
	}
	return LogsResponse{
		StatusCode: http.StatusOK,
		Logs:       logs,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}

func NewAggregatedLogsResponse(agg domain.LogsAggregation) AggregatedLogsResponse {
	resp := AggregatedLogsResponse{
		StatusCode:     http.StatusOK,
		SeverityCounts: agg.SeverityCounts,
		SourceCounts:   agg.SourceCounts,
		TotalLogs:      agg.TotalLogs,
	}
	if resp.SeverityCounts == nil {
		resp.SeverityCounts = map[domain.Severity]int{}
	}
	if resp.SourceCounts == nil {
		resp.SourceCounts = map[string]int{}
	}
	return resp
}
