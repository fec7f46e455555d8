package httpv1

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/Egor213/LogBoard/internal/domain"
)

var csvHeader = []string{"id", "severity", "message", "source", "timestamp"}

func writeLogsCSV(w io.Writer, logs []domain.LogEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, l := range logs {
		record := []string{
			l.Id,
			l.Severity.String(),
			l.Message,
			l.Source,
			l.Timestamp.Format(time.RFC3339Nano),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
