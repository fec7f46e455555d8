package repotypes

import (
	"time"

	"github.com/Egor213/LogBoard/internal/domain"
)

// LogFilter is the conjunctive set of constraints applied to a log query.
// Zero values mean the constraint is absent. From and To are inclusive.
type LogFilter struct {
	Severity domain.Severity
	Source   string
	From     time.Time
	To       time.Time
}

type GroupField string

const (
	GroupBySeverity GroupField = "severity"
	GroupBySource   GroupField = "source"
)

func (f GroupField) Valid() bool {
	return f == GroupBySeverity || f == GroupBySource
}

// GroupCount is one row of a group-by count. Key is nil when the grouped column is NULL.
// Count is whatever the storage driver produced; see service.ExtractTotalCount.
type GroupCount struct {
	Key   *string
	Count any
}
