package pgdb

import (
	"fmt"
	"strings"

	"github.com/Egor213/LogBoard/internal/domain"
	"github.com/Egor213/LogBoard/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

const logsTable = "logs"

var logColumns = []string{"id", "severity", "message", "source", "timestamp", "metadata"}

var sortColumns = map[string]string{
	repotypes.SortByTimestamp: "timestamp",
	repotypes.SortBySeverity:  severityRank(),
	repotypes.SortBySource:    "source",
}

// severityRank sorts severity by level (DEBUG first) instead of text collation.
func severityRank() string {
	levels := make([]string, 0, len(domain.Severities))
	for _, s := range domain.Severities {
		levels = append(levels, "'"+s.String()+"'")
	}
	return fmt.Sprintf("array_position(ARRAY[%s], severity)", strings.Join(levels, ", "))
}

// BuildLogQueryFilters turns a filter into conjunctive predicates; absent fields add nothing.
func BuildLogQueryFilters(filter repotypes.LogFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	if filter.Severity != "" {
		conds = append(conds, sq.Eq{"severity": filter.Severity})
	}
	if filter.Source != "" {
		conds = append(conds, sq.Eq{"source": filter.Source})
	}
	if !filter.From.IsZero() {
		conds = append(conds, sq.GtOrEq{"timestamp": filter.From})
	}
	if !filter.To.IsZero() {
		conds = append(conds, sq.LtOrEq{"timestamp": filter.To})
	}

	return conds
}

// BuildOrderBy renders the ORDER BY term. Unknown values are normalized first, so
// nothing outside the allow-lists reaches the SQL text.
func BuildOrderBy(page repotypes.Pagination) string {
	page = page.Normalize()
	return fmt.Sprintf("%s %s", sortColumns[page.SortBy], strings.ToUpper(page.SortOrder))
}

func applyFilters(query sq.SelectBuilder, filter repotypes.LogFilter) sq.SelectBuilder {
	if conds := BuildLogQueryFilters(filter); len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	return query
}

func metadataArg(metadata map[string]any) any {
	if len(metadata) == 0 {
		return nil
	}
	return metadata
}
