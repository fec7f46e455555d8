package service

import (
	"context"
	"reflect"

	"github.com/Egor213/LogBoard/internal/domain"
	"github.com/Egor213/LogBoard/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogBoard/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var totalKeys = []string{"all", "_all"}

// AllCounter is a count descriptor carrying its own total.
type AllCounter interface {
	AllCount() any
}

// MapCoercer is a count descriptor that can be viewed as a key to count mapping.
type MapCoercer interface {
	AsMap() map[string]any
}

// GetAggregatedLogs runs the total count and both group-by counts concurrently.
// Groups with a NULL key, an unknown severity or a zero count are dropped.
func (s *LogService) GetAggregatedLogs(ctx context.Context, filter repotypes.LogFilter) (domain.LogsAggregation, error) {
	var (
		total      int
		bySeverity []repotypes.GroupCount
		bySource   []repotypes.GroupCount
		g          errgroup.Group
	)

	g.Go(func() error {
		var err error
		total, err = s.logRepo.CountLogs(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		bySeverity, err = s.logRepo.GroupCountLogs(ctx, filter, repotypes.GroupBySeverity)
		return err
	})
	g.Go(func() error {
		var err error
		bySource, err = s.logRepo.GroupCountLogs(ctx, filter, repotypes.GroupBySource)
		return err
	})

	if err := g.Wait(); err != nil {
		s.observe("aggregate_logs", err)
		return domain.LogsAggregation{}, errorsUtils.WrapOpErr(ErrCannotAggregateLogs, err)
	}
	s.observe("aggregate_logs", nil)

	agg := domain.LogsAggregation{
		TotalLogs:      total,
		SeverityCounts: make(map[domain.Severity]int, len(bySeverity)),
		SourceCounts:   make(map[string]int, len(bySource)),
	}

	for _, gc := range bySeverity {
		if gc.Key == nil {
			continue
		}
		severity, err := domain.ParseSeverity(*gc.Key)
		if err != nil {
			log.WithField("severity", *gc.Key).Debug("Dropping group with unknown severity")
			continue
		}
		if n := ExtractTotalCount(gc.Count); n > 0 {
			agg.SeverityCounts[severity] += n
		}
	}

	for _, gc := range bySource {
		if gc.Key == nil {
			continue
		}
		if n := ExtractTotalCount(gc.Count); n > 0 {
			agg.SourceCounts[*gc.Key] += n
		}
	}

	return agg, nil
}

// ExtractTotalCount reads an integer out of a group-by count descriptor:
// an integer is returned as is; a mapping yields its "all" entry or the sum of its integer values;
// an AllCounter yields AllCount, falling back to AsMap when it also implements MapCoercer.
// Anything else counts as 0.
func ExtractTotalCount(descriptor any) int {
	if n, ok := asInt(descriptor); ok {
		return n
	}

	switch d := descriptor.(type) {
	case AllCounter:
		if n, ok := asInt(d.AllCount()); ok {
			return n
		}
		if m, ok := d.(MapCoercer); ok {
			return countFromMap(m.AsMap())
		}
		return 0
	case MapCoercer:
		return countFromMap(d.AsMap())
	}

	if m, ok := asMap(descriptor); ok {
		return countFromMap(m)
	}
	return 0
}

func countFromMap(m map[string]any) int {
	for _, key := range totalKeys {
		if n, ok := asInt(m[key]); ok {
			return n
		}
	}

	sum := 0
	for _, v := range m {
		if n, ok := asInt(v); ok {
			sum += n
		}
	}
	return sum
}

func asInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	}
	return 0, false
}

func asMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}
