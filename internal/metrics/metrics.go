package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	LogsCreated  Counter
	LogQueries   Counter
	GrpcRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return NewCounters(prometheus.DefaultRegisterer)
}

// NewTestCounters registers the counters on a private registry, so it can be called once per test.
func NewTestCounters() *Counters {
	return NewCounters(prometheus.NewRegistry())
}

// NewCounters registers the service counters on reg. Labels carry only bounded values.
func NewCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		LogsCreated: NewPrometheusCounter(reg,
			"logs_created_total",
			"Number of stored log entries",
			[]string{"severity"},
		),
		LogQueries: NewPrometheusCounter(reg,
			"log_queries_total",
			"Number of log service operations",
			[]string{"operation", "status"},
		),
		GrpcRequests: NewPrometheusCounter(reg,
			"grpc_requests_total",
			"Number of gRPC requests",
			[]string{"method", "status"},
		),
	}
}
