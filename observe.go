package ghsearch

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// searchMetrics holds prometheus metrics registered for the client.
type searchMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	responses  *prometheus.CounterVec
	dropped    *prometheus.CounterVec
}

func newSearchMetrics(reg prometheus.Registerer) (*searchMetrics, error) {
	m := &searchMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ghsearch",
			Subsystem: "client",
			Name:      "operations_total",
			Help:      "Total client operations by type and status.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ghsearch",
			Subsystem: "client",
			Name:      "operation_duration_seconds",
			Help:      "Client operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ghsearch",
			Subsystem: "client",
			Name:      "responses_total",
			Help:      "Search API responses by operation and HTTP status code.",
		}, []string{"operation", "code"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ghsearch",
			Subsystem: "client",
			Name:      "dropped_qualifiers_total",
			Help:      "Single-range qualifiers skipped for an unrecognized operator.",
		}, []string{"operation"}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.responses); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.dropped); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("ghsearch: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("ghsearch: register metric: %w", err)
	}
	return nil
}

// observer provides logging and metrics for client operations.
type observer struct {
	logger  *slog.Logger
	metrics *searchMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *searchMetrics
	if reg != nil {
		var err error
		m, err = newSearchMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

func (o *observer) observe(
	op string, start time.Time, resp *Response, err error,
) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		o.metrics.operations.WithLabelValues(op, status).Inc()
		o.metrics.duration.WithLabelValues(op).Observe(
			dur.Seconds(),
		)
		if resp != nil {
			o.metrics.responses.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()
		}
	}

	if o.logger != nil {
		switch {
		case err != nil:
			o.logger.Warn("operation failed",
				"op", op,
				"duration", dur,
				"error", err,
			)
		case resp != nil:
			o.logger.Debug("operation completed",
				"op", op,
				"duration", dur,
				"status", resp.StatusCode,
			)
		default:
			o.logger.Debug("operation completed",
				"op", op,
				"duration", dur,
			)
		}
	}
}

// droppedQualifiers records single-range qualifiers skipped before a search.
func (o *observer) droppedQualifiers(op string, n int) {
	if o == nil || n == 0 {
		return
	}
	if o.metrics != nil {
		o.metrics.dropped.WithLabelValues(op).Add(float64(n))
	}
	if o.logger != nil {
		o.logger.Warn("single-range qualifiers dropped",
			"op", op,
			"count", n,
		)
	}
}
