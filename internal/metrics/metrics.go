// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, article operations, store
// queries and the store connection pool.
package metrics

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/event"

	"mini-news-api/internal/domain"
)

const (
	namespace = "mini_news"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Article metrics - track lifecycle operations by outcome
	ArticleOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "operations_total",
			Help:      "Total number of article lifecycle operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	ThumbnailBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "thumbnail_bytes",
			Help:      "Size of thumbnails uploaded and served",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"direction"},
	)

	// Store metrics - track query latency and connection pool usage
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Document store query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 8},
		},
		[]string{"operation", "result"},
	)

	StorePoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "pool_connections",
			Help:      "Document store connection pool stats",
		},
		[]string{"state"},
	)
)

// ResultLabel maps an operation error to a low-cardinality result label.
func ResultLabel(err error) string {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoAttachment):
		return "not_found"
	case errors.Is(err, domain.ErrDuplicateSlug):
		return "duplicate"
	case errors.As(err, &ve):
		return "invalid"
	case errors.Is(err, domain.ErrQueryTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

// ObserveStoreQuery records a store query. Intended for use with defer and a
// named error result: defer ObserveStoreQuery("op", time.Now(), &err).
func ObserveStoreQuery(operation string, start time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	StoreQueryDuration.WithLabelValues(operation, ResultLabel(err)).Observe(time.Since(start).Seconds())
}

// ObserveArticleOperation counts a lifecycle operation by its outcome.
func ObserveArticleOperation(operation string, err error) {
	ArticleOperationsTotal.WithLabelValues(operation, ResultLabel(err)).Inc()
}

// ObserveThumbnail records the size of a thumbnail uploaded ("in") or served ("out").
func ObserveThumbnail(direction string, size int64) {
	ThumbnailBytes.WithLabelValues(direction).Observe(float64(size))
}

// PoolTracker keeps connection pool gauges current from driver pool events.
type PoolTracker struct {
	mu    sync.Mutex
	total int
	inUse int
}

// NewPoolTracker creates a PoolTracker with all gauges at zero.
func NewPoolTracker() *PoolTracker {
	t := &PoolTracker{}
	t.publish()
	return t
}

// Monitor returns a driver pool monitor feeding this tracker.
func (t *PoolTracker) Monitor() *event.PoolMonitor {
	return &event.PoolMonitor{Event: t.Handle}
}

// Handle applies a single pool event.
func (t *PoolTracker) Handle(e *event.PoolEvent) {
	if e == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	switch e.Type {
	case event.ConnectionCreated:
		t.total++
	case event.ConnectionClosed:
		if t.total > 0 {
			t.total--
		}
	case event.GetSucceeded:
		t.inUse++
	case event.ConnectionReturned:
		if t.inUse > 0 {
			t.inUse--
		}
	case event.PoolCleared, event.PoolClosedEvent:
		t.inUse = 0
		if e.Type == event.PoolClosedEvent {
			t.total = 0
		}
	default:
		return
	}
	t.publish()
}

// Stats returns the current total and checked-out connection counts.
func (t *PoolTracker) Stats() (total, inUse int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total, t.inUse
}

func (t *PoolTracker) publish() {
	idle := t.total - t.inUse
	if idle < 0 {
		idle = 0
	}
	StorePoolConnections.WithLabelValues("total").Set(float64(t.total))
	StorePoolConnections.WithLabelValues("idle").Set(float64(idle))
	StorePoolConnections.WithLabelValues("in_use").Set(float64(t.inUse))
}
