package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"

	"mini-news-api/internal/domain"
)

func TestResultLabel(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "success"},
		{"not found", domain.ErrNotFound, "not_found"},
		{"no attachment", domain.ErrNoAttachment, "not_found"},
		{"wrapped duplicate", fmt.Errorf("insert: %w", domain.ErrDuplicateSlug), "duplicate"},
		{"validation", domain.NewValidationError("bad", nil), "invalid"},
		{"timeout", fmt.Errorf("find: %w", domain.ErrQueryTimeout), "timeout"},
		{"unavailable", domain.ErrStoreUnavailable, "unavailable"},
		{"other", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultLabel(tt.err))
		})
	}
}

func TestObserveArticleOperation(t *testing.T) {
	initial := testutil.ToFloat64(ArticleOperationsTotal.WithLabelValues("create", "duplicate"))

	ObserveArticleOperation("create", domain.ErrDuplicateSlug)

	after := testutil.ToFloat64(ArticleOperationsTotal.WithLabelValues("create", "duplicate"))
	assert.Equal(t, initial+1, after, "ArticleOperationsTotal should increment by 1")
}

func TestObserveStoreQuery(t *testing.T) {
	var err error = domain.ErrNotFound
	ObserveStoreQuery("find_by_id", time.Now().Add(-10*time.Millisecond), &err)
	ObserveStoreQuery("find_by_id", time.Now(), nil)

	count := testutil.CollectAndCount(StoreQueryDuration)
	assert.GreaterOrEqual(t, count, 2, "StoreQueryDuration should have a series per result")
}

func TestObserveThumbnail(t *testing.T) {
	ObserveThumbnail("in", 2048)

	count := testutil.CollectAndCount(ThumbnailBytes)
	assert.GreaterOrEqual(t, count, 1, "ThumbnailBytes should have observations")
}

func TestPoolTracker(t *testing.T) {
	tracker := NewPoolTracker()
	monitor := tracker.Monitor()

	for _, typ := range []string{event.ConnectionCreated, event.ConnectionCreated, event.GetSucceeded} {
		monitor.Event(&event.PoolEvent{Type: typ})
	}

	total, inUse := tracker.Stats()
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, inUse)
	assert.Equal(t, float64(2), testutil.ToFloat64(StorePoolConnections.WithLabelValues("total")))
	assert.Equal(t, float64(1), testutil.ToFloat64(StorePoolConnections.WithLabelValues("in_use")))
	assert.Equal(t, float64(1), testutil.ToFloat64(StorePoolConnections.WithLabelValues("idle")))

	monitor.Event(&event.PoolEvent{Type: event.ConnectionReturned})
	monitor.Event(&event.PoolEvent{Type: event.ConnectionClosed})
	total, inUse = tracker.Stats()
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, inUse)

	// Unknown events and nil are ignored
	monitor.Event(&event.PoolEvent{Type: event.GetStarted})
	tracker.Handle(nil)
	total, inUse = tracker.Stats()
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, inUse)

	monitor.Event(&event.PoolEvent{Type: event.PoolClosedEvent})
	total, inUse = tracker.Stats()
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, inUse)
	assert.Equal(t, float64(0), testutil.ToFloat64(StorePoolConnections.WithLabelValues("total")))
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}
