package database

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// PoolConfig holds the configuration for the document store connection pool.
type PoolConfig struct {
	URI                    string
	Database               string
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	MaxConnIdleTime        time.Duration
	PoolMonitor            *event.PoolMonitor
}

// Mongo is the shared, pooled document store handle. The driver connects
// lazily; Connect verifies the deployment once and runs the registered
// hooks before the handle is reported as connected.
type Mongo struct {
	client   *mongo.Client
	database string

	mu        sync.Mutex
	connected atomic.Bool
	hooks     []func(ctx context.Context, m *Mongo) error
}

// NewMongo creates the client and its connection pool without contacting the server.
func NewMongo(cfg PoolConfig) (*Mongo, error) {
	if cfg.Database == "" {
		return nil, fmt.Errorf("database name is required")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetRetryWrites(true).
		SetRetryReads(true)
	if cfg.ServerSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}
	if cfg.SocketTimeout > 0 {
		opts.SetSocketTimeout(cfg.SocketTimeout)
	}
	if cfg.MaxConnIdleTime > 0 {
		opts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}
	if cfg.PoolMonitor != nil {
		opts.SetPoolMonitor(cfg.PoolMonitor)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &Mongo{client: client, database: cfg.Database}, nil
}

// OnConnect registers a hook run once, after the first successful ping.
func (m *Mongo) OnConnect(hook func(ctx context.Context, m *Mongo) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook)
}

// Connect pings the deployment and runs the connect hooks. Concurrent callers
// wait for a single attempt; a failed attempt is retried by the next caller.
func (m *Mongo) Connect(ctx context.Context) error {
	if m.connected.Load() {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected.Load() {
		return nil
	}

	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	for _, hook := range m.hooks {
		if err := hook(ctx, m); err != nil {
			return err
		}
	}

	m.connected.Store(true)
	return nil
}

// Connected reports whether Connect has succeeded.
func (m *Mongo) Connected() bool {
	return m.connected.Load()
}

// Ping checks if the database connection is healthy.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Client returns the underlying driver client.
func (m *Mongo) Client() *mongo.Client {
	return m.client
}

// Database returns the configured database.
func (m *Mongo) Database() *mongo.Database {
	return m.client.Database(m.database)
}

// DatabaseName returns the configured database name.
func (m *Mongo) DatabaseName() string {
	return m.database
}

// Close disconnects the client and drains the pool.
func (m *Mongo) Close(ctx context.Context) error {
	m.connected.Store(false)
	return m.client.Disconnect(ctx)
}
