package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mini-news-api/internal/infrastructure/database"
	"mini-news-api/internal/repository"
)

// TestDB holds the test database handle and container
type TestDB struct {
	Mongo     *database.Mongo
	Container *mongodb.MongoDBContainer
	URI       string
}

// SetupTestDB starts a MongoDB container, connects and applies migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("Failed to start mongodb container: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	m, err := database.NewMongo(database.PoolConfig{
		URI:                    uri,
		Database:               "mini_news_test_" + uuid.NewString()[:8],
		MaxPoolSize:            20,
		ServerSelectionTimeout: 10 * time.Second,
	})
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to create client: %v", err)
	}

	m.OnConnect(database.MigrationHook)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := m.Connect(connectCtx); err != nil {
		_ = m.Close(ctx)
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to connect and migrate: %v", err)
	}

	return &TestDB{
		Mongo:     m,
		Container: container,
		URI:       uri,
	}
}

// Cleanup disconnects the client and terminates the container
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	if tdb.Mongo != nil {
		if err := tdb.Mongo.Close(ctx); err != nil {
			t.Logf("Warning: failed to disconnect: %v", err)
		}
	}
	if tdb.Container != nil {
		if err := testcontainers.TerminateContainer(tdb.Container); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// Collection returns the articles collection
func (tdb *TestDB) Collection() *mongo.Collection {
	return tdb.Mongo.Database().Collection(repository.CollectionName)
}

// Clear removes all documents but keeps the indexes
func (tdb *TestDB) Clear(t *testing.T) {
	t.Helper()
	if _, err := tdb.Collection().DeleteMany(context.Background(), bson.D{}); err != nil {
		t.Fatalf("Failed to clear collection: %v", err)
	}
}
