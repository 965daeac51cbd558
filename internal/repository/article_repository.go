package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"mini-news-api/internal/domain"
	"mini-news-api/internal/metrics"
)

const (
	// CollectionName is the MongoDB collection holding mini news articles.
	CollectionName = "mini_news"

	// DefaultQueryTimeout bounds list-style queries.
	DefaultQueryTimeout = 8 * time.Second

	// maxTimeMSExpired is the server error code for an exceeded maxTimeMS.
	maxTimeMSExpired = 50
)

// MongoArticleRepository implements ArticleRepository using MongoDB.
type MongoArticleRepository struct {
	coll         *mongo.Collection
	queryTimeout time.Duration
}

// NewMongoArticleRepository creates a new MongoArticleRepository.
// A non-positive queryTimeout selects DefaultQueryTimeout.
func NewMongoArticleRepository(db *mongo.Database, queryTimeout time.Duration) *MongoArticleRepository {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &MongoArticleRepository{
		coll:         db.Collection(CollectionName),
		queryTimeout: queryTimeout,
	}
}

// FindActivePage runs the page query and the count concurrently under a shared deadline.
func (r *MongoArticleRepository) FindActivePage(ctx context.Context, filter domain.ArticleFilter, skip, limit int64) (items []domain.Article, total int64, err error) {
	defer metrics.ObserveStoreQuery("find_active_page", time.Now(), &err)

	query := activeFilter(filter)

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		opts := options.Find().
			SetSort(bson.D{{Key: domain.FieldCreatedAt, Value: -1}}).
			SetSkip(skip).
			SetLimit(limit).
			SetMaxTime(r.queryTimeout)

		cur, err := r.coll.Find(gctx, query, opts)
		if err != nil {
			return err
		}
		return cur.All(gctx, &items)
	})

	g.Go(func() error {
		n, err := r.coll.CountDocuments(gctx, query, options.Count().SetMaxTime(r.queryTimeout))
		if err != nil {
			return err
		}
		total = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, classify("find active page", err)
	}

	if items == nil {
		items = []domain.Article{}
	}
	return items, total, nil
}

// FindInactive returns all soft-deleted articles. Unpaginated: the
// soft-deleted set is expected to stay small.
func (r *MongoArticleRepository) FindInactive(ctx context.Context) (items []domain.Article, err error) {
	defer metrics.ObserveStoreQuery("find_inactive", time.Now(), &err)

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: domain.FieldUpdatedAt, Value: -1}}).
		SetMaxTime(r.queryTimeout)

	cur, err := r.coll.Find(ctx, bson.D{{Key: domain.FieldIsActive, Value: false}}, opts)
	if err != nil {
		return nil, classify("find inactive", err)
	}
	if err := cur.All(ctx, &items); err != nil {
		return nil, classify("decode inactive", err)
	}

	if items == nil {
		items = []domain.Article{}
	}
	return items, nil
}

// FindByID returns the article regardless of its active flag.
func (r *MongoArticleRepository) FindByID(ctx context.Context, id string) (article *domain.Article, err error) {
	defer metrics.ObserveStoreQuery("find_by_id", time.Now(), &err)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var a domain.Article
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&a); err != nil {
		return nil, classify("find by id", err)
	}
	return &a, nil
}

// FindBySlug returns the article reserving slug. With activeOnly, soft-deleted
// articles are treated as absent.
func (r *MongoArticleRepository) FindBySlug(ctx context.Context, slug string, activeOnly bool) (article *domain.Article, err error) {
	defer metrics.ObserveStoreQuery("find_by_slug", time.Now(), &err)

	query := bson.D{{Key: domain.FieldSlug, Value: slug}}
	if activeOnly {
		query = append(query, bson.E{Key: domain.FieldIsActive, Value: true})
	}

	var a domain.Article
	if err := r.coll.FindOne(ctx, query).Decode(&a); err != nil {
		return nil, classify("find by slug", err)
	}
	return &a, nil
}

// SlugExists checks the slug without loading the document.
func (r *MongoArticleRepository) SlugExists(ctx context.Context, slug string) (exists bool, err error) {
	defer metrics.ObserveStoreQuery("slug_exists", time.Now(), &err)

	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: domain.FieldSlug, Value: slug}}, options.Count().SetLimit(1))
	if err != nil {
		return false, classify("slug exists", err)
	}
	return n > 0, nil
}

// Insert stores a new article. The unique slug index rejects concurrent
// duplicates with ErrDuplicateSlug.
func (r *MongoArticleRepository) Insert(ctx context.Context, article *domain.Article) (err error) {
	defer metrics.ObserveStoreQuery("insert", time.Now(), &err)

	if article.ID.IsZero() {
		article.ID = primitive.NewObjectID()
	}
	if article.Paragraphs == nil {
		article.Paragraphs = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, article); err != nil {
		article.ID = primitive.NilObjectID
		return classify("insert article", err)
	}
	return nil
}

// UpdateFields applies exactly the given fields and returns the updated article.
// Callers are responsible for including updatedAt.
func (r *MongoArticleRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (article *domain.Article, err error) {
	defer metrics.ObserveStoreQuery("update_fields", time.Now(), &err)

	if len(fields) == 0 {
		return nil, errors.New("update article: no fields to update")
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	set := bson.M{}
	unset := bson.M{}
	for k, v := range fields {
		if v == nil {
			unset[k] = ""
			continue
		}
		set[k] = v
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a domain.Article
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&a); err != nil {
		return nil, classify("update article", err)
	}
	return &a, nil
}

// HardDelete removes the article and its embedded thumbnail permanently.
func (r *MongoArticleRepository) HardDelete(ctx context.Context, id string) (err error) {
	defer metrics.ObserveStoreQuery("hard_delete", time.Now(), &err)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return classify("delete article", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func activeFilter(filter domain.ArticleFilter) bson.D {
	if filter.Category != "" {
		return bson.D{
			{Key: domain.FieldCategory, Value: filter.Category},
			{Key: domain.FieldIsActive, Value: true},
		}
	}
	return bson.D{{Key: domain.FieldIsActive, Value: true}}
}

// classify maps driver errors onto domain error kinds, keeping the cause in the message.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicateSlug)
	case isQueryTimeout(err):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrQueryTimeout, err)
	case mongo.IsNetworkError(err), errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isQueryTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return true
	}
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(maxTimeMSExpired)
}
