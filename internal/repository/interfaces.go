package repository

import (
	"context"

	"mini-news-api/internal/domain"
)

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	// FindActivePage returns one page of active articles matching filter,
	// newest first, together with the total count for the same filter.
	FindActivePage(ctx context.Context, filter domain.ArticleFilter, skip, limit int64) ([]domain.Article, int64, error)
	// FindInactive returns every soft-deleted article, most recently updated first.
	FindInactive(ctx context.Context) ([]domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	FindBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Article, error)
	// SlugExists reports whether any article, active or not, reserves slug.
	SlugExists(ctx context.Context, slug string) (bool, error)
	Insert(ctx context.Context, article *domain.Article) error
	// UpdateFields applies fields with $set; nil values are removed with $unset.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*domain.Article, error)
	HardDelete(ctx context.Context, id string) error
}
