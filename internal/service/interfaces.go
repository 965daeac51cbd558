package service

import (
	"context"

	"mini-news-api/internal/attachment"
	"mini-news-api/internal/domain"
)

// ArticleServiceInterface defines the article lifecycle operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// List returns one page of active articles, newest first.
	List(ctx context.Context, req domain.PageRequest) (*domain.ArticlePage, error)
	// ListByCategory returns one page of active articles in a category.
	ListByCategory(ctx context.Context, category string, req domain.PageRequest) (*domain.ArticlePage, error)
	// ListDeleted returns every soft-deleted article.
	ListDeleted(ctx context.Context) ([]domain.Article, error)
	// GetByID returns an article regardless of its active flag.
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	// GetBySlug returns the active article with the given slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	// Create validates and stores a new article with an optional thumbnail.
	Create(ctx context.Context, in *domain.CreateArticleInput, thumb *attachment.Upload) (*domain.Article, error)
	// Update applies a partial update restricted to the updatable fields.
	Update(ctx context.Context, id string, input map[string]any) (*domain.Article, error)
	// SoftDelete marks an article inactive.
	SoftDelete(ctx context.Context, id string) error
	// HardDelete removes an article permanently.
	HardDelete(ctx context.Context, id string) error
	// GetThumbnail returns the stored thumbnail of an article.
	GetThumbnail(ctx context.Context, id string) (*attachment.Payload, error)
}

var _ ArticleServiceInterface = (*ArticleService)(nil)
