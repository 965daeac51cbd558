package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"mini-news-api/internal/attachment"
	"mini-news-api/internal/domain"
	"mini-news-api/internal/logger"
	"mini-news-api/internal/metrics"
	"mini-news-api/internal/repository"
	"mini-news-api/internal/validator"
)

const (
	// DefaultPage is the page used when none or an invalid one is requested.
	DefaultPage = 1
	// DefaultPageSize is the page size used when none or an invalid one is requested.
	DefaultPageSize = 20
	// MaxPageSize caps the page size a client may request.
	MaxPageSize = 100
)

// ErrNoUpdateFields is wrapped in the ValidationError returned when an update
// carries no allow-listed field.
var ErrNoUpdateFields = errors.New("no valid fields provided")

// ArticleService orchestrates the article lifecycle.
type ArticleService struct {
	repo      repository.ArticleRepository
	codec     *attachment.Codec
	validator *validator.Validator

	defaultPageSize int
	maxPageSize     int
	now             func() time.Time
}

// Option configures an ArticleService.
type Option func(*ArticleService)

// WithPageSizes sets the default and maximum page sizes.
func WithPageSizes(defaultSize, maxSize int) Option {
	return func(s *ArticleService) {
		if defaultSize > 0 {
			s.defaultPageSize = defaultSize
		}
		if maxSize >= s.defaultPageSize {
			s.maxPageSize = maxSize
		}
	}
}

// WithClock replaces the service clock.
func WithClock(now func() time.Time) Option {
	return func(s *ArticleService) {
		s.now = now
	}
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	repo repository.ArticleRepository,
	codec *attachment.Codec,
	v *validator.Validator,
	opts ...Option,
) *ArticleService {
	s := &ArticleService{
		repo:            repo,
		codec:           codec,
		validator:       v,
		defaultPageSize: DefaultPageSize,
		maxPageSize:     MaxPageSize,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizePage applies defaults to a requested page. Non-positive values
// select the defaults; the limit is capped at the maximum page size.
func (s *ArticleService) NormalizePage(req domain.PageRequest) domain.PageRequest {
	if req.Page < 1 {
		req.Page = DefaultPage
	}
	if req.Limit < 1 {
		req.Limit = s.defaultPageSize
	}
	if req.Limit > s.maxPageSize {
		req.Limit = s.maxPageSize
	}
	return req
}

// List returns one page of active articles, newest first.
func (s *ArticleService) List(ctx context.Context, req domain.PageRequest) (page *domain.ArticlePage, err error) {
	defer func() { metrics.ObserveArticleOperation("list", err) }()
	return s.listActive(ctx, domain.ArticleFilter{}, req)
}

// ListByCategory returns one page of active articles in category, newest first.
func (s *ArticleService) ListByCategory(ctx context.Context, category string, req domain.PageRequest) (page *domain.ArticlePage, err error) {
	defer func() { metrics.ObserveArticleOperation("list_by_category", err) }()
	return s.listActive(ctx, domain.ArticleFilter{Category: category}, req)
}

func (s *ArticleService) listActive(ctx context.Context, filter domain.ArticleFilter, req domain.PageRequest) (*domain.ArticlePage, error) {
	req = s.NormalizePage(req)

	items, total, err := s.repo.FindActivePage(ctx, filter, req.Skip(), int64(req.Limit))
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &domain.ArticlePage{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		TotalPages: domain.TotalPagesFor(total, req.Limit),
	}, nil
}

// ListDeleted returns every soft-deleted article.
func (s *ArticleService) ListDeleted(ctx context.Context) (items []domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("list_deleted", err) }()

	items, err = s.repo.FindInactive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deleted articles: %w", err)
	}
	return items, nil
}

// GetByID returns an article regardless of its active flag.
func (s *ArticleService) GetByID(ctx context.Context, id string) (article *domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("get_by_id", err) }()

	article, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// GetBySlug returns the active article with slug. Soft-deleted articles are not visible.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (article *domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("get_by_slug", err) }()

	article, err = s.repo.FindBySlug(ctx, slug, true)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	return article, nil
}

// Create validates input, checks the slug, encodes the optional thumbnail and
// inserts the article. The slug pre-check only gives early feedback; the
// store's unique index decides races.
func (s *ArticleService) Create(ctx context.Context, in *domain.CreateArticleInput, thumb *attachment.Upload) (article *domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("create", err) }()

	if in == nil {
		return nil, domain.NewValidationError("Missing required fields", nil)
	}
	in.Normalize()

	if err := s.validator.ValidateCreate(in); err != nil {
		return nil, err
	}

	exists, err := s.repo.SlugExists(ctx, in.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateSlug
	}

	att, err := s.codec.Encode(thumb)
	if err != nil {
		return nil, err
	}

	now := s.now()
	article = &domain.Article{
		Page:       in.Page,
		Category:   in.Category,
		Slug:       in.Slug,
		Thumb:      att,
		Tag:        in.Tag,
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Date:       in.Date,
		Time:       in.Time,
		Paragraphs: []string(in.Paragraphs),
		VideoURL:   in.VideoURL,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, article); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create article: %w", err)
	}

	if att != nil {
		metrics.ObserveThumbnail("in", att.Size)
	}
	logger.InfoContext(ctx, "Article created",
		slog.String("article_id", article.ID.Hex()),
		slog.String("slug", article.Slug),
		slog.Bool("has_thumb", att != nil))

	return article, nil
}

// Update applies a partial update. Only allow-listed fields are considered;
// anything else is ignored. When no allow-listed field is present the store
// is not touched at all.
func (s *ArticleService) Update(ctx context.Context, id string, input map[string]any) (article *domain.Article, err error) {
	defer func() { metrics.ObserveArticleOperation("update", err) }()

	picked := lo.PickByKeys(input, domain.UpdatableFields)
	if len(picked) == 0 {
		return nil, &domain.ValidationError{
			Message: "No valid fields provided for update",
			Err:     ErrNoUpdateFields,
		}
	}

	fields, err := s.validator.CoerceUpdate(picked)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields[domain.FieldThumb]; ok && raw != nil {
		att, err := s.thumbFromUpdate(raw)
		if err != nil {
			return nil, err
		}
		fields[domain.FieldThumb] = att
	}

	fields[domain.FieldUpdatedAt] = s.now()

	article, err = s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	logger.InfoContext(ctx, "Article updated",
		slog.String("article_id", id),
		slog.Any("fields", lo.Keys(picked)))

	return article, nil
}

// SoftDelete marks the article inactive. Repeating it on an inactive article
// succeeds without changing its state.
func (s *ArticleService) SoftDelete(ctx context.Context, id string) (err error) {
	defer func() { metrics.ObserveArticleOperation("soft_delete", err) }()

	_, err = s.repo.UpdateFields(ctx, id, map[string]any{
		domain.FieldIsActive:  false,
		domain.FieldUpdatedAt: s.now(),
	})
	if err != nil {
		return fmt.Errorf("soft delete article: %w", err)
	}

	logger.WithArticleID(id).InfoContext(ctx, "Article soft deleted")
	return nil
}

// HardDelete removes the article permanently.
func (s *ArticleService) HardDelete(ctx context.Context, id string) (err error) {
	defer func() { metrics.ObserveArticleOperation("hard_delete", err) }()

	if err := s.repo.HardDelete(ctx, id); err != nil {
		return fmt.Errorf("hard delete article: %w", err)
	}

	logger.WithArticleID(id).WarnContext(ctx, "Article permanently deleted")
	return nil
}

// GetThumbnail returns the stored thumbnail of an article, active or not.
func (s *ArticleService) GetThumbnail(ctx context.Context, id string) (payload *attachment.Payload, err error) {
	defer func() { metrics.ObserveArticleOperation("get_thumbnail", err) }()

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoAttachment
		}
		return nil, fmt.Errorf("get thumbnail: %w", err)
	}

	payload, err = s.codec.Decode(article.Thumb)
	if err != nil {
		return nil, err
	}

	metrics.ObserveThumbnail("out", payload.ContentLength)
	return payload, nil
}

// thumbFromUpdate builds an attachment from a JSON update object of the form
// {"originalName": "...", "mimetype": "...", "data": "<base64>", "filename": "..."}.
func (s *ArticleService) thumbFromUpdate(raw any) (*domain.Attachment, error) {
	obj, err := cast.ToStringMapE(raw)
	if err != nil {
		return nil, domain.NewValidationError("Invalid update fields", map[string]string{
			domain.FieldThumb: "must be an object or null",
		})
	}

	data, err := base64.StdEncoding.DecodeString(cast.ToString(obj["data"]))
	if err != nil {
		return nil, domain.NewValidationError("Invalid update fields", map[string]string{
			domain.FieldThumb: "data must be base64 encoded",
		})
	}

	return s.codec.Encode(&attachment.Upload{
		Filename:     cast.ToString(obj["filename"]),
		OriginalName: cast.ToString(obj["originalName"]),
		Mimetype:     cast.ToString(obj["mimetype"]),
		Size:         int64(len(data)),
		Data:         data,
	})
}
