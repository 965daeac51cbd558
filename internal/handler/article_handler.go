package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mini-news-api/internal/attachment"
	"mini-news-api/internal/domain"
	"mini-news-api/internal/logger"
	"mini-news-api/internal/service"
)

const (
	msgNotFound      = "MiniNews article not found"
	msgThumbNotFound = "Thumbnail not found"
	msgDuplicateSlug = "MiniNews article with this slug already exists"
	msgServerError   = "Server Error"
	msgInvalidBody   = "Invalid request body"
	msgBodyTooLarge  = "Request body too large"
)

// ArticleHandler handles mini news HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
	codec          *attachment.Codec
	maxBodySize    int64
	exposeErrors   bool
}

// NewArticleHandler creates a new ArticleHandler. maxBodySize bounds request
// bodies; exposeErrors includes internal error messages in 500 responses.
func NewArticleHandler(articleService service.ArticleServiceInterface, codec *attachment.Codec, maxBodySize int64, exposeErrors bool) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		codec:          codec,
		maxBodySize:    maxBodySize,
		exposeErrors:   exposeErrors,
	}
}

// Register mounts the mini news routes on rg.
func (h *ArticleHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/", h.List)
	rg.GET("/deleted", h.ListDeleted)
	rg.GET("/category/:categoryId", h.ListByCategory)
	rg.GET("/slug/:slug", h.GetBySlug)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/thumb", h.GetThumbnail)
	rg.POST("", h.Create)
	rg.POST("/", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.SoftDelete)
	rg.DELETE("/:id/permanent", h.HardDelete)
}

// Response is the uniform JSON envelope.
type Response struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Error      string            `json:"error,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Count      *int              `json:"count,omitempty"`
	Total      *int64            `json:"total,omitempty"`
	Page       *int              `json:"page,omitempty"`
	TotalPages *int              `json:"totalPages,omitempty"`
	Data       any               `json:"data,omitempty"`
}

// ThumbResponse describes a stored thumbnail without its bytes.
type ThumbResponse struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Mimetype     string `json:"mimetype"`
	Size         int64  `json:"size"`
	UploadedAt   string `json:"uploadedAt"`
}

// ArticleResponse represents an article in API responses.
type ArticleResponse struct {
	ID         string         `json:"_id"`
	Page       string         `json:"page"`
	Category   string         `json:"category"`
	Slug       string         `json:"slug"`
	Thumb      *ThumbResponse `json:"thumb"`
	Tag        string         `json:"tag"`
	Title      string         `json:"title"`
	Excerpt    string         `json:"excerpt"`
	Date       string         `json:"date"`
	Time       string         `json:"time"`
	Paragraphs []string       `json:"paragraphs"`
	VideoURL   string         `json:"videoUrl,omitempty"`
	IsActive   bool           `json:"isActive"`
	CreatedAt  string         `json:"createdAt"`
	UpdatedAt  string         `json:"updatedAt"`
}

func toArticleResponse(a *domain.Article) ArticleResponse {
	resp := ArticleResponse{
		ID:         a.ID.Hex(),
		Page:       a.Page,
		Category:   a.Category,
		Slug:       a.Slug,
		Tag:        a.Tag,
		Title:      a.Title,
		Excerpt:    a.Excerpt,
		Date:       a.Date,
		Time:       a.Time,
		Paragraphs: a.Paragraphs,
		VideoURL:   a.VideoURL,
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt.UTC().Format(TimeFormat),
		UpdatedAt:  a.UpdatedAt.UTC().Format(TimeFormat),
	}
	if resp.Paragraphs == nil {
		resp.Paragraphs = []string{}
	}
	if a.HasThumb() {
		resp.Thumb = &ThumbResponse{
			Filename:     a.Thumb.Filename,
			OriginalName: a.Thumb.OriginalName,
			Mimetype:     a.Thumb.Mimetype,
			Size:         a.Thumb.Size,
			UploadedAt:   a.Thumb.UploadedAt.UTC().Format(TimeFormat),
		}
	}
	return resp
}

func toArticleResponses(items []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(items))
	for i := range items {
		out = append(out, toArticleResponse(&items[i]))
	}
	return out
}

func pageResponse(p *domain.ArticlePage) Response {
	count := len(p.Items)
	total := p.Total
	page := p.Page
	totalPages := p.TotalPages
	return Response{
		Success:    true,
		Count:      &count,
		Total:      &total,
		Page:       &page,
		TotalPages: &totalPages,
		Data:       toArticleResponses(p.Items),
	}
}

// List handles GET /api/mini_news
func (h *ArticleHandler) List(c *gin.Context) {
	page, err := h.articleService.List(c.Request.Context(), pageRequest(c))
	if err != nil {
		h.respondError(c, err, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, pageResponse(page))
}

// ListByCategory handles GET /api/mini_news/category/:categoryId
func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	page, err := h.articleService.ListByCategory(c.Request.Context(), c.Param("categoryId"), pageRequest(c))
	if err != nil {
		h.respondError(c, err, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, pageResponse(page))
}

// ListDeleted handles GET /api/mini_news/deleted
func (h *ArticleHandler) ListDeleted(c *gin.Context) {
	items, err := h.articleService.ListDeleted(c.Request.Context())
	if err != nil {
		h.respondError(c, err, msgNotFound)
		return
	}

	count := len(items)
	c.JSON(http.StatusOK, Response{
		Success: true,
		Count:   &count,
		Data:    toArticleResponses(items),
	})
}

// Get handles GET /api/mini_news/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.articleService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: toArticleResponse(article)})
}

// GetBySlug handles GET /api/mini_news/slug/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: toArticleResponse(article)})
}

// GetThumbnail handles GET /api/mini_news/:id/thumb and writes the stored bytes verbatim.
func (h *ArticleHandler) GetThumbnail(c *gin.Context) {
	payload, err := h.articleService.GetThumbnail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, msgThumbNotFound)
		return
	}

	c.Header("Content-Length", strconv.FormatInt(payload.ContentLength, 10))
	c.Header("Content-Disposition", payload.ContentDisposition())
	c.Data(http.StatusOK, payload.ContentType, payload.Data)
}

// Create handles POST /api/mini_news. Accepts multipart/form-data with an
// optional thumb file, or a JSON body without one.
func (h *ArticleHandler) Create(c *gin.Context) {
	h.limitBody(c)

	var (
		in    *domain.CreateArticleInput
		thumb *attachment.Upload
	)

	if strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		form, err := c.MultipartForm()
		if err != nil {
			h.respondBodyError(c, err)
			return
		}
		defer func() { _ = form.RemoveAll() }()

		// The upload is checked before any article field is looked at.
		thumb, err = h.codec.FromMultipart(form, attachment.FieldName)
		if err != nil {
			h.respondError(c, err, msgNotFound)
			return
		}
		in = inputFromForm(form.Value)
	} else {
		in = &domain.CreateArticleInput{}
		if err := c.ShouldBindJSON(in); err != nil {
			h.respondBodyError(c, err)
			return
		}
	}

	article, err := h.articleService.Create(c.Request.Context(), in, thumb)
	if err != nil {
		h.respondError(c, err, msgNotFound)
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "MiniNews article created successfully",
		Data:    toArticleResponse(article),
	})
}

// Update handles PUT /api/mini_news/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	h.limitBody(c)

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondBodyError(c, err)
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		h.respondError(c, err, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "MiniNews article updated successfully",
		Data:    toArticleResponse(article),
	})
}

// SoftDelete handles DELETE /api/mini_news/:id
func (h *ArticleHandler) SoftDelete(c *gin.Context) {
	if err := h.articleService.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "MiniNews article deleted successfully"})
}

// HardDelete handles DELETE /api/mini_news/:id/permanent
func (h *ArticleHandler) HardDelete(c *gin.Context) {
	if err := h.articleService.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "MiniNews article permanently deleted successfully"})
}

func (h *ArticleHandler) limitBody(c *gin.Context) {
	if h.maxBodySize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodySize)
	}
}

// respondError maps a domain error onto a status code and envelope.
// notFoundMsg is used for ErrNotFound so thumbnail routes can say what is missing.
func (h *ArticleHandler) respondError(c *gin.Context, err error, notFoundMsg string) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, Response{Message: ve.Message, Errors: ve.Fields})
	case errors.Is(err, domain.ErrDuplicateSlug):
		c.JSON(http.StatusBadRequest, Response{Message: msgDuplicateSlug})
	case errors.Is(err, domain.ErrNoAttachment):
		c.JSON(http.StatusNotFound, Response{Message: msgThumbNotFound})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Message: notFoundMsg})
	default:
		logger.ErrorContext(c.Request.Context(), "Request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))

		resp := Response{Message: msgServerError, Error: "Internal Server Error"}
		if h.exposeErrors {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func (h *ArticleHandler) respondBodyError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusBadRequest, Response{Message: msgBodyTooLarge})
		return
	}

	resp := Response{Message: msgInvalidBody}
	if h.exposeErrors {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// pageRequest reads page and limit query parameters as decimal integers.
// Values that are not decimal numbers become zero and are defaulted by the service.
func pageRequest(c *gin.Context) domain.PageRequest {
	return domain.PageRequest{
		Page:  queryDecimal(c, "page"),
		Limit: queryDecimal(c, "limit"),
	}
}

func queryDecimal(c *gin.Context, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return 0
	}
	return n
}

// inputFromForm builds create input from multipart text fields. Repeated
// paragraphs fields, or paragraphs[] fields, form the ordered paragraph list.
func inputFromForm(values map[string][]string) *domain.CreateArticleInput {
	first := func(key string) string {
		if v := values[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	paragraphs := append([]string{}, values[domain.FieldParagraphs]...)
	paragraphs = append(paragraphs, values[domain.FieldParagraphs+"[]"]...)

	return &domain.CreateArticleInput{
		Page:       first(domain.FieldPage),
		Category:   first(domain.FieldCategory),
		Slug:       first(domain.FieldSlug),
		Tag:        first(domain.FieldTag),
		Title:      first(domain.FieldTitle),
		Excerpt:    first(domain.FieldExcerpt),
		Date:       first(domain.FieldDate),
		Time:       first(domain.FieldTime),
		Paragraphs: paragraphs,
		VideoURL:   first(domain.FieldVideoURL),
	}
}
