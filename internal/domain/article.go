package domain

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article represents a mini news article.
type Article struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Page       string             `bson:"page" json:"page"`
	Category   string             `bson:"category" json:"category"`
	Slug       string             `bson:"slug" json:"slug"`
	Thumb      *Attachment        `bson:"thumb,omitempty" json:"thumb,omitempty"`
	Tag        string             `bson:"tag" json:"tag"`
	Title      string             `bson:"title" json:"title"`
	Excerpt    string             `bson:"excerpt" json:"excerpt"`
	Date       string             `bson:"date" json:"date"`
	Time       string             `bson:"time" json:"time"`
	Paragraphs []string           `bson:"paragraphs" json:"paragraphs"`
	VideoURL   string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	IsActive   bool               `bson:"isActive" json:"isActive"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasThumb reports whether the article carries a thumbnail.
func (a *Article) HasThumb() bool {
	return a.Thumb != nil
}

// Attachment is a binary payload embedded in its owning article.
type Attachment struct {
	Filename     string    `bson:"filename" json:"filename"`
	OriginalName string    `bson:"originalName" json:"originalName"`
	Mimetype     string    `bson:"mimetype" json:"mimetype"`
	Size         int64     `bson:"size" json:"size"`
	Data         []byte    `bson:"data" json:"data"`
	UploadedAt   time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// Field names as stored in the document store. Update payloads use the same keys.
const (
	FieldPage       = "page"
	FieldCategory   = "category"
	FieldSlug       = "slug"
	FieldThumb      = "thumb"
	FieldTag        = "tag"
	FieldTitle      = "title"
	FieldExcerpt    = "excerpt"
	FieldDate       = "date"
	FieldTime       = "time"
	FieldParagraphs = "paragraphs"
	FieldVideoURL   = "videoUrl"
	FieldIsActive   = "isActive"
	FieldCreatedAt  = "createdAt"
	FieldUpdatedAt  = "updatedAt"
)

// UpdatableFields is the allow-list of fields a partial update may change.
var UpdatableFields = []string{
	FieldPage, FieldCategory, FieldSlug, FieldThumb, FieldTag, FieldTitle,
	FieldExcerpt, FieldDate, FieldTime, FieldParagraphs, FieldVideoURL, FieldIsActive,
}

// RequiredTextFields are the free-text fields every article must carry.
var RequiredTextFields = []string{
	FieldPage, FieldCategory, FieldSlug, FieldTag, FieldTitle,
	FieldExcerpt, FieldDate, FieldTime,
}

// IsUpdatableField checks if a field may be changed by a partial update.
func IsUpdatableField(field string) bool {
	for _, f := range UpdatableFields {
		if f == field {
			return true
		}
	}
	return false
}

// IsRequiredTextField checks if a field is a required free-text field.
func IsRequiredTextField(field string) bool {
	for _, f := range RequiredTextFields {
		if f == field {
			return true
		}
	}
	return false
}

// ArticleFilter narrows active-article listings.
type ArticleFilter struct {
	Category string
}

// PageRequest is a normalized pagination request.
type PageRequest struct {
	Page  int
	Limit int
}

// Skip returns the number of records preceding the requested page.
// Pages too far out to address saturate at math.MaxInt64.
func (p PageRequest) Skip() int64 {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if int64(p.Page-1) > math.MaxInt64/int64(p.Limit) {
		return math.MaxInt64
	}
	return int64(p.Page-1) * int64(p.Limit)
}

// ArticlePage is one page of an active-article listing.
type ArticlePage struct {
	Items      []Article
	Total      int64
	Page       int
	TotalPages int
}

// TotalPagesFor returns ceil(total/limit), or 0 when limit is not positive.
func TotalPagesFor(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}
