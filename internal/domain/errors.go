package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when no article matches an id or slug.
	ErrNotFound = errors.New("article not found")
	// ErrNoAttachment is returned when an article exists but carries no thumbnail.
	ErrNoAttachment = errors.New("thumbnail not found")
	// ErrDuplicateSlug is returned when a slug is already reserved by another article.
	ErrDuplicateSlug = errors.New("article with this slug already exists")
	// ErrQueryTimeout is returned when a store query exceeds its execution limit.
	ErrQueryTimeout = errors.New("query timed out")
	// ErrStoreUnavailable is returned when the document store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrMalformedAttachment is returned when a stored thumbnail cannot be served.
	ErrMalformedAttachment = errors.New("malformed attachment")
)

// ValidationError describes rejected input. Fields maps a field name to its reason.
// Err, when set, is the underlying cause and is reachable through errors.Is.
type ValidationError struct {
	Message string
	Fields  map[string]string
	Err     error
}

// NewValidationError creates a ValidationError with an optional per-field reason map.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
