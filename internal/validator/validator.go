package validator

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"

	"mini-news-api/internal/domain"
)

const blankReason = "cannot be blank"

// Validator provides validation methods for article input.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreate validates a normalized CreateArticleInput.
func (v *Validator) ValidateCreate(in *domain.CreateArticleInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Page, validation.Required.Error(blankReason)),
		validation.Field(&in.Category, validation.Required.Error(blankReason)),
		validation.Field(&in.Slug, validation.Required.Error(blankReason)),
		validation.Field(&in.Tag, validation.Required.Error(blankReason)),
		validation.Field(&in.Title, validation.Required.Error(blankReason)),
		validation.Field(&in.Excerpt, validation.Required.Error(blankReason)),
		validation.Field(&in.Date, validation.Required.Error(blankReason)),
		validation.Field(&in.Time, validation.Required.Error(blankReason)),
	)
	return ToValidationError("Missing required fields", err)
}

// CoerceUpdate converts allow-listed update values into their stored types.
// Text fields are trimmed; required text fields may not become blank.
// A nil value in the result means the field is to be removed.
// The thumb entry is passed through untouched.
func (v *Validator) CoerceUpdate(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	errs := validation.Errors{}

	for field, raw := range fields {
		switch {
		case field == domain.FieldThumb:
			out[field] = raw

		case domain.IsRequiredTextField(field):
			s, err := requiredText(raw)
			if err != nil {
				errs[field] = err
				continue
			}
			out[field] = s

		case field == domain.FieldVideoURL:
			if raw == nil {
				out[field] = nil
				continue
			}
			s, err := cast.ToStringE(raw)
			if err != nil {
				errs[field] = validation.NewError("invalid_type", "must be a string")
				continue
			}
			if s = strings.TrimSpace(s); s == "" {
				out[field] = nil
			} else {
				out[field] = s
			}

		case field == domain.FieldParagraphs:
			p, err := NormalizeParagraphs(raw)
			if err != nil {
				errs[field] = validation.NewError("invalid_type", "must be a string or a list of strings")
				continue
			}
			out[field] = p

		case field == domain.FieldIsActive:
			if raw == nil {
				errs[field] = validation.NewError("invalid_type", "must be a boolean")
				continue
			}
			b, err := cast.ToBoolE(raw)
			if err != nil {
				errs[field] = validation.NewError("invalid_type", "must be a boolean")
				continue
			}
			out[field] = b

		default:
			return nil, fmt.Errorf("field %q is not updatable", field)
		}
	}

	if len(errs) > 0 {
		return nil, ToValidationError("Invalid update fields", errs)
	}
	return out, nil
}

// NormalizeParagraphs accepts a single value or a list and returns trimmed blocks.
func NormalizeParagraphs(raw any) ([]string, error) {
	switch val := raw.(type) {
	case nil:
		return []string{}, nil
	case string:
		return []string{strings.TrimSpace(val)}, nil
	case []string:
		return domain.Paragraphs(val).Trimmed(), nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, err
			}
			out = append(out, strings.TrimSpace(s))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported paragraphs type %T", raw)
	}
}

func requiredText(raw any) (string, error) {
	if raw == nil {
		return "", validation.NewError("required", blankReason)
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", validation.NewError("invalid_type", "must be a string")
	}
	s = strings.TrimSpace(s)
	if err := validation.Validate(s, validation.Required.Error(blankReason)); err != nil {
		return "", err
	}
	return s, nil
}

// ToValidationError converts ozzo validation errors to a domain ValidationError.
// Returns nil for a nil error.
func ToValidationError(message string, err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return &domain.ValidationError{Message: message, Err: err}
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		if fieldErr == nil {
			continue
		}
		fields[field] = fieldErr.Error()
	}
	if len(fields) == 0 {
		return nil
	}
	return domain.NewValidationError(message, fields)
}
