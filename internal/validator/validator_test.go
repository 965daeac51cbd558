package validator

import (
	"errors"
	"testing"

	"mini-news-api/internal/domain"
)

func validInput() *domain.CreateArticleInput {
	return &domain.CreateArticleInput{
		Page:     "home",
		Category: "sports",
		Slug:     "derby-day",
		Tag:      "football",
		Title:    "Derby day",
		Excerpt:  "A short excerpt",
		Date:     "2026-10-16",
		Time:     "10:00",
	}
}

func TestValidateCreate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(in *domain.CreateArticleInput)
		wantErr bool
		field   string
	}{
		{name: "valid input", mutate: func(in *domain.CreateArticleInput) {}},
		{name: "valid without optional fields", mutate: func(in *domain.CreateArticleInput) {
			in.VideoURL = ""
			in.Paragraphs = nil
		}},
		{name: "missing page", mutate: func(in *domain.CreateArticleInput) { in.Page = "" }, wantErr: true, field: "page"},
		{name: "missing category", mutate: func(in *domain.CreateArticleInput) { in.Category = "" }, wantErr: true, field: "category"},
		{name: "missing slug", mutate: func(in *domain.CreateArticleInput) { in.Slug = "" }, wantErr: true, field: "slug"},
		{name: "missing tag", mutate: func(in *domain.CreateArticleInput) { in.Tag = "" }, wantErr: true, field: "tag"},
		{name: "missing title", mutate: func(in *domain.CreateArticleInput) { in.Title = "" }, wantErr: true, field: "title"},
		{name: "missing excerpt", mutate: func(in *domain.CreateArticleInput) { in.Excerpt = "" }, wantErr: true, field: "excerpt"},
		{name: "missing date", mutate: func(in *domain.CreateArticleInput) { in.Date = "" }, wantErr: true, field: "date"},
		{name: "missing time", mutate: func(in *domain.CreateArticleInput) { in.Time = "" }, wantErr: true, field: "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			err := v.ValidateCreate(in)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ValidateCreate() unexpected error = %v", err)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("ValidateCreate() error = %v, want ValidationError", err)
			}
			if _, ok := ve.Fields[tt.field]; !ok {
				t.Errorf("ValidationError fields = %v, want key %q", ve.Fields, tt.field)
			}
		})
	}
}

func TestValidateCreate_ReportsAllMissingFields(t *testing.T) {
	v := NewValidator()
	err := v.ValidateCreate(&domain.CreateArticleInput{})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != len(domain.RequiredTextFields) {
		t.Errorf("got %d field errors, want %d: %v", len(ve.Fields), len(domain.RequiredTextFields), ve.Fields)
	}
}

func TestCoerceUpdate(t *testing.T) {
	v := NewValidator()

	t.Run("trims text and coerces types", func(t *testing.T) {
		out, err := v.CoerceUpdate(map[string]any{
			"title":      "  New title ",
			"isActive":   "true",
			"paragraphs": "single",
			"videoUrl":   " https://example.com/v ",
		})
		if err != nil {
			t.Fatalf("CoerceUpdate() error = %v", err)
		}
		if out["title"] != "New title" {
			t.Errorf("title = %v", out["title"])
		}
		if out["isActive"] != true {
			t.Errorf("isActive = %v", out["isActive"])
		}
		p, ok := out["paragraphs"].([]string)
		if !ok || len(p) != 1 || p[0] != "single" {
			t.Errorf("paragraphs = %#v", out["paragraphs"])
		}
		if out["videoUrl"] != "https://example.com/v" {
			t.Errorf("videoUrl = %v", out["videoUrl"])
		}
	})

	t.Run("blank required field is rejected", func(t *testing.T) {
		_, err := v.CoerceUpdate(map[string]any{"slug": "   "})
		if !domain.IsValidationError(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("null required field is rejected", func(t *testing.T) {
		_, err := v.CoerceUpdate(map[string]any{"title": nil})
		if !domain.IsValidationError(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("null videoUrl and thumb mean removal", func(t *testing.T) {
		out, err := v.CoerceUpdate(map[string]any{"videoUrl": nil, "thumb": nil})
		if err != nil {
			t.Fatalf("CoerceUpdate() error = %v", err)
		}
		if v, ok := out["videoUrl"]; !ok || v != nil {
			t.Errorf("videoUrl = %v, present=%v", v, ok)
		}
		if v, ok := out["thumb"]; !ok || v != nil {
			t.Errorf("thumb = %v, present=%v", v, ok)
		}
	})

	t.Run("invalid boolean is rejected", func(t *testing.T) {
		_, err := v.CoerceUpdate(map[string]any{"isActive": "maybe"})
		if !domain.IsValidationError(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("non updatable field is an error", func(t *testing.T) {
		if _, err := v.CoerceUpdate(map[string]any{"createdAt": "x"}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestNormalizeParagraphs(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    []string
		wantErr bool
	}{
		{name: "nil", raw: nil, want: []string{}},
		{name: "string", raw: " a ", want: []string{"a"}},
		{name: "string slice", raw: []string{"a", " b"}, want: []string{"a", "b"}},
		{name: "any slice", raw: []any{"a", 2}, want: []string{"a", "2"}},
		{name: "map", raw: map[string]any{"a": 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeParagraphs(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestToValidationError(t *testing.T) {
	if err := ToValidationError("x", nil); err != nil {
		t.Errorf("ToValidationError(nil) = %v, want nil", err)
	}

	plain := errors.New("boom")
	err := ToValidationError("bad input", plain)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !errors.Is(err, plain) {
		t.Error("expected underlying error to be preserved")
	}
}
