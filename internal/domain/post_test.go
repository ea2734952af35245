package domain

import (
	"errors"
	"testing"
)

func validPost() Post {
	return Post{
		Title:    "Entendendo o Garbage Collector do Go",
		Slug:     "entendendo-garbage-collector-go",
		Excerpt:  "Um mergulho no GC concorrente.",
		Content:  "## Introdução\n\nTexto.",
		Category: "backend",
		Tags:     []string{"go", "gc"},
		ReadTime: "8 min",
	}
}

func TestPostValidate(t *testing.T) {
	t.Parallel()

	valid := validPost()
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected valid post, got %v", err)
	}

	emptyTags := validPost()
	emptyTags.Tags = []string{}
	if err := emptyTags.Validate(); err != nil {
		t.Errorf("Expected an empty tag list to be accepted, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(p *Post)
	}{
		{"missing title", func(p *Post) { p.Title = "" }},
		{"missing slug", func(p *Post) { p.Slug = "" }},
		{"blank excerpt", func(p *Post) { p.Excerpt = "   " }},
		{"missing content", func(p *Post) { p.Content = "" }},
		{"missing category", func(p *Post) { p.Category = "" }},
		{"missing read time", func(p *Post) { p.ReadTime = "" }},
		{"nil tags", func(p *Post) { p.Tags = nil }},
		{"empty tag", func(p *Post) { p.Tags = []string{"go", ""} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPost()
			tc.mutate(&p)
			err := p.Validate()
			if !errors.Is(err, ErrInvalidPost) {
				t.Errorf("Expected ErrInvalidPost, got %v", err)
			}
		})
	}

	var nilPost *Post
	if err := nilPost.Validate(); !errors.Is(err, ErrInvalidPost) {
		t.Errorf("Expected ErrInvalidPost for nil post, got %v", err)
	}
}
