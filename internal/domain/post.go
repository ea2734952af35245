package domain

import (
	"fmt"
	"strings"
)

// Post is the structured blog post returned by the full-post operation.
// Every field is required; Tags is an ordered list of non-empty strings.
type Post struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	ReadTime string   `json:"read_time"`
}

// Validate checks that the post has every required field.
func (p *Post) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: post is nil", ErrInvalidPost)
	}

	required := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"slug", p.Slug},
		{"excerpt", p.Excerpt},
		{"content", p.Content},
		{"category", p.Category},
		{"read_time", p.ReadTime},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: missing %s", ErrInvalidPost, f.name)
		}
	}

	if p.Tags == nil {
		return fmt.Errorf("%w: missing tags", ErrInvalidPost)
	}
	for i, tag := range p.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: tag %d is empty", ErrInvalidPost, i)
		}
	}

	return nil
}
