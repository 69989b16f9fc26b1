package models

import (
	"fmt"
	"strings"
)

// Slug is a value object holding a normalized, URL-safe product handle.
// Normalization: lowercase, spaces become underscores, apostrophes dropped.
type Slug string

// NewSlug normalizes raw into a Slug. When raw is empty, the slug is derived
// from the product title instead.
func NewSlug(raw, title string) (Slug, error) {
	s := raw
	if s == "" {
		s = title
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "'", "")
	if s == "" {
		return "", fmt.Errorf("slug cannot be empty")
	}
	return Slug(s), nil
}

// String returns the underlying string value.
func (s Slug) String() string {
	return string(s)
}
