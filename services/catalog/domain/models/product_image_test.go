package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewProductImages(t *testing.T) {
	owner := uuid.New()

	t.Run("assigns sequential positions in input order", func(t *testing.T) {
		images := NewProductImages(owner, []string{"a.jpg", "b.jpg", "c.jpg"})
		if len(images) != 3 {
			t.Fatalf("expected 3 images, got %d", len(images))
		}
		for i, img := range images {
			if img.Position != i {
				t.Fatalf("image %d has position %d", i, img.Position)
			}
			if img.ProductID != owner {
				t.Fatalf("image %d not owned by %v", i, owner)
			}
		}
	})

	t.Run("assigns fresh unique IDs", func(t *testing.T) {
		images := NewProductImages(owner, []string{"a.jpg", "a.jpg"})
		if images[0].ID == images[1].ID {
			t.Fatal("expected unique IDs for duplicate URLs")
		}
	})

	t.Run("empty url list yields empty, non-nil slice", func(t *testing.T) {
		images := NewProductImages(owner, nil)
		if images == nil || len(images) != 0 {
			t.Fatalf("expected empty slice, got %v", images)
		}
	})
}

func TestFlattenImages(t *testing.T) {
	owner := uuid.New()

	t.Run("returns URLs in position order", func(t *testing.T) {
		images := NewProductImages(owner, []string{"a.jpg", "b.jpg"})
		urls := FlattenImages(images)
		if len(urls) != 2 || urls[0] != "a.jpg" || urls[1] != "b.jpg" {
			t.Fatalf("unexpected flatten result: %v", urls)
		}
	})

	t.Run("flatten of a rebuild round-trips", func(t *testing.T) {
		urls := []string{"a.jpg", "b.jpg", "c.jpg"}
		rebuilt := FlattenImages(NewProductImages(owner, urls))
		for i := range urls {
			if rebuilt[i] != urls[i] {
				t.Fatalf("round-trip broke at %d: %v", i, rebuilt)
			}
		}
	})
}
