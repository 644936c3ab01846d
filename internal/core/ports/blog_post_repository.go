package ports

import (
	"context"

	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"
)

// BlogPostRepository persists the BlogPost aggregate.
type BlogPostRepository interface {
	// Add saves a new post.
	Add(ctx context.Context, aggregate *blogpost.Post) error

	// Update saves an existing post.
	Update(ctx context.Context, aggregate *blogpost.Post) error

	// Delete removes a post. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a post by ID. Returns *errs.ObjectNotFoundError when missing.
	Get(ctx context.Context, id kernel.UUID) (*blogpost.Post, error)

	// GetPublishedBySlug retrieves a published post by slug for the public
	// site. Drafts are invisible here; returns *errs.ObjectNotFoundError.
	GetPublishedBySlug(ctx context.Context, slug string) (*blogpost.Post, error)

	// IsSlugTaken reports whether another post (excluding excludeID) already
	// uses the slug. Backs the deterministic slug-bumping in the aggregate.
	IsSlugTaken(ctx context.Context, slug string, excludeID kernel.UUID) (bool, error)
}
