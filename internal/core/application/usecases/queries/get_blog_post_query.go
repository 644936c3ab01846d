package queries

import (
	"context"
	"errors"

	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/ports"
	"ceaseletter/internal/pkg/guard"
)

var (
	ErrGetBlogPostQueryIsNotConstructed = errors.New(
		"GetBlogPostQuery must be created via NewGetBlogPostQuery constructor",
	)
	ErrGetPublishedPostQueryIsNotConstructed = errors.New(
		"GetPublishedPostQuery must be created via NewGetPublishedPostQuery constructor",
	)
	ErrSlugIsRequired = errors.New("slug is required")
)

// GetBlogPostQuery retrieves one post by id for the admin editor, drafts
// included.
type GetBlogPostQuery struct {
	postID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBlogPostQuery creates a query for a single post by id.
func NewGetBlogPostQuery(postID kernel.UUID) (GetBlogPostQuery, error) {
	if err := postID.Validate(); err != nil {
		return GetBlogPostQuery{}, err
	}

	return GetBlogPostQuery{
		postID: postID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBlogPostQuery) Validate() error {
	return q.guard.Validate(ErrGetBlogPostQueryIsNotConstructed)
}

// PostID returns the requested post id.
func (q GetBlogPostQuery) PostID() kernel.UUID {
	return q.postID
}

// GetPublishedPostQuery retrieves one published post by slug for the public
// site. Drafts behave as if they do not exist.
type GetPublishedPostQuery struct {
	slug string

	guard guard.ConstructorGuard
}

// NewGetPublishedPostQuery creates a query for a published post by slug.
func NewGetPublishedPostQuery(slug string) (GetPublishedPostQuery, error) {
	if slug == "" {
		return GetPublishedPostQuery{}, ErrSlugIsRequired
	}

	return GetPublishedPostQuery{
		slug:  slug,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPublishedPostQuery) Validate() error {
	return q.guard.Validate(ErrGetPublishedPostQueryIsNotConstructed)
}

// Slug returns the requested slug.
func (q GetPublishedPostQuery) Slug() string {
	return q.slug
}

// GetBlogPostQueryHandler reads single posts through the repository so the
// full aggregate, content included, comes back.
type GetBlogPostQueryHandler struct {
	blogRepo ports.BlogPostRepository
}

// NewGetBlogPostQueryHandler creates a handler for single-post lookups.
func NewGetBlogPostQueryHandler(blogRepo ports.BlogPostRepository) GetBlogPostQueryHandler {
	return GetBlogPostQueryHandler{blogRepo: blogRepo}
}

// Handle retrieves the post by id. Returns *errs.ObjectNotFoundError for an
// unknown id.
func (h GetBlogPostQueryHandler) Handle(ctx context.Context, query GetBlogPostQuery) (*blogpost.Post, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.blogRepo.Get(ctx, query.PostID())
}

// HandleBySlug retrieves a published post by slug. Unknown slugs and drafts
// both return *errs.ObjectNotFoundError.
func (h GetBlogPostQueryHandler) HandleBySlug(
	ctx context.Context,
	query GetPublishedPostQuery,
) (*blogpost.Post, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.blogRepo.GetPublishedBySlug(ctx, query.Slug())
}
