package queries

import (
	"errors"

	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/pkg/guard"
)

var ErrListPublishedPostsQueryIsNotConstructed = errors.New(
	"ListPublishedPostsQuery must be created via NewListPublishedPostsQuery constructor",
)

// ListPublishedPostsQuery retrieves published posts for the public blog,
// most recently published first. Drafts never appear here.
type ListPublishedPostsQuery struct {
	tag    string
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListPublishedPostsQuery creates a public listing query with an optional
// tag filter. Limit and offset are clamped like the admin listings.
func NewListPublishedPostsQuery(tag string, limit, offset int) ListPublishedPostsQuery {
	if limit <= 0 {
		limit = DefaultListOrdersLimit
	}
	if limit > MaxListOrdersLimit {
		limit = MaxListOrdersLimit
	}
	if offset < 0 {
		offset = 0
	}

	return ListPublishedPostsQuery{
		tag:    blogpost.NormalizeTag(tag),
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListPublishedPostsQuery) Validate() error {
	return q.guard.Validate(ErrListPublishedPostsQueryIsNotConstructed)
}

// Tag returns the tag filter, possibly empty.
func (q ListPublishedPostsQuery) Tag() string { return q.tag }

// Limit returns the clamped page size.
func (q ListPublishedPostsQuery) Limit() int { return q.limit }

// Offset returns the clamped page offset.
func (q ListPublishedPostsQuery) Offset() int { return q.offset }
