package queries

import (
	"errors"
	"strings"
	"time"

	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/pkg/guard"
)

var ErrListBlogPostsQueryIsNotConstructed = errors.New(
	"ListBlogPostsQuery must be created via NewListBlogPostsQuery constructor",
)

// ListBlogPostsQuery retrieves a filtered, paginated page of posts for the
// admin content manager. Drafts are included; the public site uses
// ListPublishedPostsQuery instead.
type ListBlogPostsQuery struct {
	search string
	status blogpost.Status
	tag    string
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListBlogPostsQuery creates an admin post listing query. The search term
// matches title, slug, and summary case-insensitively; an empty status means
// all statuses; the tag filter matches normalized tags exactly. Limit and
// offset are clamped like the order listing.
func NewListBlogPostsQuery(search string, status blogpost.Status, tag string, limit, offset int) ListBlogPostsQuery {
	if limit <= 0 {
		limit = DefaultListOrdersLimit
	}
	if limit > MaxListOrdersLimit {
		limit = MaxListOrdersLimit
	}
	if offset < 0 {
		offset = 0
	}

	return ListBlogPostsQuery{
		search: strings.TrimSpace(search),
		status: status,
		tag:    blogpost.NormalizeTag(tag),
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListBlogPostsQuery) Validate() error {
	return q.guard.Validate(ErrListBlogPostsQueryIsNotConstructed)
}

// Search returns the substring filter, possibly empty.
func (q ListBlogPostsQuery) Search() string { return q.search }

// Status returns the status filter; empty means all.
func (q ListBlogPostsQuery) Status() blogpost.Status { return q.status }

// Tag returns the normalized tag filter, possibly empty.
func (q ListBlogPostsQuery) Tag() string { return q.tag }

// Limit returns the clamped page size.
func (q ListBlogPostsQuery) Limit() int { return q.limit }

// Offset returns the clamped page offset.
func (q ListBlogPostsQuery) Offset() int { return q.offset }

// BlogPostSummary is one row of a post listing. Content is left out; the
// single-post lookups serve it.
type BlogPostSummary struct {
	ID          kernel.UUID
	Title       string
	Slug        string
	Summary     string
	HeroImage   string
	Status      blogpost.Status
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time
}

// ListBlogPostsQueryResponse is a page of posts plus pagination totals.
type ListBlogPostsQueryResponse struct {
	Items   []BlogPostSummary
	Total   int
	HasMore bool
}
