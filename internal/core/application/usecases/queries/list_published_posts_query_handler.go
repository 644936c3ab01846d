package queries

import (
	"context"

	"ceaseletter/internal/core/domain/model/blogpost"

	"gorm.io/gorm"
)

// ListPublishedPostsQueryHandler serves the public blog index. It reuses the
// admin listing's row shape but pins the status filter to published and
// sorts by publish time.
type ListPublishedPostsQueryHandler struct {
	db *gorm.DB
}

// NewListPublishedPostsQueryHandler creates a handler for the public blog index.
func NewListPublishedPostsQueryHandler(db *gorm.DB) ListPublishedPostsQueryHandler {
	return ListPublishedPostsQueryHandler{db: db}
}

// Handle executes the listing, most recently published first. Rows that
// predate the published_at column fall back to creation time for ordering.
func (h ListPublishedPostsQueryHandler) Handle(
	ctx context.Context,
	query ListPublishedPostsQuery,
) (ListBlogPostsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListBlogPostsQueryResponse{}, err
	}

	where, args, err := buildPostFilter("", blogpost.StatusPublished, query.Tag())
	if err != nil {
		return ListBlogPostsQueryResponse{}, err
	}

	var total int64
	err = h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM blog_posts WHERE `+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListBlogPostsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			slug,
			summary,
			hero_image,
			status,
			tags,
			created_at,
			updated_at,
			published_at
		FROM blog_posts
		WHERE `+where+`
		ORDER BY COALESCE(published_at, created_at) DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return ListBlogPostsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]BlogPostSummary, 0)
	for rows.Next() {
		summary, scanErr := scanPostSummary(rows)
		if scanErr != nil {
			return ListBlogPostsQueryResponse{}, scanErr
		}
		items = append(items, summary)
	}

	if err = rows.Err(); err != nil {
		return ListBlogPostsQueryResponse{}, err
	}

	return ListBlogPostsQueryResponse{
		Items:   items,
		Total:   int(total),
		HasMore: query.Offset()+query.Limit() < int(total),
	}, nil
}
