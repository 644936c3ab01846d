package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListBlogPostsQueryHandler serves the admin post listing from the
// blog_posts table. Tags are stored as a JSONB array, so the tag filter uses
// the containment operator and stays on the index.
type ListBlogPostsQueryHandler struct {
	db *gorm.DB
}

// NewListBlogPostsQueryHandler creates a handler for admin post listings.
func NewListBlogPostsQueryHandler(db *gorm.DB) ListBlogPostsQueryHandler {
	return ListBlogPostsQueryHandler{db: db}
}

// Handle executes the listing, newest first by creation time.
func (h ListBlogPostsQueryHandler) Handle(
	ctx context.Context,
	query ListBlogPostsQuery,
) (ListBlogPostsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListBlogPostsQueryResponse{}, err
	}

	where, args, err := buildPostFilter(query.Search(), query.Status(), query.Tag())
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
		ORDER BY created_at DESC
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

func buildPostFilter(search string, status blogpost.Status, tag string) (string, []any, error) {
	where := "1=1"
	args := make([]any, 0, 4)

	if search != "" {
		pattern := likePattern(search)
		where += " AND (title ILIKE ? OR slug ILIKE ? OR summary ILIKE ?)"
		args = append(args, pattern, pattern, pattern)
	}

	if status != "" {
		where += " AND status = ?"
		args = append(args, string(status))
	}

	if tag != "" {
		tagJSON, err := json.Marshal([]string{tag})
		if err != nil {
			return "", nil, err
		}
		where += " AND tags @> ?::jsonb"
		args = append(args, string(tagJSON))
	}

	return where, args, nil
}

func scanPostSummary(rows *sql.Rows) (BlogPostSummary, error) {
	var summary BlogPostSummary
	var id uuid.UUID
	var status string
	var tagsRaw []byte
	var publishedAt sql.NullTime

	err := rows.Scan(
		&id,
		&summary.Title,
		&summary.Slug,
		&summary.Summary,
		&summary.HeroImage,
		&status,
		&tagsRaw,
		&summary.CreatedAt,
		&summary.UpdatedAt,
		&publishedAt,
	)
	if err != nil {
		return BlogPostSummary{}, err
	}

	postID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return BlogPostSummary{}, err
	}
	summary.ID = postID
	summary.Status = blogpost.Status(status)

	if len(tagsRaw) > 0 {
		if err = json.Unmarshal(tagsRaw, &summary.Tags); err != nil {
			return BlogPostSummary{}, err
		}
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		summary.PublishedAt = &t
	}

	return summary, nil
}
