package blogrepo

import (
	"context"
	"errors"

	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBlogPostRepository implements ports.BlogPostRepository using GORM.
type GormBlogPostRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBlogPostRepository creates a new GORM blog post repository. The
// tracker may be nil for read-only use outside a unit of work.
func NewGormBlogPostRepository(db *gorm.DB, tracker aggregateTracker) *GormBlogPostRepository {
	return &GormBlogPostRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new post to the database.
func (r *GormBlogPostRepository) Add(ctx context.Context, aggregate *blogpost.Post) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update saves an existing post to the database.
func (r *GormBlogPostRepository) Update(ctx context.Context, aggregate *blogpost.Post) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&BlogPostDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.track(aggregate)
	return nil
}

// Delete removes a post. Deleting an unknown id is not an error.
func (r *GormBlogPostRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&BlogPostDTO{}, "id = ?", id.Bytes()).Error
}

// Get retrieves a post by ID.
func (r *GormBlogPostRepository) Get(ctx context.Context, id kernel.UUID) (*blogpost.Post, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BlogPostDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("blog post", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPublishedBySlug retrieves a published post by slug. Drafts behave as if
// they do not exist.
func (r *GormBlogPostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*blogpost.Post, error) {
	var dto BlogPostDTO
	err := r.db.WithContext(ctx).
		First(&dto, "slug = ? AND status = ?", slug, string(blogpost.StatusPublished)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("blog post", slug)
		}
		return nil, err
	}

	return toDomain(dto)
}

// IsSlugTaken reports whether another post already uses the slug.
func (r *GormBlogPostRepository) IsSlugTaken(ctx context.Context, slug string, excludeID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BlogPostDTO{}).
		Where("slug = ? AND id <> ?", slug, excludeID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormBlogPostRepository) track(aggregate *blogpost.Post) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
