// Package blogrepo provides data transfer objects and mapping functions for
// blog post persistence.
package blogrepo

import (
	"database/sql"
	"encoding/json"
	"time"

	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BlogPostDTO represents the database row for a blog post aggregate. The
// slug is unique across all posts, drafts included, which is what lets the
// aggregate's deterministic slug bumping guarantee uniqueness.
type BlogPostDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Slug        string `gorm:"uniqueIndex"`
	Summary     string
	Content     string
	HeroImage   string
	Status      string         `gorm:"index"`
	Tags        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"index"`
	UpdatedAt   time.Time
	PublishedAt sql.NullTime
}

// TableName overrides GORM's default naming to use "blog_posts".
func (BlogPostDTO) TableName() string {
	return "blog_posts"
}

// fromDomain converts a post aggregate to its database representation.
func fromDomain(aggregate *blogpost.Post) (BlogPostDTO, error) {
	tagsJSON, err := json.Marshal(aggregate.Tags())
	if err != nil {
		return BlogPostDTO{}, err
	}

	var publishedAt sql.NullTime
	if t := aggregate.PublishedAt(); t != nil {
		publishedAt = sql.NullTime{Time: *t, Valid: true}
	}

	return BlogPostDTO{
		ID:          aggregate.ID().Bytes(),
		Title:       aggregate.Title(),
		Slug:        aggregate.Slug(),
		Summary:     aggregate.Summary(),
		Content:     aggregate.Content(),
		HeroImage:   aggregate.HeroImage(),
		Status:      string(aggregate.Status()),
		Tags:        datatypes.JSON(tagsJSON),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		PublishedAt: publishedAt,
	}, nil
}

// toDomain converts a database row back into a post aggregate.
func toDomain(dto BlogPostDTO) (*blogpost.Post, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tags []string
	if len(dto.Tags) > 0 {
		if err = json.Unmarshal(dto.Tags, &tags); err != nil {
			return nil, err
		}
	}

	var publishedAt *time.Time
	if dto.PublishedAt.Valid {
		t := dto.PublishedAt.Time
		publishedAt = &t
	}

	return blogpost.RestorePost(
		id,
		dto.Title, dto.Slug, dto.Summary, dto.Content,
		tags,
		dto.HeroImage,
		blogpost.Status(dto.Status),
		dto.CreatedAt, dto.UpdatedAt,
		publishedAt,
	)
}
