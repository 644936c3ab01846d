// Package blogpost contains the BlogPost aggregate for the public-site CMS.
// Posts are secondary to the order lifecycle but share the same store
// contract: unique slugs, normalized tags, and a draft/published status where
// publishedAt is set on first publish and survives unpublishing.
package blogpost

import (
	"errors"
	"slices"
	"strings"
	"time"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/pkg/errs"
)

// ErrPostIsNotConstructed is returned when a Post bypassed its constructors.
var ErrPostIsNotConstructed = errors.New("Post must be created via NewPost or RestorePost")

// Status is the publication state of a post.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Validate checks that the Status is draft or published.
func (s Status) Validate() error {
	if s != StatusDraft && s != StatusPublished {
		return errs.NewValueIsInvalidError("blog post status")
	}
	return nil
}

// NewPostInput carries the optional creation attributes. An explicit Slug
// wins over the title-derived one; Publish creates the post already live.
type NewPostInput struct {
	Title     string
	Slug      string
	Summary   string
	Content   string
	Tags      []string
	HeroImage string
	Publish   bool
}

// UpdatePostInput carries the attributes an admin may change. Nil pointers
// (and a nil Tags slice) leave the corresponding field untouched.
type UpdatePostInput struct {
	Title     *string
	Slug      *string
	Summary   *string
	Content   *string
	Tags      []string
	HeroImage *string
	Status    *Status
}

// Post is the blog post aggregate.
type Post struct {
	id kernel.UUID

	title string
	slug  string

	summary string
	content string

	tags      []string
	heroImage string

	status Status

	createdAt   time.Time
	updatedAt   time.Time
	publishedAt *time.Time

	isConstructed bool
}

// NewPost creates a post, defaulting to draft. The slug is derived from the
// explicit slug (if given) or the title, and bumped until unique per taken.
func NewPost(id kernel.UUID, in NewPostInput, taken SlugTakenFunc) (*Post, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	slugBase := strings.TrimSpace(in.Slug)
	if slugBase == "" {
		slugBase = title
	}

	now := time.Now().UTC()
	p := &Post{
		id:            id,
		title:         title,
		slug:          EnsureUniqueSlug(slugBase, taken),
		summary:       strings.TrimSpace(in.Summary),
		content:       in.Content,
		tags:          normalizeTags(in.Tags),
		heroImage:     strings.TrimSpace(in.HeroImage),
		status:        StatusDraft,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if in.Publish {
		p.status = StatusPublished
		p.publishedAt = &now
	}

	return p, nil
}

// RestorePost rehydrates a post from persistence.
func RestorePost(
	id kernel.UUID,
	title, slug, summary, content string,
	tags []string,
	heroImage string,
	status Status,
	createdAt, updatedAt time.Time,
	publishedAt *time.Time,
) (*Post, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Post{
		id:            id,
		title:         title,
		slug:          slug,
		summary:       summary,
		content:       content,
		tags:          slices.Clone(tags),
		heroImage:     heroImage,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		publishedAt:   publishedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Post was built through NewPost or RestorePost.
func (p *Post) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPostIsNotConstructed
	}
	return nil
}

// ID returns the post's identifier.
func (p *Post) ID() kernel.UUID { return p.id }

// Title returns the post title.
func (p *Post) Title() string { return p.title }

// Slug returns the unique URL slug.
func (p *Post) Slug() string { return p.slug }

// Summary returns the short summary.
func (p *Post) Summary() string { return p.summary }

// Content returns the body markdown/html as stored.
func (p *Post) Content() string { return p.content }

// Tags returns a copy of the normalized tag list.
func (p *Post) Tags() []string { return slices.Clone(p.tags) }

// HeroImage returns the hero image reference, or "".
func (p *Post) HeroImage() string { return p.heroImage }

// Status returns draft or published.
func (p *Post) Status() Status { return p.status }

// CreatedAt returns the creation timestamp.
func (p *Post) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last-mutation timestamp.
func (p *Post) UpdatedAt() time.Time { return p.updatedAt }

// PublishedAt returns the first-publish timestamp, or nil if never published.
// It is retained across unpublishing.
func (p *Post) PublishedAt() *time.Time { return p.publishedAt }

// IsPublished reports whether the post is currently live.
func (p *Post) IsPublished() bool { return p.status == StatusPublished }

// Update applies an admin edit. A changed title never auto-changes the slug;
// only an explicit slug does, and an explicit empty slug is rejected.
func (p *Post) Update(in UpdatePostInput, taken SlugTakenFunc) error {
	if in.Slug != nil {
		proposed := strings.TrimSpace(*in.Slug)
		if proposed == "" {
			return errs.NewValueIsRequiredError("slug")
		}
		p.slug = EnsureUniqueSlug(proposed, taken)
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return errs.NewValueIsRequiredError("title")
		}
		p.title = title
	}

	if in.Summary != nil {
		p.summary = strings.TrimSpace(*in.Summary)
	}
	if in.Content != nil {
		p.content = *in.Content
	}
	if in.Tags != nil {
		p.tags = normalizeTags(in.Tags)
	}
	if in.HeroImage != nil {
		p.heroImage = strings.TrimSpace(*in.HeroImage)
	}

	if in.Status != nil && *in.Status != p.status {
		if err := in.Status.Validate(); err != nil {
			return err
		}
		if *in.Status == StatusPublished {
			p.markPublished()
		} else {
			p.status = StatusDraft
		}
	}

	p.updatedAt = time.Now().UTC()
	return nil
}

// Publish makes the post live. Publishing an already-published post is a
// no-op that does not touch updatedAt.
func (p *Post) Publish() {
	if p.status == StatusPublished {
		return
	}
	p.markPublished()
	p.updatedAt = time.Now().UTC()
}

// Unpublish takes the post back to draft, keeping publishedAt for history.
// Unpublishing a draft is a no-op.
func (p *Post) Unpublish() {
	if p.status == StatusDraft {
		return
	}
	p.status = StatusDraft
	p.updatedAt = time.Now().UTC()
}

func (p *Post) markPublished() {
	p.status = StatusPublished
	if p.publishedAt == nil {
		now := time.Now().UTC()
		p.publishedAt = &now
	}
}
