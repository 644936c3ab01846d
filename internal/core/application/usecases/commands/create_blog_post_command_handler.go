package commands

import (
	"context"

	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/ports"
)

// CreateBlogPostCommandHandler creates a post with a slug guaranteed unique
// against the repository at commit time.
type CreateBlogPostCommandHandler struct {
	uowFactory BlogUoWFactory
}

// NewCreateBlogPostCommandHandler creates a handler for blog post creation.
func NewCreateBlogPostCommandHandler(uowFactory BlogUoWFactory) CreateBlogPostCommandHandler {
	return CreateBlogPostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command.
func (h CreateBlogPostCommandHandler) Handle(ctx context.Context, cmd CreateBlogPostCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	blogRepo := uow.BlogPostRepository()
	taken, takenErr := slugTakenFunc(ctx, blogRepo, cmd.PostID())

	aggregate, err := blogpost.NewPost(cmd.PostID(), cmd.Input(), taken)
	if err != nil {
		return err
	}
	if err = *takenErr; err != nil {
		return err
	}

	if err = blogRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// slugTakenFunc adapts the repository's slug lookup to the synchronous
// callback the aggregate expects. A lookup failure is reported through the
// returned error pointer and treats the slug as taken so the aggregate never
// settles on a slug the repository could not confirm.
func slugTakenFunc(
	ctx context.Context, repo ports.BlogPostRepository, excludeID kernel.UUID,
) (blogpost.SlugTakenFunc, *error) {
	var firstErr error
	taken := func(slug string) bool {
		if firstErr != nil {
			return true
		}

		isTaken, err := repo.IsSlugTaken(ctx, slug, excludeID)
		if err != nil {
			firstErr = err
			return true
		}
		return isTaken
	}

	return taken, &firstErr
}
