package commands

import "context"

// UpdateBlogPostCommandHandler loads the post, applies the partial edit, and
// persists it. An explicit slug change is re-uniqued against the repository.
type UpdateBlogPostCommandHandler struct {
	uowFactory BlogUoWFactory
}

// NewUpdateBlogPostCommandHandler creates a handler for blog post edits.
func NewUpdateBlogPostCommandHandler(uowFactory BlogUoWFactory) UpdateBlogPostCommandHandler {
	return UpdateBlogPostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command.
func (h UpdateBlogPostCommandHandler) Handle(ctx context.Context, cmd UpdateBlogPostCommand) error {
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
	aggregate, err := blogRepo.Get(ctx, cmd.PostID())
	if err != nil {
		return err
	}

	taken, takenErr := slugTakenFunc(ctx, blogRepo, cmd.PostID())
	if err = aggregate.Update(cmd.Input(), taken); err != nil {
		return err
	}
	if err = *takenErr; err != nil {
		return err
	}

	if err = blogRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
