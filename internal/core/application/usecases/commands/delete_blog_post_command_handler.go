package commands

import "context"

// DeleteBlogPostCommandHandler removes a post. Deleting an unknown id is not
// an error, so the operation is safe to repeat.
type DeleteBlogPostCommandHandler struct {
	uowFactory BlogUoWFactory
}

// NewDeleteBlogPostCommandHandler creates a handler for post deletion.
func NewDeleteBlogPostCommandHandler(uowFactory BlogUoWFactory) DeleteBlogPostCommandHandler {
	return DeleteBlogPostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion.
func (h DeleteBlogPostCommandHandler) Handle(ctx context.Context, cmd DeleteBlogPostCommand) error {
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

	if err := uow.BlogPostRepository().Delete(ctx, cmd.PostID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
