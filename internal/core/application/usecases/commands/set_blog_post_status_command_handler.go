package commands

import "context"

// SetBlogPostStatusCommandHandler flips a post between draft and published.
// Both directions are idempotent; the first publish timestamp sticks.
type SetBlogPostStatusCommandHandler struct {
	uowFactory BlogUoWFactory
}

// NewSetBlogPostStatusCommandHandler creates a handler for publish state changes.
func NewSetBlogPostStatusCommandHandler(uowFactory BlogUoWFactory) SetBlogPostStatusCommandHandler {
	return SetBlogPostStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the publish state change.
func (h SetBlogPostStatusCommandHandler) Handle(ctx context.Context, cmd SetBlogPostStatusCommand) error {
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

	if cmd.Publish() {
		aggregate.Publish()
	} else {
		aggregate.Unpublish()
	}

	if err = blogRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
