package commands

import (
	"errors"

	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/pkg/guard"
)

var ErrUpdateBlogPostCommandIsNotConstructed = errors.New(
	"UpdateBlogPostCommand must be created via NewUpdateBlogPostCommand constructor",
)

// UpdateBlogPostCommand carries a partial edit of a blog post. Nil fields
// are left unchanged; field-level validation lives in the aggregate.
type UpdateBlogPostCommand struct { //nolint:recvcheck //using for validation
	postID kernel.UUID
	input  blogpost.UpdatePostInput

	guard guard.ConstructorGuard
}

// NewUpdateBlogPostCommand creates a command to edit a blog post.
func NewUpdateBlogPostCommand(postID kernel.UUID, input blogpost.UpdatePostInput) (UpdateBlogPostCommand, error) {
	command := UpdateBlogPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPostID(postID); err != nil {
		return UpdateBlogPostCommand{}, err
	}

	command.input = input
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBlogPostCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBlogPostCommandIsNotConstructed)
}

// PostID returns the post to edit.
func (c UpdateBlogPostCommand) PostID() kernel.UUID {
	return c.postID
}

// Input returns the partial edit.
func (c UpdateBlogPostCommand) Input() blogpost.UpdatePostInput {
	return c.input
}

func (c *UpdateBlogPostCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}

	c.postID = postID
	return nil
}
