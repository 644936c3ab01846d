package commands

import (
	"errors"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/pkg/guard"
)

var ErrDeleteBlogPostCommandIsNotConstructed = errors.New(
	"DeleteBlogPostCommand must be created via NewDeleteBlogPostCommand constructor",
)

// DeleteBlogPostCommand removes a post permanently.
type DeleteBlogPostCommand struct { //nolint:recvcheck //using for validation
	postID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteBlogPostCommand creates a command to delete a post.
func NewDeleteBlogPostCommand(postID kernel.UUID) (DeleteBlogPostCommand, error) {
	command := DeleteBlogPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPostID(postID); err != nil {
		return DeleteBlogPostCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBlogPostCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBlogPostCommandIsNotConstructed)
}

// PostID returns the post to delete.
func (c DeleteBlogPostCommand) PostID() kernel.UUID {
	return c.postID
}

func (c *DeleteBlogPostCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}

	c.postID = postID
	return nil
}
