package commands

import (
	"errors"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/pkg/guard"
)

var ErrSetBlogPostStatusCommandIsNotConstructed = errors.New(
	"SetBlogPostStatusCommand must be created via NewSetBlogPostStatusCommand constructor",
)

// SetBlogPostStatusCommand publishes or unpublishes a post.
type SetBlogPostStatusCommand struct { //nolint:recvcheck //using for validation
	postID  kernel.UUID
	publish bool

	guard guard.ConstructorGuard
}

// NewSetBlogPostStatusCommand creates a command to publish (publish=true) or
// unpublish (publish=false) a post.
func NewSetBlogPostStatusCommand(postID kernel.UUID, publish bool) (SetBlogPostStatusCommand, error) {
	command := SetBlogPostStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPostID(postID); err != nil {
		return SetBlogPostStatusCommand{}, err
	}

	command.publish = publish
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetBlogPostStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetBlogPostStatusCommandIsNotConstructed)
}

// PostID returns the post to change.
func (c SetBlogPostStatusCommand) PostID() kernel.UUID {
	return c.postID
}

// Publish reports whether the post should be published or reverted to draft.
func (c SetBlogPostStatusCommand) Publish() bool {
	return c.publish
}

func (c *SetBlogPostStatusCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}

	c.postID = postID
	return nil
}
