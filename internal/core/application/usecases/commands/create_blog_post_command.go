package commands

import (
	"errors"
	"strings"

	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/pkg/guard"
)

var (
	ErrCreateBlogPostCommandIsNotConstructed = errors.New(
		"CreateBlogPostCommand must be created via NewCreateBlogPostCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// CreateBlogPostCommand represents a request to create a blog post.
type CreateBlogPostCommand struct { //nolint:recvcheck //using for validation
	postID kernel.UUID
	input  blogpost.NewPostInput

	guard guard.ConstructorGuard
}

// NewCreateBlogPostCommand creates a command to add a blog post.
func NewCreateBlogPostCommand(postID kernel.UUID, input blogpost.NewPostInput) (CreateBlogPostCommand, error) {
	command := CreateBlogPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPostID(postID),
		command.setInput(input),
	); err != nil {
		return CreateBlogPostCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBlogPostCommand) Validate() error {
	return c.guard.Validate(ErrCreateBlogPostCommandIsNotConstructed)
}

// PostID returns the id for the new post.
func (c CreateBlogPostCommand) PostID() kernel.UUID {
	return c.postID
}

// Input returns the post content.
func (c CreateBlogPostCommand) Input() blogpost.NewPostInput {
	return c.input
}

func (c *CreateBlogPostCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}

	c.postID = postID
	return nil
}

func (c *CreateBlogPostCommand) setInput(input blogpost.NewPostInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrTitleIsRequired
	}

	c.input = input
	return nil
}
