package ports

import "context"

// UnitOfWork coordinates a transaction across the repositories so a command
// either applies fully or not at all. The store never leaves partial state
// behind, even when a status change and field updates land together.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	BlogPostRepository() BlogPostRepository
}
