package commands

import "context"

// FailOrderCommandHandler persists the failed transition and its error
// message. Repeating the command for an already-failed order is a no-op
// that keeps the original message.
type FailOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFailOrderCommandHandler creates a handler for dispatch failure reports.
func NewFailOrderCommandHandler(uowFactory OrderUoWFactory) FailOrderCommandHandler {
	return FailOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the failure report.
func (h FailOrderCommandHandler) Handle(ctx context.Context, cmd FailOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Fail(cmd.Message()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
