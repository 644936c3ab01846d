package commands

import (
	"context"

	"ceaseletter/internal/core/domain/model/order"
)

// ResendOrderCommandHandler resets a failed order back to paid and clears its
// previous dispatch artifacts so the next send attempt starts clean. Orders
// already in paid status pass through unchanged; canceled and delivered
// orders are rejected by the transition guard.
type ResendOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResendOrderCommandHandler creates a handler for resend requests.
func NewResendOrderCommandHandler(uowFactory OrderUoWFactory) ResendOrderCommandHandler {
	return ResendOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resend request.
func (h ResendOrderCommandHandler) Handle(ctx context.Context, cmd ResendOrderCommand) error {
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

	if err = aggregate.ResetForResend(order.ActorAdmin); err != nil {
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
