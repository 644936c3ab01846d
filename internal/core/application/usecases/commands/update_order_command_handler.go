package commands

import (
	"context"

	"ceaseletter/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies admin edits atomically: when a status
// change is rejected by the transition guard, the notes change in the same
// command is discarded with it.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for admin order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit. The status transition is attempted first so a
// rejection aborts before any field is touched.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(*cmd.Status(), order.ActorAdmin); err != nil {
			return err
		}
	}

	if cmd.Notes() != nil {
		aggregate.UpdateNotes(*cmd.Notes(), order.ActorAdmin)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
