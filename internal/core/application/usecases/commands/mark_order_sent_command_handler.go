package commands

import "context"

// MarkOrderSentCommandHandler persists the sent transition after a successful
// carrier dispatch. Repeating the command for an already-sent order is a
// no-op that keeps the original tracking number.
type MarkOrderSentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderSentCommandHandler creates a handler for dispatch success reports.
func NewMarkOrderSentCommandHandler(uowFactory OrderUoWFactory) MarkOrderSentCommandHandler {
	return MarkOrderSentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sent report.
func (h MarkOrderSentCommandHandler) Handle(ctx context.Context, cmd MarkOrderSentCommand) error {
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

	if err = aggregate.MarkSent(cmd.TrackingNumber(), cmd.LetterID(), cmd.MailingID()); err != nil {
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
