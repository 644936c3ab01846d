package commands

import (
	"errors"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/order"
	"ceaseletter/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests a guarded status transition for an order.
// It backs the markPaid, markQueued, and markDelivered operations as well as
// admin-initiated status edits; illegal transitions surface as
// order.ErrIllegalTransition from the aggregate.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	to      order.Status
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to move an order to the given status.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID, to order.Status, actor order.Actor,
) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTo(to),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	command.actor = actor
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// To returns the target status.
func (c ChangeOrderStatusCommand) To() order.Status {
	return c.to
}

// Actor returns who initiated the transition.
func (c ChangeOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTo(to order.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	c.to = to
	return nil
}
