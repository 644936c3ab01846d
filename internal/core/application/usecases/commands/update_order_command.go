package commands

import (
	"errors"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/order"
	"ceaseletter/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one of status or notes must be provided")
)

// UpdateOrderCommand carries an admin edit of an order: a status transition,
// a notes replacement, or both. Nil fields are left unchanged.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  *order.Status
	notes   *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order. At least one of
// status and notes must be non-nil.
func NewUpdateOrderCommand(orderID kernel.UUID, status *order.Status, notes *string) (UpdateOrderCommand, error) {
	command := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setChanges(status, notes),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status, or nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// Notes returns the replacement notes, or nil when unchanged.
func (c UpdateOrderCommand) Notes() *string {
	return c.notes
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setChanges(status *order.Status, notes *string) error {
	if status == nil && notes == nil {
		return ErrNothingToUpdate
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	c.notes = notes
	return nil
}
