package commands

import (
	"errors"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/pkg/guard"
)

var ErrResendOrderCommandIsNotConstructed = errors.New(
	"ResendOrderCommand must be created via NewResendOrderCommand constructor",
)

// ResendOrderCommand requests that a failed order be reset for another
// dispatch attempt.
type ResendOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResendOrderCommand creates a command to reset an order for resend.
func NewResendOrderCommand(orderID kernel.UUID) (ResendOrderCommand, error) {
	command := ResendOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ResendOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResendOrderCommand) Validate() error {
	return c.guard.Validate(ErrResendOrderCommandIsNotConstructed)
}

// OrderID returns the order to reset.
func (c ResendOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResendOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
