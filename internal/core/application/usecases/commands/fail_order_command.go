package commands

import (
	"errors"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/pkg/guard"
)

var (
	ErrFailOrderCommandIsNotConstructed = errors.New(
		"FailOrderCommand must be created via NewFailOrderCommand constructor",
	)
	ErrFailureMessageIsRequired = errors.New("failure message is required")
)

// FailOrderCommand records a dispatch failure with its error message.
type FailOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	message string

	guard guard.ConstructorGuard
}

// NewFailOrderCommand creates a command to mark an order as failed.
func NewFailOrderCommand(orderID kernel.UUID, message string) (FailOrderCommand, error) {
	command := FailOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setMessage(message),
	); err != nil {
		return FailOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FailOrderCommand) Validate() error {
	return c.guard.Validate(ErrFailOrderCommandIsNotConstructed)
}

// OrderID returns the failed order.
func (c FailOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Message returns the human-readable failure reason.
func (c FailOrderCommand) Message() string {
	return c.message
}

func (c *FailOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FailOrderCommand) setMessage(message string) error {
	if message == "" {
		return ErrFailureMessageIsRequired
	}

	c.message = message
	return nil
}
