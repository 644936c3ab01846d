package commands

import (
	"errors"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/letter"
	"ceaseletter/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLetterTextIsRequired = errors.New("letter text is required")
)

// CreateOrderCommand represents a request to create a new letter order from a
// validated intake form and its rendered letter text.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, form, letterText)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	form       letter.Form
	letterText string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new letter order.
// The form must already be validated by letter.ParseForm; the letter text
// must be the non-empty rendered body.
func NewCreateOrderCommand(orderID kernel.UUID, form letter.Form, letterText string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setLetterText(letterText),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.form = form
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Form returns the validated intake form snapshot.
func (c CreateOrderCommand) Form() letter.Form {
	return c.form
}

// LetterText returns the rendered letter body.
func (c CreateOrderCommand) LetterText() string {
	return c.letterText
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLetterText(letterText string) error {
	if letterText == "" {
		return ErrLetterTextIsRequired
	}

	c.letterText = letterText
	return nil
}
