package commands

import (
	"errors"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/pkg/guard"
)

var (
	ErrMarkOrderSentCommandIsNotConstructed = errors.New(
		"MarkOrderSentCommand must be created via NewMarkOrderSentCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// MarkOrderSentCommand records a successful carrier dispatch: the tracking
// number plus the carrier's letter and mailing correlation ids.
type MarkOrderSentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	trackingNumber string
	letterID       string
	mailingID      string

	guard guard.ConstructorGuard
}

// NewMarkOrderSentCommand creates a command to mark an order as sent.
// The tracking number is mandatory; the carrier ids may be empty.
func NewMarkOrderSentCommand(
	orderID kernel.UUID, trackingNumber, letterID, mailingID string,
) (MarkOrderSentCommand, error) {
	command := MarkOrderSentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTrackingNumber(trackingNumber),
	); err != nil {
		return MarkOrderSentCommand{}, err
	}

	command.letterID = letterID
	command.mailingID = mailingID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderSentCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderSentCommandIsNotConstructed)
}

// OrderID returns the dispatched order.
func (c MarkOrderSentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingNumber returns the carrier tracking number.
func (c MarkOrderSentCommand) TrackingNumber() string {
	return c.trackingNumber
}

// LetterID returns the carrier's letter id.
func (c MarkOrderSentCommand) LetterID() string {
	return c.letterID
}

// MailingID returns the carrier's mailing id.
func (c MarkOrderSentCommand) MailingID() string {
	return c.mailingID
}

func (c *MarkOrderSentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderSentCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
