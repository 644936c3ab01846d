package lob

import (
	"context"

	"ceaseletter/internal/core/ports"
)

// DevCarrier is the development stand-in for the Lob API: letters are
// "dispatched" instantly with a deterministic tracking number and every
// address verifies. Wired in when the service runs in dev mode so the full
// order lifecycle works without a Lob account.
type DevCarrier struct{}

// NewDevCarrier creates the dev-mode carrier.
func NewDevCarrier() *DevCarrier {
	return &DevCarrier{}
}

// SendLetter pretends the carrier accepted the letter.
func (d *DevCarrier) SendLetter(_ context.Context, req ports.DispatchRequest) (ports.LetterDispatch, error) {
	return ports.LetterDispatch{
		TrackingNumber: "DEV-" + req.OrderID.String()[:8],
		LetterID:       "dev-letter",
		MailingID:      "dev-mailing",
	}, nil
}

// VerifyAddress accepts every address without calling out.
func (d *DevCarrier) VerifyAddress(_ context.Context, _ ports.AddressQuery) (ports.AddressVerification, error) {
	return ports.AddressVerification{
		Deliverable:    true,
		Deliverability: "skipped_dev_mode",
	}, nil
}
