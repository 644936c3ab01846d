package ports

import (
	"context"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/letter"
)

// LetterDispatch is the carrier's answer to a successful send: the tracking
// number exposed to the customer plus the carrier's own correlation ids.
type LetterDispatch struct {
	TrackingNumber string
	LetterID       string
	MailingID      string
}

// DispatchRequest carries everything the carrier needs to print and mail one
// letter. The letter text is the order's immutable rendered body.
type DispatchRequest struct {
	OrderID    kernel.UUID
	Form       letter.Form
	LetterText string
}

// MailCarrier is the outbound dispatch capability. Callers perform this
// external call outside the order store and then report the outcome through
// exactly one of MarkOrderSent or FailOrder. The store itself never waits
// on the network mid-mutation.
type MailCarrier interface {
	SendLetter(ctx context.Context, req DispatchRequest) (LetterDispatch, error)
}

// AddressQuery is a mailing address to check before letter generation.
type AddressQuery struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Zip          string
}

// AddressVerification is the verifier's verdict. Normalized carries the
// provider's standardized address components when available.
type AddressVerification struct {
	Deliverable    bool
	Deliverability string
	Normalized     map[string]any
}

// AddressVerifier checks deliverability during intake. A rejection blocks
// letter generation but never touches the order store; no order exists yet.
type AddressVerifier interface {
	VerifyAddress(ctx context.Context, addr AddressQuery) (AddressVerification, error)
}
