package order

import (
	"errors"
	"slices"
	"time"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/letter"
	"ceaseletter/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for one cease-communication letter purchase.
// It is the sole owner of the order's lifecycle state and audit trail.
//
// Invariants:
//   - status only ever moves along the transition table in this package,
//     starting from Created
//   - the form snapshot and rendered letter text are immutable after creation
//   - every successful status change appends exactly one status_changed event
//     and advances updatedAt; a transition to the current status is a silent
//     no-op with no event
//   - trackingNumber and the carrier correlation ids are set only on the
//     transition into Sent, and cleared only by a resend
//   - events are append-only and never reordered
//
// All mutating methods either apply fully or leave the aggregate untouched.
type Order struct {
	id     kernel.UUID
	status Status

	createdAt time.Time
	updatedAt time.Time

	form       letter.Form
	letterText string

	trackingNumber string
	lobLetterID    string
	lobMailingID   string

	notes     string
	lastError string

	events []Event

	isConstructed bool
}

// NewOrder creates an order in Created status around an already-validated
// intake form and its rendered letter. No validation of the form happens
// here; intake validation guarantees correctness before this call. The
// creation is recorded as an order_created audit event.
func NewOrder(id kernel.UUID, form letter.Form, letterText string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if letterText == "" {
		return nil, errs.NewValueIsRequiredError("letterText")
	}

	now := time.Now().UTC()
	o := &Order{
		id:            id,
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		form:          form,
		letterText:    letterText,
		isConstructed: true,
	}
	o.appendEvent(ActionOrderCreated, ActorSystem, nil)

	return o, nil
}

// RestoreOrder rehydrates an order from persistence without re-running
// creation side effects. The status and id are validated; everything else is
// trusted as previously persisted aggregate state.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	createdAt, updatedAt time.Time,
	form letter.Form,
	letterText string,
	trackingNumber, lobLetterID, lobMailingID string,
	notes, lastError string,
	events []Event,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:             id,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		form:           form,
		letterText:     letterText,
		trackingNumber: trackingNumber,
		lobLetterID:    lobLetterID,
		lobMailingID:   lobMailingID,
		notes:          notes,
		lastError:      lastError,
		events:         slices.Clone(events),
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's immutable identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the timestamp of the last mutation. Reads never advance it.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Form returns the immutable validated intake snapshot.
func (o *Order) Form() letter.Form { return o.form }

// LetterText returns the immutable rendered letter body.
func (o *Order) LetterText() string { return o.letterText }

// TrackingNumber returns the carrier tracking number, or "" before the order
// has ever reached Sent.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// LobLetterID returns the carrier letter correlation id, or "".
func (o *Order) LobLetterID() string { return o.lobLetterID }

// LobMailingID returns the carrier mailing correlation id, or "".
func (o *Order) LobMailingID() string { return o.lobMailingID }

// Notes returns the free-text admin notes.
func (o *Order) Notes() string { return o.notes }

// LastError returns the most recent dispatch failure reason, or "".
func (o *Order) LastError() string { return o.lastError }

// CustomerEmail returns the purchaser's email from the intake snapshot.
func (o *Order) CustomerEmail() string { return o.form.Email }

// CollectorName returns the debt collector's name from the intake snapshot.
func (o *Order) CollectorName() string { return o.form.CollectorName }

// Events returns a copy of the append-only audit trail, oldest first.
func (o *Order) Events() []Event { return slices.Clone(o.events) }

// ChangeStatus applies a guarded status transition on behalf of actor.
// A transition to the current status succeeds silently without an event so
// retried "mark as X" calls stay safe. An illegal transition returns an
// IllegalTransitionError and leaves the order unmodified.
func (o *Order) ChangeStatus(to Status, actor Actor) error {
	return o.changeStatus(to, actor, nil)
}

// MarkPaid records payment confirmation.
func (o *Order) MarkPaid() error {
	return o.changeStatus(Paid, ActorSystem, nil)
}

// MarkQueued records that the order was picked up for dispatch.
func (o *Order) MarkQueued() error {
	return o.changeStatus(Queued, ActorSystem, nil)
}

// MarkDelivered records carrier delivery confirmation.
func (o *Order) MarkDelivered() error {
	return o.changeStatus(Delivered, ActorSystem, nil)
}

// MarkSent records a successful carrier dispatch, atomically setting the
// tracking number and carrier correlation ids alongside the status event.
// Calling it again while already Sent is a no-op that keeps the original
// tracking number, which lets callers dedupe retried dispatch attempts.
func (o *Order) MarkSent(trackingNumber, lobLetterID, lobMailingID string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if o.status == Sent {
		return nil
	}

	if err := o.changeStatus(Sent, ActorSystem, &StatusChangeMeta{TrackingNumber: trackingNumber}); err != nil {
		return err
	}

	o.trackingNumber = trackingNumber
	o.lobLetterID = lobLetterID
	o.lobMailingID = lobMailingID
	return nil
}

// Fail records a dispatch failure, retaining the provider's error text in
// lastError until a later failure or a successful resend overwrites it.
func (o *Order) Fail(message string) error {
	if o.status == Failed {
		return nil
	}

	if err := o.changeStatus(Failed, ActorSystem, &StatusChangeMeta{Error: message}); err != nil {
		return err
	}

	o.lastError = message
	return nil
}

// Cancel withdraws the order on behalf of an admin. Canceling an already
// canceled order returns nil without an event: concurrent admin cancellation
// requests must not surface an error to either caller.
func (o *Order) Cancel(reason string) error {
	if o.status == Canceled {
		return nil
	}
	return o.changeStatus(Canceled, ActorAdmin, &StatusChangeMeta{Reason: reason})
}

// UpdateNotes replaces the admin notes and logs a notes_updated event.
// Notes never affect status.
func (o *Order) UpdateNotes(notes string, actor Actor) {
	o.notes = notes
	o.appendEvent(ActionNotesUpdated, actor, nil)
}

// ResetForResend puts a failed order back into Paid through the same guarded
// transition as every other status change, clearing the tracking number,
// carrier correlation ids, and lastError so the next dispatch starts clean.
// Orders already in Paid are reset silently; canceled and delivered orders
// reject with an IllegalTransitionError.
func (o *Order) ResetForResend(actor Actor) error {
	if o.status != Paid {
		if err := o.changeStatus(Paid, actor, &StatusChangeMeta{Reason: "resend"}); err != nil {
			return err
		}
	}

	o.trackingNumber = ""
	o.lobLetterID = ""
	o.lobMailingID = ""
	o.lastError = ""
	return nil
}

// changeStatus is the single write path for status: guard first, then mutate,
// then audit. No partial mutation is possible.
func (o *Order) changeStatus(to Status, actor Actor, meta *StatusChangeMeta) error {
	if to == o.status {
		return nil
	}

	next, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	if meta == nil {
		meta = &StatusChangeMeta{}
	}
	meta.From = o.status
	meta.To = next

	o.status = next
	o.appendEvent(ActionStatusChanged, actor, meta)
	return nil
}

func (o *Order) appendEvent(action Action, actor Actor, meta *StatusChangeMeta) {
	now := time.Now().UTC()
	o.events = append(o.events, Event{
		At:     now,
		Action: action,
		Actor:  actor,
		Meta:   meta,
	})
	o.updatedAt = now
}
