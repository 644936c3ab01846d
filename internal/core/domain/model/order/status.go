package order

import (
	"encoding/json"
	"errors"
	"fmt"

	"ceaseletter/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders can only
// follow the fulfillment workflow:
//
//	created ──> paid ──> queued ──> sent ──> delivered
//	   │          │         │        │
//	   │          ├─────────┴──> failed ──> paid (resend)
//	   └──────────┴─────────┴──────┘ │
//	              canceled <─────────┘
//
// delivered and canceled are terminal. A failed send can only be retried by
// going back through paid, never straight to queued or sent.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned at order creation,
	// before payment has been confirmed.
	Created

	// Paid means payment was confirmed; the order is ready to be dispatched.
	Paid

	// Queued means the order was picked up for dispatch and is waiting
	// on the mail carrier.
	Queued

	// Sent means the carrier accepted the letter; tracking and carrier
	// correlation ids are recorded on this transition.
	Sent

	// Delivered means the carrier confirmed delivery. Terminal.
	Delivered

	// Canceled means an admin withdrew the order. Terminal.
	Canceled

	// Failed means dispatch failed; recoverable through paid (resend)
	// or canceled.
	Failed
)

// ErrIllegalTransition is the sentinel for transition-table violations.
var ErrIllegalTransition = errors.New("illegal status transition")

// IllegalTransitionError reports an attempted status change that is not in
// the transition table, carrying the attempted pair for 409-style responses.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// allowedTransitions is the authoritative transition table.
// A transition to the current status is a no-op and is handled before this
// table is consulted.
var allowedTransitions = map[Status][]Status{
	Created:   {Paid, Canceled},
	Paid:      {Queued, Sent, Failed, Canceled},
	Queued:    {Sent, Failed, Canceled},
	Sent:      {Delivered, Failed},
	Delivered: {},
	Failed:    {Paid, Canceled},
	Canceled:  {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Created:   "created",
		Paid:      "paid",
		Queued:    "queued",
		Sent:      "sent",
		Delivered: "delivered",
		Canceled:  "canceled",
		Failed:    "failed",
	}
}

// String returns the wire name of the status ("created", "paid", ...).
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := allowedTransitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether the table permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the table permits the move, or an
// IllegalTransitionError naming the attempted pair.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, &IllegalTransitionError{From: s, To: next}
	}
	return next, nil
}

// MarshalJSON encodes the status by its wire name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status from its wire name.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := StatusFromString(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
