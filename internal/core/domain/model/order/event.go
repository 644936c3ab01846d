package order

import "time"

// Actor identifies who performed a mutation. The enumeration is closed:
// everything is either the system (checkout flow, dispatch worker, carrier
// callbacks) or a human admin.
type Actor string

const (
	ActorSystem Actor = "system"
	ActorAdmin  Actor = "admin"
)

// Action tags an audit event.
type Action string

const (
	ActionOrderCreated  Action = "order_created"
	ActionStatusChanged Action = "status_changed"
	ActionNotesUpdated  Action = "notes_updated"
)

// StatusChangeMeta is the structured payload of a status_changed event.
// status_changed is the only action that carries a payload, so the event
// holds one optional typed struct instead of an open map. Reason is set on
// cancellation and resend, TrackingNumber on the transition into sent, and
// Error on the transition into failed.
type StatusChangeMeta struct {
	From           Status `json:"from"`
	To             Status `json:"to"`
	Reason         string `json:"reason,omitempty"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Event is one entry in an order's append-only audit trail.
// Events are never mutated or deleted once appended.
type Event struct {
	At     time.Time         `json:"at"`
	Action Action            `json:"action"`
	Actor  Actor             `json:"actor"`
	Meta   *StatusChangeMeta `json:"meta,omitempty"`
}
