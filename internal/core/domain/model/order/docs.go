// Package order contains the Order aggregate: the lifecycle state machine for
// a cease-communication letter purchase, its append-only audit trail, and the
// carrier tracking fields recorded when a letter goes out.
//
// The aggregate is the sole mutator of order state. External concerns (payment
// confirmation, carrier dispatch, admin actions) call one of its operations,
// the transition guard validates the move against the table in status.go, and
// every applied change is audited. Callers that perform external I/O do so
// outside the aggregate and report the result back through a single call, so
// no operation ever blocks mid-mutation.
package order
