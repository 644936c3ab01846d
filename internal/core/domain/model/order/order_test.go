package order_test

import (
	"testing"
	"time"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/letter"
	"ceaseletter/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() letter.Form {
	form, errs := letter.ParseForm(letter.RawForm{
		Language:      "en",
		FullName:      "Jane Doe",
		AddressLine1:  "123 Main St",
		City:          "Springfield",
		State:         "IL",
		Zip:           "62704",
		Email:         "jane@example.com",
		PhoneNumber:   "555-0100",
		CollectorName: "Acme Collections",
	})
	if len(errs) > 0 {
		panic("fixture form is invalid")
	}
	return form
}

const letterText = "Re: Cease Communication Request\n\nTo whom it may concern: ..."

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), validForm(), letterText)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("round trip: created status, immutable inputs, one creation event", func(t *testing.T) {
		id := kernel.NewUUID()
		form := validForm()

		o, err := order.NewOrder(id, form, letterText)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, form, o.Form())
		assert.Equal(t, letterText, o.LetterText())
		assert.Equal(t, "jane@example.com", o.CustomerEmail())
		assert.Equal(t, "Acme Collections", o.CollectorName())
		assert.Empty(t, o.TrackingNumber())
		assert.Empty(t, o.LastError())

		events := o.Events()
		require.Len(t, events, 1)
		assert.Equal(t, order.ActionOrderCreated, events[0].Action)
		assert.Equal(t, order.ActorSystem, events[0].Actor)
		assert.Nil(t, events[0].Meta)
	})

	t.Run("should fail with zero-value id", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validForm(), letterText)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty letter text", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), validForm(), "")

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("zero-value order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_TransitionWalk(t *testing.T) {
	t.Run("happy path walks created->paid->queued->sent->delivered", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.MarkQueued())
		require.NoError(t, o.MarkSent("T123", "ltr_1", "mail_1"))
		require.NoError(t, o.MarkDelivered())

		assert.Equal(t, order.Delivered, o.Status())

		// creation + four status changes
		events := o.Events()
		require.Len(t, events, 5)
		for _, e := range events[1:] {
			assert.Equal(t, order.ActionStatusChanged, e.Action)
			require.NotNil(t, e.Meta)
		}
		assert.Equal(t, order.Created, events[1].Meta.From)
		assert.Equal(t, order.Paid, events[1].Meta.To)
		assert.Equal(t, order.Sent, events[3].Meta.To)
		assert.Equal(t, "T123", events[3].Meta.TrackingNumber)
	})

	t.Run("same-status transition is a silent no-op without event", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())
		countBefore := len(o.Events())

		require.NoError(t, o.MarkPaid())

		assert.Equal(t, order.Paid, o.Status())
		assert.Len(t, o.Events(), countBefore)
	})

	t.Run("illegal transition leaves the order unmodified", func(t *testing.T) {
		o := newTestOrder(t)
		statusBefore := o.Status()
		updatedBefore := o.UpdatedAt()
		eventsBefore := len(o.Events())

		err := o.MarkDelivered() // created -> delivered is not in the table

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, statusBefore, o.Status())
		assert.Equal(t, updatedBefore, o.UpdatedAt())
		assert.Len(t, o.Events(), eventsBefore)
	})

	t.Run("delivered rejects every further transition without mutation", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.MarkSent("T123", "", ""))
		require.NoError(t, o.MarkDelivered())

		updatedBefore := o.UpdatedAt()
		eventsBefore := len(o.Events())

		require.ErrorIs(t, o.MarkPaid(), order.ErrIllegalTransition)
		require.ErrorIs(t, o.MarkQueued(), order.ErrIllegalTransition)
		require.ErrorIs(t, o.Cancel("too late"), order.ErrIllegalTransition)
		require.ErrorIs(t, o.Fail("nope"), order.ErrIllegalTransition)
		require.ErrorIs(t, o.ResetForResend(order.ActorAdmin), order.ErrIllegalTransition)

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, updatedBefore, o.UpdatedAt())
		assert.Len(t, o.Events(), eventsBefore)
		assert.Equal(t, "T123", o.TrackingNumber())
	})

	t.Run("event count equals successful status changes plus creation", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.Fail("carrier down"))
		require.NoError(t, o.ResetForResend(order.ActorAdmin))
		require.NoError(t, o.MarkQueued())
		require.NoError(t, o.MarkSent("T9", "", ""))

		assert.Len(t, o.Events(), 6)
	})
}

func TestOrder_MarkSent(t *testing.T) {
	t.Run("sets tracking and correlation ids atomically with the event", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())

		require.NoError(t, o.MarkSent("T123", "ltr_abc", "mail_abc"))

		assert.Equal(t, order.Sent, o.Status())
		assert.Equal(t, "T123", o.TrackingNumber())
		assert.Equal(t, "ltr_abc", o.LobLetterID())
		assert.Equal(t, "mail_abc", o.LobMailingID())
	})

	t.Run("is idempotent: second call appends no event and keeps tracking", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.MarkSent("T123", "ltr_abc", "mail_abc"))
		eventsBefore := len(o.Events())

		require.NoError(t, o.MarkSent("T123", "ltr_abc", "mail_abc"))
		require.NoError(t, o.MarkSent("T456", "ltr_other", "mail_other"))

		assert.Equal(t, order.Sent, o.Status())
		assert.Equal(t, "T123", o.TrackingNumber())
		assert.Len(t, o.Events(), eventsBefore)
	})

	t.Run("requires a tracking number", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())

		require.Error(t, o.MarkSent("", "ltr", "mail"))
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("rejects dispatch before payment without setting tracking", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.MarkSent("T123", "ltr", "mail")

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Empty(t, o.TrackingNumber())
	})
}

func TestOrder_FailAndResend(t *testing.T) {
	t.Run("failure records lastError and the event carries the text", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())

		require.NoError(t, o.Fail("lob: 422 address invalid"))

		assert.Equal(t, order.Failed, o.Status())
		assert.Equal(t, "lob: 422 address invalid", o.LastError())

		events := o.Events()
		last := events[len(events)-1]
		require.NotNil(t, last.Meta)
		assert.Equal(t, "lob: 422 address invalid", last.Meta.Error)
	})

	t.Run("failed order resends through paid, clearing tracking and lastError", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.MarkSent("T123", "ltr", "mail"))
		require.NoError(t, o.Fail("returned to sender"))

		require.NoError(t, o.ResetForResend(order.ActorAdmin))

		assert.Equal(t, order.Paid, o.Status())
		assert.Empty(t, o.TrackingNumber())
		assert.Empty(t, o.LobLetterID())
		assert.Empty(t, o.LobMailingID())
		assert.Empty(t, o.LastError())
	})

	t.Run("failed order cannot jump straight back to sent or queued", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.Fail("boom"))

		require.ErrorIs(t, o.MarkSent("T1", "", ""), order.ErrIllegalTransition)
		require.ErrorIs(t, o.MarkQueued(), order.ErrIllegalTransition)
	})

	t.Run("canceled order rejects resend", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel("customer request"))

		require.ErrorIs(t, o.ResetForResend(order.ActorAdmin), order.ErrIllegalTransition)
	})

	t.Run("resend of an order already in paid is a silent reset", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())
		eventsBefore := len(o.Events())

		require.NoError(t, o.ResetForResend(order.ActorAdmin))

		assert.Equal(t, order.Paid, o.Status())
		assert.Len(t, o.Events(), eventsBefore)
	})

	t.Run("repeated failure keeps the first error until overwritten", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.Fail("first"))
		eventsBefore := len(o.Events())

		require.NoError(t, o.Fail("second")) // failed -> failed: no-op

		assert.Equal(t, "first", o.LastError())
		assert.Len(t, o.Events(), eventsBefore)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancel records the reason in the event meta", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel("duplicate purchase"))

		assert.Equal(t, order.Canceled, o.Status())
		events := o.Events()
		last := events[len(events)-1]
		assert.Equal(t, order.ActorAdmin, last.Actor)
		require.NotNil(t, last.Meta)
		assert.Equal(t, "duplicate purchase", last.Meta.Reason)
	})

	t.Run("cancel is commutative: repeat cancels return the same state without error", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel("a"))
		statusAfterFirst := o.Status()
		eventsAfterFirst := len(o.Events())

		require.NoError(t, o.Cancel("b"))

		assert.Equal(t, statusAfterFirst, o.Status())
		assert.Len(t, o.Events(), eventsAfterFirst)
	})

	t.Run("sent orders cannot be canceled", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.MarkSent("T123", "", ""))

		require.ErrorIs(t, o.Cancel("too late"), order.ErrIllegalTransition)
	})
}

func TestOrder_UpdateNotes(t *testing.T) {
	o := newTestOrder(t)
	statusBefore := o.Status()
	eventsBefore := len(o.Events())

	o.UpdateNotes("called customer back", order.ActorAdmin)

	assert.Equal(t, "called customer back", o.Notes())
	assert.Equal(t, statusBefore, o.Status())

	events := o.Events()
	require.Len(t, events, eventsBefore+1)
	last := events[len(events)-1]
	assert.Equal(t, order.ActionNotesUpdated, last.Action)
	assert.Equal(t, order.ActorAdmin, last.Actor)
}

func TestOrder_EventsAreACopy(t *testing.T) {
	o := newTestOrder(t)

	events := o.Events()
	events[0].Action = order.Action("tampered")

	assert.Equal(t, order.ActionOrderCreated, o.Events()[0].Action)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("rehydrates persisted state without new events", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)
		events := []order.Event{
			{At: createdAt, Action: order.ActionOrderCreated, Actor: order.ActorSystem},
			{At: updatedAt, Action: order.ActionStatusChanged, Actor: order.ActorSystem,
				Meta: &order.StatusChangeMeta{From: order.Created, To: order.Paid}},
		}

		o, err := order.RestoreOrder(
			id, order.Paid, createdAt, updatedAt,
			validForm(), letterText,
			"", "", "", "note", "", events,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
		assert.Len(t, o.Events(), 2)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), order.Unknown, time.Now(), time.Now(),
			validForm(), letterText, "", "", "", "", "", nil,
		)
		require.Error(t, err)
	})
}
