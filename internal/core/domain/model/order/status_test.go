package order_test

import (
	"encoding/json"
	"testing"

	"ceaseletter/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTable(t *testing.T) {
	allStatuses := []order.Status{
		order.Created, order.Paid, order.Queued, order.Sent,
		order.Delivered, order.Canceled, order.Failed,
	}

	allowed := map[order.Status][]order.Status{
		order.Created:   {order.Paid, order.Canceled},
		order.Paid:      {order.Queued, order.Sent, order.Failed, order.Canceled},
		order.Queued:    {order.Sent, order.Failed, order.Canceled},
		order.Sent:      {order.Delivered, order.Failed},
		order.Delivered: {},
		order.Failed:    {order.Paid, order.Canceled},
		order.Canceled:  {},
	}

	for from, tos := range allowed {
		allowedSet := make(map[order.Status]bool)
		for _, to := range tos {
			allowedSet[to] = true
		}

		for _, to := range allStatuses {
			if from == to {
				continue
			}
			if allowedSet[to] {
				t.Run(from.String()+"_to_"+to.String()+"_allowed", func(t *testing.T) {
					next, err := from.TransitionTo(to)
					require.NoError(t, err)
					assert.Equal(t, to, next)
				})
			} else {
				t.Run(from.String()+"_to_"+to.String()+"_rejected", func(t *testing.T) {
					_, err := from.TransitionTo(to)
					require.Error(t, err)
					require.ErrorIs(t, err, order.ErrIllegalTransition)

					var ite *order.IllegalTransitionError
					require.ErrorAs(t, err, &ite)
					assert.Equal(t, from, ite.From)
					assert.Equal(t, to, ite.To)
				})
			}
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())

	for _, s := range []order.Status{order.Created, order.Paid, order.Queued, order.Sent, order.Failed} {
		assert.False(t, s.IsTerminal(), s.String())
	}

	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Created, order.Paid, order.Queued, order.Sent,
			order.Delivered, order.Canceled, order.Failed,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})

	t.Run("transition to invalid status fails", func(t *testing.T) {
		_, err := order.Created.TransitionTo(order.Status(42))
		require.Error(t, err)
	})
}

func TestStatus_Strings(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Created, order.Paid, order.Queued, order.Sent,
			order.Delivered, order.Canceled, order.Failed,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown strings rejected", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)

		_, err = order.StatusFromString("unknown")
		require.Error(t, err)
	})

	t.Run("invalid value prints unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatus_JSON(t *testing.T) {
	t.Run("marshals by wire name", func(t *testing.T) {
		data, err := json.Marshal(order.Queued)
		require.NoError(t, err)
		assert.Equal(t, `"queued"`, string(data))
	})

	t.Run("unmarshals from wire name", func(t *testing.T) {
		var s order.Status
		require.NoError(t, json.Unmarshal([]byte(`"delivered"`), &s))
		assert.Equal(t, order.Delivered, s)
	})

	t.Run("rejects unknown wire name", func(t *testing.T) {
		var s order.Status
		require.Error(t, json.Unmarshal([]byte(`"lost"`), &s))
	})
}
