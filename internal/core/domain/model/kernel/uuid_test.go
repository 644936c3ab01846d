package kernel_test

import (
	"testing"

	"ceaseletter/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("NewUUID creates valid unique ids", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		require.NoError(t, id2.Validate())
		assert.False(t, id1.IsEqual(id2))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID
		require.Error(t, id.Validate())
	})

	t.Run("string round trip", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("bytes round trip", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		parsed, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("rejects nil uuid bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.Error(t, err)
	})
}
