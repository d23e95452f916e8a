package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCast(t *testing.T) {
	t.Run("unknown field passes through", func(t *testing.T) {
		v, err := Cast(User, "computedTotal", 42)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("nil passes through", func(t *testing.T) {
		v, err := Cast(User, "deletedAt", nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("operation reduced to scalar", func(t *testing.T) {
		v, err := Cast(Transaction, "operation", OperationRedeem)
		require.NoError(t, err)
		assert.Equal(t, "redeem", v)
	})

	t.Run("integer field", func(t *testing.T) {
		v, err := Cast(User, "pointsBalance", "150")
		require.NoError(t, err)
		assert.Equal(t, int64(150), v)

		v, err = Cast(User, "id", 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), v)

		_, err = Cast(User, "pointsBalance", "lots")
		assert.Error(t, err)
	})

	t.Run("string field", func(t *testing.T) {
		v, err := Cast(User, "name", "Ada")
		require.NoError(t, err)
		assert.Equal(t, "Ada", v)

		v, err = Cast(Transaction, "description", 99)
		require.NoError(t, err)
		assert.Equal(t, "99", v)
	})

	t.Run("time from time.Time", func(t *testing.T) {
		at := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

		v, err := Cast(User, "deletedAt", at)

		require.NoError(t, err)
		assert.Equal(t, "2024-03-15 09:30:00", v)
	})

	t.Run("time from pointer", func(t *testing.T) {
		at := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

		v, err := Cast(User, "deletedAt", &at)

		require.NoError(t, err)
		assert.Equal(t, "2024-03-15 09:30:00", v)

		v, err = Cast(User, "deletedAt", (*time.Time)(nil))
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("time from canonical string", func(t *testing.T) {
		v, err := Cast(User, "deletedAt", "2024-03-15 09:30:00")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-15 09:30:00", v)
	})

	t.Run("time from malformed string", func(t *testing.T) {
		_, err := Cast(User, "deletedAt", "15/03/2024")
		assert.Error(t, err)
	})

	t.Run("time from unsupported type", func(t *testing.T) {
		_, err := Cast(User, "deletedAt", 1710495000)
		assert.Error(t, err)
	})
}
