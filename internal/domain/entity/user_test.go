package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user starts active with zero balance", func(t *testing.T) {
		user, err := NewUser("Ada Lovelace", "ada@example.com")

		require.NoError(t, err)
		assert.Equal(t, int64(0), user.ID())
		assert.Equal(t, "Ada Lovelace", user.Name())
		assert.Equal(t, "ada@example.com", user.Email())
		assert.Equal(t, int64(0), user.PointsBalance())
		assert.Nil(t, user.DeletedAt())
		assert.False(t, user.IsDeleted())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		user, err := NewUser("  Ada  ", "ada@example.com")

		require.NoError(t, err)
		assert.Equal(t, "Ada", user.Name())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		user, err := NewUser("   ", "ada@example.com")

		assert.ErrorIs(t, err, errs.ErrInvalidName)
		assert.Nil(t, user)
	})

	t.Run("overlong name rejected", func(t *testing.T) {
		user, err := NewUser(strings.Repeat("a", 256), "ada@example.com")

		assert.ErrorIs(t, err, errs.ErrInvalidName)
		assert.Nil(t, user)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		testCases := []string{
			"",
			"not-an-email",
			"a@",
			"@example.com",
			"Ada <ada@example.com>",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				user, err := NewUser("Ada", tc)
				assert.ErrorIs(t, err, errs.ErrInvalidEmail)
				assert.Nil(t, user)
			})
		}
	})
}

func TestUserSetID(t *testing.T) {
	user, _ := NewUser("Ada", "ada@example.com")

	assert.NoError(t, user.SetID(42))
	assert.Equal(t, int64(42), user.ID())

	assert.ErrorIs(t, user.SetID(0), errs.ErrInvalidUserID)
	assert.ErrorIs(t, user.SetID(-1), errs.ErrInvalidUserID)
}

func TestUserSetBalance(t *testing.T) {
	user, _ := NewUser("Ada", "ada@example.com")

	require.NoError(t, user.SetBalance(150))
	assert.Equal(t, int64(150), user.PointsBalance())

	require.NoError(t, user.SetBalance(0))
	assert.Equal(t, int64(0), user.PointsBalance())

	err := user.SetBalance(-1)
	assert.ErrorIs(t, err, errs.ErrNegativeBalance)
	assert.Equal(t, int64(0), user.PointsBalance())
}

func TestUserMarkDeleted(t *testing.T) {
	user, _ := NewUser("Ada", "ada@example.com")
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	user.MarkDeleted(at)

	assert.True(t, user.IsDeleted())
	require.NotNil(t, user.DeletedAt())
	assert.Equal(t, at, *user.DeletedAt())
}

func TestUserRecord(t *testing.T) {
	t.Run("entity type", func(t *testing.T) {
		user, _ := NewUser("Ada", "ada@example.com")
		assert.Equal(t, schema.User, user.EntityType())
	})

	t.Run("fields snapshot", func(t *testing.T) {
		user, _ := NewUser("Ada", "ada@example.com")
		require.NoError(t, user.SetID(7))
		require.NoError(t, user.SetBalance(300))

		fields := user.Fields()

		assert.Equal(t, int64(7), fields["id"])
		assert.Equal(t, "Ada", fields["name"])
		assert.Equal(t, "ada@example.com", fields["email"])
		assert.Equal(t, int64(300), fields["pointsBalance"])
		assert.Nil(t, fields["deletedAt"])
	})

	t.Run("set field dispatches to validating setters", func(t *testing.T) {
		user, _ := NewUser("Ada", "ada@example.com")

		require.NoError(t, user.SetField("id", int64(9)))
		require.NoError(t, user.SetField("name", "Grace"))
		require.NoError(t, user.SetField("pointsBalance", 120))

		assert.Equal(t, int64(9), user.ID())
		assert.Equal(t, "Grace", user.Name())
		assert.Equal(t, int64(120), user.PointsBalance())

		assert.ErrorIs(t, user.SetField("pointsBalance", -5), errs.ErrNegativeBalance)
		assert.ErrorIs(t, user.SetField("email", "broken"), errs.ErrInvalidEmail)
	})

	t.Run("set field reports cast failures as cast errors", func(t *testing.T) {
		user, _ := NewUser("Ada", "ada@example.com")

		err := user.SetField("pointsBalance", "plenty")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrNegativeBalance)
		assert.Contains(t, err.Error(), "pointsBalance")

		err = user.SetField("id", "xyz")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("set field ignores unknown names", func(t *testing.T) {
		user, _ := NewUser("Ada", "ada@example.com")

		assert.NoError(t, user.SetField("computedTotal", 1))
	})

	t.Run("hydrating deleted at", func(t *testing.T) {
		user, _ := NewUser("Ada", "ada@example.com")

		require.NoError(t, user.SetField("deletedAt", "2024-06-01 10:00:00"))
		assert.True(t, user.IsDeleted())

		require.NoError(t, user.SetField("deletedAt", nil))
		assert.False(t, user.IsDeleted())

		at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		require.NoError(t, user.SetField("deletedAt", at))
		require.NotNil(t, user.DeletedAt())
		assert.Equal(t, at, *user.DeletedAt())
	})
}
