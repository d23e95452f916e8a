package repository

import (
	"testing"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	coremocks "github.com/michaelbartlett17/loyalty-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userFactory() *entity.User {
	return &entity.User{}
}

func TestNewGeneric(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		repo, err := NewGeneric(nil, Config{
			Table:      "users",
			PrimaryKey: "id",
			Fillable:   []string{"name", "email", "pointsBalance", "deletedAt"},
			SoftDelete: true,
			Deletable:  true,
		}, userFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})

		require.NoError(t, err)
		assert.Equal(t, "users", repo.Config().Table)
	})

	t.Run("undeclared primary key fails construction", func(t *testing.T) {
		_, err := NewGeneric(nil, Config{
			Table:      "users",
			PrimaryKey: "uuid",
		}, userFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "uuid")
	})

	t.Run("undeclared fillable field fails construction", func(t *testing.T) {
		_, err := NewGeneric(nil, Config{
			Table:      "users",
			PrimaryKey: "id",
			Fillable:   []string{"name", "password"},
		}, userFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
	})
}

func TestGenericWithDB(t *testing.T) {
	repo, err := NewGeneric(nil, Config{
		Table:      "users",
		PrimaryKey: "id",
	}, userFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})
	require.NoError(t, err)

	clone := repo.WithDB(nil)

	assert.NotSame(t, repo, clone)
	assert.Equal(t, repo.Config(), clone.Config())
}
