package entity

import (
	"strings"
	"testing"

	errs "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	t.Run("valid ledger entry", func(t *testing.T) {
		txn, err := NewTransaction(1, schema.OperationEarn, 100, "welcome bonus")

		require.NoError(t, err)
		assert.Equal(t, int64(0), txn.ID())
		assert.Equal(t, int64(1), txn.UserID())
		assert.Equal(t, schema.OperationEarn, txn.Operation())
		assert.Equal(t, int64(100), txn.Amount())
		assert.Equal(t, "welcome bonus", txn.Description())
	})

	t.Run("non-positive user id rejected", func(t *testing.T) {
		_, err := NewTransaction(0, schema.OperationEarn, 100, "bonus")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = NewTransaction(-3, schema.OperationEarn, 100, "bonus")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("unknown operation rejected", func(t *testing.T) {
		_, err := NewTransaction(1, schema.Operation("transfer"), 100, "bonus")

		assert.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("amount below one rejected", func(t *testing.T) {
		_, err := NewTransaction(1, schema.OperationRedeem, 0, "reward")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = NewTransaction(1, schema.OperationRedeem, -50, "reward")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("amount of one accepted", func(t *testing.T) {
		txn, err := NewTransaction(1, schema.OperationRedeem, 1, "sticker")

		require.NoError(t, err)
		assert.Equal(t, int64(1), txn.Amount())
	})

	t.Run("empty description rejected", func(t *testing.T) {
		_, err := NewTransaction(1, schema.OperationEarn, 100, "")
		assert.ErrorIs(t, err, errs.ErrInvalidDescription)

		_, err = NewTransaction(1, schema.OperationEarn, 100, "   ")
		assert.ErrorIs(t, err, errs.ErrInvalidDescription)
	})

	t.Run("overlong description rejected", func(t *testing.T) {
		_, err := NewTransaction(1, schema.OperationEarn, 100, strings.Repeat("x", 256))

		assert.ErrorIs(t, err, errs.ErrInvalidDescription)
	})
}

func TestTransactionRecord(t *testing.T) {
	t.Run("entity type", func(t *testing.T) {
		txn, _ := NewTransaction(1, schema.OperationEarn, 100, "bonus")
		assert.Equal(t, schema.Transaction, txn.EntityType())
	})

	t.Run("fields snapshot", func(t *testing.T) {
		txn, _ := NewTransaction(5, schema.OperationRedeem, 40, "coffee")

		fields := txn.Fields()

		assert.Equal(t, int64(5), fields["userId"])
		assert.Equal(t, schema.OperationRedeem, fields["operation"])
		assert.Equal(t, int64(40), fields["amount"])
		assert.Equal(t, "coffee", fields["description"])
	})

	t.Run("hydration through set field", func(t *testing.T) {
		txn := &Transaction{}

		require.NoError(t, txn.SetField("id", int64(12)))
		require.NoError(t, txn.SetField("userId", int64(5)))
		require.NoError(t, txn.SetField("operation", "earn"))
		require.NoError(t, txn.SetField("amount", int64(75)))
		require.NoError(t, txn.SetField("description", "signup"))

		assert.Equal(t, int64(12), txn.ID())
		assert.Equal(t, int64(5), txn.UserID())
		assert.Equal(t, schema.OperationEarn, txn.Operation())
		assert.Equal(t, int64(75), txn.Amount())
		assert.Equal(t, "signup", txn.Description())
	})

	t.Run("hydration still validates", func(t *testing.T) {
		txn := &Transaction{}

		assert.ErrorIs(t, txn.SetField("operation", "transfer"), errs.ErrInvalidOperation)
		assert.ErrorIs(t, txn.SetField("amount", int64(0)), errs.ErrInvalidAmount)
	})

	t.Run("cast failures are not validation sentinels", func(t *testing.T) {
		txn := &Transaction{}

		err := txn.SetField("id", "xyz")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Contains(t, err.Error(), "id")

		err = txn.SetField("userId", []int{1})
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrInvalidUserID)

		err = txn.SetField("amount", "lots")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
