package repository

import (
	"context"
	"testing"
	"time"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	coremocks "github.com/michaelbartlett17/loyalty-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// statementRecorder captures the SQL gorm builds, so statement shape can be
// asserted without a live database.
type statementRecorder struct {
	statements []string
}

func (r *statementRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }

func (r *statementRecorder) Info(context.Context, string, ...interface{}) {}

func (r *statementRecorder) Warn(context.Context, string, ...interface{}) {}

func (r *statementRecorder) Error(context.Context, string, ...interface{}) {}

func (r *statementRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *statementRecorder) last() string {
	if len(r.statements) == 0 {
		return ""
	}
	return r.statements[len(r.statements)-1]
}

// dryRunDB opens a gorm handle that builds statements without executing them
func dryRunDB(t *testing.T, recorder *statementRecorder) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=ledger dbname=ledger sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               recorder,
	})
	require.NoError(t, err)
	return db
}

func transactionFactory() *entity.Transaction {
	return &entity.Transaction{}
}

func softDeleteConfig() Config {
	return Config{
		Table:      "users",
		PrimaryKey: "id",
		Fillable:   []string{"name", "email", "pointsBalance", "deletedAt"},
		SoftDelete: true,
		Deletable:  true,
	}
}

func TestGenericSoftDeleteReadGuard(t *testing.T) {
	t.Run("reads exclude soft-deleted rows", func(t *testing.T) {
		recorder := &statementRecorder{}
		repo, err := NewGeneric(dryRunDB(t, recorder), softDeleteConfig(),
			userFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})
		require.NoError(t, err)
		filter, err := query.NewFilter(schema.User, "id", 1)
		require.NoError(t, err)

		_, err = repo.FindAll(context.Background(), []string{"id", "email"}, nil, filter)

		require.NoError(t, err)
		assert.Contains(t, recorder.last(), "deleted_at IS NULL")
		assert.Contains(t, recorder.last(), "id = 1")
	})

	t.Run("find one carries the same guard", func(t *testing.T) {
		recorder := &statementRecorder{}
		repo, err := NewGeneric(dryRunDB(t, recorder), softDeleteConfig(),
			userFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})
		require.NoError(t, err)
		filter, err := query.NewFilter(schema.User, "email", "ada@example.com")
		require.NoError(t, err)

		_, found, err := repo.FindOne(context.Background(), []string{"id"}, filter)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Contains(t, recorder.last(), "deleted_at IS NULL")
	})

	t.Run("filtering the deletion marker disables the guard", func(t *testing.T) {
		recorder := &statementRecorder{}
		repo, err := NewGeneric(dryRunDB(t, recorder), softDeleteConfig(),
			userFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})
		require.NoError(t, err)
		filter, err := query.NewFilter(schema.User, "deletedAt", nil, "IS NOT NULL")
		require.NoError(t, err)

		_, err = repo.FindAll(context.Background(), []string{"id", "email"}, nil, filter)

		require.NoError(t, err)
		assert.Contains(t, recorder.last(), "deleted_at IS NOT NULL")
		assert.NotContains(t, recorder.last(), "deleted_at IS NULL")
	})

	t.Run("no guard without soft delete", func(t *testing.T) {
		recorder := &statementRecorder{}
		repo, err := NewGeneric(dryRunDB(t, recorder), Config{
			Table:      "users",
			PrimaryKey: "id",
		}, userFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})
		require.NoError(t, err)

		_, err = repo.FindAll(context.Background(), []string{"id", "email"}, nil)

		require.NoError(t, err)
		assert.NotContains(t, recorder.last(), "deleted_at IS NULL")
	})
}

func TestGenericDeleteStatements(t *testing.T) {
	t.Run("soft delete updates the deletion marker on live rows only", func(t *testing.T) {
		recorder := &statementRecorder{}
		timer := &coremocks.MockTimeProvider{}
		timer.On("Now").Return(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
		repo, err := NewGeneric(dryRunDB(t, recorder), softDeleteConfig(),
			userFactory, timer, coremocks.NoopLogger{})
		require.NoError(t, err)
		filter, err := query.NewFilter(schema.User, "id", 1)
		require.NoError(t, err)

		_, err = repo.Delete(context.Background(), filter)

		require.NoError(t, err)
		stmt := recorder.last()
		assert.Contains(t, stmt, "UPDATE users SET deleted_at =")
		assert.Contains(t, stmt, "2024-06-01 10:00:00")
		assert.Contains(t, stmt, "id = 1")
		assert.Contains(t, stmt, "AND deleted_at IS NULL")
		assert.NotContains(t, stmt, "DELETE FROM")
	})

	t.Run("hard delete removes the rows", func(t *testing.T) {
		recorder := &statementRecorder{}
		repo, err := NewGeneric(dryRunDB(t, recorder), Config{
			Table:      "users",
			PrimaryKey: "id",
			Deletable:  true,
		}, userFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})
		require.NoError(t, err)
		filter, err := query.NewFilter(schema.User, "id", 1)
		require.NoError(t, err)

		_, err = repo.Delete(context.Background(), filter)

		require.NoError(t, err)
		assert.Contains(t, recorder.last(), "DELETE FROM users")
		assert.Contains(t, recorder.last(), "id = 1")
	})
}

func TestGenericExistsIgnoresSoftDeleted(t *testing.T) {
	t.Run("existence check counts live rows only", func(t *testing.T) {
		recorder := &statementRecorder{}
		repo, err := NewGeneric(dryRunDB(t, recorder), softDeleteConfig(),
			userFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})
		require.NoError(t, err)

		_, err = repo.exists(context.Background(), 5)

		require.NoError(t, err)
		assert.Contains(t, recorder.last(), "count")
		assert.Contains(t, recorder.last(), "id = 5")
		assert.Contains(t, recorder.last(), "deleted_at IS NULL")
	})

	t.Run("no marker clause without soft delete", func(t *testing.T) {
		recorder := &statementRecorder{}
		repo, err := NewGeneric(dryRunDB(t, recorder), Config{
			Table:      "transactions",
			PrimaryKey: "id",
		}, transactionFactory, &coremocks.MockTimeProvider{}, coremocks.NoopLogger{})
		require.NoError(t, err)

		_, err = repo.exists(context.Background(), 5)

		require.NoError(t, err)
		assert.Contains(t, recorder.last(), "count")
		assert.NotContains(t, recorder.last(), "deleted_at")
	})
}
