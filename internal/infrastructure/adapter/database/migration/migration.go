package migration

import (
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// Manager applies the fixed schema contract in order. Each step is
// recorded in schema_migrations so reruns are no-ops.
type Manager struct {
	db     *gorm.DB
	logger core.Logger
}

// step is one named, idempotent DDL statement batch
type step struct {
	name       string
	statements []string
}

// Soft deletion uses the timestamp-marker variant: email uniqueness among
// active users is enforced by a composite unique index over email and a
// coalesced deletion marker, so a deleted user's email can be reused while
// two active users can never share one.
var steps = []step{
	{
		name: "001_create_users",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id BIGSERIAL PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				email VARCHAR(255) NOT NULL,
				points_balance BIGINT NOT NULL DEFAULT 0 CHECK (points_balance >= 0),
				deleted_at TIMESTAMP NULL
			)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_active_email
				ON users (email, COALESCE(deleted_at, '1970-01-01 00:00:00'))`,
		},
	},
	{
		name: "002_create_transactions",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS transactions (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
				operation VARCHAR(16) NOT NULL CHECK (operation IN ('earn', 'redeem')),
				amount BIGINT NOT NULL CHECK (amount >= 1),
				description VARCHAR(255) NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions (user_id)`,
		},
	},
}

// NewManager creates a migration manager
func NewManager(db *gorm.DB, logger core.Logger) *Manager {
	return &Manager{db: db, logger: logger}
}

// MigrateAll applies every pending migration step
func (m *Manager) MigrateAll() error {
	if err := m.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		name VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`).Error; err != nil {
		m.logger.Error("Failed to create schema_migrations table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	for _, s := range steps {
		applied, err := m.isApplied(s.name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{"name": s.name})
		if err := m.apply(s); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"name":  s.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Database schema up to date", map[string]any{
		"migrations": len(steps),
	})
	return nil
}

// isApplied checks the migration ledger for a step
func (m *Manager) isApplied(name string) (bool, error) {
	var count int64
	err := m.db.Table("schema_migrations").Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// apply runs one step and records it, atomically
func (m *Manager) apply(s step) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range s.statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return tx.Exec("INSERT INTO schema_migrations (name) VALUES (?)", s.name).Error
	})
}
