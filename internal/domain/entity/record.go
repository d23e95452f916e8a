package entity

import "github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"

// Record is implemented by entities the generic repository can persist and
// hydrate. Field access goes through an explicit name-based contract backed
// by the schema registry, so the repository never reflects over structs and
// every write still passes through the entity's validated setters.
type Record interface {
	// EntityType returns the registry tag of the entity
	EntityType() schema.EntityType

	// Fields returns the current field values keyed by declared field name
	Fields() map[string]any

	// SetField assigns a single field through its validating setter.
	// Unknown fields are ignored so projections with computed columns
	// hydrate without error.
	SetField(name string, value any) error
}
