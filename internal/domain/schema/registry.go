package schema

import "strings"

// EntityType identifies a domain entity in the field registry
type EntityType string

// Known entity types
const (
	User        EntityType = "user"
	Transaction EntityType = "transaction"
)

// FieldType is the semantic type of an entity field
type FieldType int

const (
	// FieldInt for integer fields
	FieldInt FieldType = iota
	// FieldFloat for floating point fields
	FieldFloat
	// FieldBool for boolean fields
	FieldBool
	// FieldString for string fields
	FieldString
	// FieldTime for date/time fields
	FieldTime
	// FieldOperation for the ledger operation enum
	FieldOperation
)

// Operation is the ledger operation enum
type Operation string

// Ledger operations
const (
	OperationEarn   Operation = "earn"
	OperationRedeem Operation = "redeem"
)

// IsValidOperation reports whether op is one of the allowed ledger operations
func IsValidOperation(op Operation) bool {
	return op == OperationEarn || op == OperationRedeem
}

// descriptor declares the fields of one entity type in a stable order
type descriptor struct {
	fields []string
	types  map[string]FieldType
}

// registry is the static per-entity field-type registry. It replaces the
// runtime property introspection the repository layer would otherwise need:
// filter/pagination validation, value casting and column translation all
// consult this table instead of reflecting over entity structs.
var registry = map[EntityType]descriptor{
	User: {
		fields: []string{"id", "name", "email", "pointsBalance", "deletedAt"},
		types: map[string]FieldType{
			"id":            FieldInt,
			"name":          FieldString,
			"email":         FieldString,
			"pointsBalance": FieldInt,
			"deletedAt":     FieldTime,
		},
	},
	Transaction: {
		fields: []string{"id", "userId", "operation", "amount", "description"},
		types: map[string]FieldType{
			"id":          FieldInt,
			"userId":      FieldInt,
			"operation":   FieldOperation,
			"amount":      FieldInt,
			"description": FieldString,
		},
	},
}

// Known reports whether the entity type is declared in the registry
func Known(entity EntityType) bool {
	_, ok := registry[entity]
	return ok
}

// HasField reports whether field is declared on the entity type
func HasField(entity EntityType, field string) bool {
	desc, ok := registry[entity]
	if !ok {
		return false
	}
	_, ok = desc.types[field]
	return ok
}

// FieldTypeOf returns the declared semantic type of an entity field
func FieldTypeOf(entity EntityType, field string) (FieldType, bool) {
	desc, ok := registry[entity]
	if !ok {
		return 0, false
	}
	ft, ok := desc.types[field]
	return ft, ok
}

// Fields returns the declared fields of an entity type in declaration order
func Fields(entity EntityType) []string {
	desc, ok := registry[entity]
	if !ok {
		return nil
	}
	out := make([]string, len(desc.fields))
	copy(out, desc.fields)
	return out
}

// Column translates a camel-case field name to its snake-case column name.
// The translation is deterministic and the inverse of Field,
// e.g. "pointsBalance" -> "points_balance".
func Column(field string) string {
	var b strings.Builder
	b.Grow(len(field) + 2)
	for _, r := range field {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(byte(r - 'A' + 'a'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Field translates a snake-case column name back to its camel-case field
// name, e.g. "points_balance" -> "pointsBalance".
func Field(column string) string {
	var b strings.Builder
	b.Grow(len(column))
	upper := false
	for _, r := range column {
		if r == '_' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			b.WriteByte(byte(r - 'a' + 'A'))
			upper = false
			continue
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}
