package query

import (
	"fmt"
	"strings"

	errs "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
)

// Comparison operators accepted by NewFilter, after upper-casing the
// null-check variants.
var allowedOperators = map[string]bool{
	"=":           true,
	"!=":          true,
	"<>":          true,
	">":           true,
	"<":           true,
	">=":          true,
	"<=":          true,
	"IS NULL":     true,
	"IS NOT NULL": true,
}

// Filter is one validated comparison predicate against a named entity type.
// The zero value is not usable; construct through NewFilter.
type Filter struct {
	entity   schema.EntityType
	field    string
	operator string
	value    any
}

// NewFilter validates the field against the entity's declared fields,
// checks the operator against the allowed comparison set and casts the
// value to the field's semantic type. The operator defaults to "=".
// The IS NULL / IS NOT NULL variants are accepted in either case.
func NewFilter(entity schema.EntityType, field string, value any, operator ...string) (Filter, error) {
	op := "="
	if len(operator) > 0 {
		op = operator[0]
	}
	if upper := strings.ToUpper(op); upper == "IS NULL" || upper == "IS NOT NULL" {
		op = upper
	}

	if !schema.HasField(entity, field) {
		return Filter{}, fmt.Errorf("%w: %s.%s", errs.ErrUnknownField, entity, field)
	}
	if !allowedOperators[op] {
		return Filter{}, fmt.Errorf("%w: %q", errs.ErrInvalidOperator, op)
	}

	cast, err := schema.Cast(entity, field, value)
	if err != nil {
		return Filter{}, err
	}

	return Filter{entity: entity, field: field, operator: op, value: cast}, nil
}

// Entity returns the entity type the filter was built against
func (f Filter) Entity() schema.EntityType {
	return f.entity
}

// Field returns the validated field name
func (f Filter) Field() string {
	return f.field
}

// Operator returns the normalized comparison operator
func (f Filter) Operator() string {
	return f.operator
}

// Value returns the cast value bound by the predicate
func (f Filter) Value() any {
	return f.value
}

// IsNullCheck reports whether the filter uses a null-check operator
func (f Filter) IsNullCheck() bool {
	return f.operator == "IS NULL" || f.operator == "IS NOT NULL"
}

// Fragment returns the predicate as a parameterized SQL fragment with its
// bindings. Null-check operators emit no placeholder and no parameter.
func (f Filter) Fragment() (string, []any) {
	column := schema.Column(f.field)
	if f.IsNullCheck() {
		return fmt.Sprintf("%s %s", column, f.operator), nil
	}
	return fmt.Sprintf("%s %s ?", column, f.operator), []any{f.value}
}
