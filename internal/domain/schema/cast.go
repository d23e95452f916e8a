package schema

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// TimeLayout is the canonical date/time format used for bound parameters
// and hydrated time fields.
const TimeLayout = "2006-01-02 15:04:05"

// Cast converts a raw value into the declared semantic type of an entity
// field, for safe binding into persistence calls and for hydrating rows
// back into entities.
//
// Unknown fields pass through unchanged so computed or ad-hoc columns do
// not error. Nil values pass through unchanged. An Operation value is
// reduced to its underlying scalar.
func Cast(entity EntityType, field string, value any) (any, error) {
	ft, ok := FieldTypeOf(entity, field)
	if !ok {
		return value, nil
	}
	if value == nil {
		return nil, nil
	}

	if op, ok := value.(Operation); ok {
		return string(op), nil
	}

	switch ft {
	case FieldInt:
		v, err := cast.ToInt64E(value)
		if err != nil {
			return nil, castError(entity, field, "integer", value)
		}
		return v, nil
	case FieldFloat:
		v, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, castError(entity, field, "float", value)
		}
		return v, nil
	case FieldBool:
		v, err := cast.ToBoolE(value)
		if err != nil {
			return nil, castError(entity, field, "boolean", value)
		}
		return v, nil
	case FieldString, FieldOperation:
		v, err := cast.ToStringE(value)
		if err != nil {
			return nil, castError(entity, field, "string", value)
		}
		return v, nil
	case FieldTime:
		return castTime(entity, field, value)
	default:
		return value, nil
	}
}

// castTime normalizes date/time values to the canonical layout
func castTime(entity EntityType, field string, value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v.Format(TimeLayout), nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return v.Format(TimeLayout), nil
	case string:
		t, err := time.Parse(TimeLayout, v)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %s.%s value %q as %q: %w",
				entity, field, v, TimeLayout, err)
		}
		return t.Format(TimeLayout), nil
	default:
		return nil, castError(entity, field, "date", value)
	}
}

func castError(entity EntityType, field, kind string, value any) error {
	return fmt.Errorf("cannot cast %s.%s value %v (%T) to %s", entity, field, value, value, kind)
}
