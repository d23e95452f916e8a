package query

import (
	"fmt"

	errs "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
)

// Direction orders a paginated listing
type Direction string

// Ordering directions
const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// MaxLimit caps how many rows one page may request
const MaxLimit = 1000

// Pagination is a validated ordering + limit/offset for a list query
// against a named entity type. Construct through NewPagination.
type Pagination struct {
	entity    schema.EntityType
	orderBy   string
	limit     int
	offset    int
	direction Direction
}

// NewPagination validates the entity, the order field, the bounds and the
// direction before producing a usable Pagination.
func NewPagination(entity schema.EntityType, orderBy string, limit, offset int, direction Direction) (Pagination, error) {
	if !schema.Known(entity) {
		return Pagination{}, fmt.Errorf("%w: %s", errs.ErrUnknownEntity, entity)
	}
	if !schema.HasField(entity, orderBy) {
		return Pagination{}, fmt.Errorf("%w: %s.%s", errs.ErrUnknownField, entity, orderBy)
	}
	if limit < 1 || limit > MaxLimit {
		return Pagination{}, fmt.Errorf("%w: %d", errs.ErrInvalidLimit, limit)
	}
	if offset < 0 {
		return Pagination{}, fmt.Errorf("%w: %d", errs.ErrInvalidOffset, offset)
	}
	if direction != Ascending && direction != Descending {
		return Pagination{}, fmt.Errorf("%w: %q", errs.ErrInvalidDirection, direction)
	}
	return Pagination{
		entity:    entity,
		orderBy:   orderBy,
		limit:     limit,
		offset:    offset,
		direction: direction,
	}, nil
}

// Entity returns the entity type the pagination was built against
func (p Pagination) Entity() schema.EntityType {
	return p.entity
}

// OrderBy returns the validated order field
func (p Pagination) OrderBy() string {
	return p.orderBy
}

// Limit returns the page size
func (p Pagination) Limit() int {
	return p.limit
}

// Offset returns the number of rows skipped
func (p Pagination) Offset() int {
	return p.offset
}

// Direction returns the ordering direction
func (p Pagination) Direction() Direction {
	return p.direction
}

// Fragment returns the ORDER BY expression and the bound limit/offset
func (p Pagination) Fragment() (string, int, int) {
	return fmt.Sprintf("%s %s", schema.Column(p.orderBy), p.direction), p.limit, p.offset
}
