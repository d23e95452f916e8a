package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/entity"
	errs "github.com/michaelbartlett17/loyalty-ledger/internal/domain/error"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/query"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/schema"
	"gorm.io/gorm"
)

// Config declares how one entity type maps onto a table. When Fillable is
// empty, every declared field is writable.
type Config struct {
	Table      string
	PrimaryKey string
	Fillable   []string
	SoftDelete bool
	Deletable  bool
}

// deletedAtField is the soft-delete marker field on soft-deletable entities
const deletedAtField = "deletedAt"

// Generic maps an entity type to a table and provides find/create/save/
// delete with field-name ↔ column-name translation in both directions.
// Filters and pagination arrive pre-validated against the schema registry;
// the repository only checks they target its own entity type.
type Generic[E entity.Record] struct {
	db         *gorm.DB
	cfg        Config
	entityType schema.EntityType
	factory    func() E
	timer      core.TimeProvider
	logger     core.Logger
	classifier *ErrorClassifier
}

// NewGeneric builds a generic repository for one entity type. The
// configured primary key must be a declared field; anything else is a
// startup-time configuration defect and fails construction.
func NewGeneric[E entity.Record](db *gorm.DB, cfg Config, factory func() E, timer core.TimeProvider, logger core.Logger) (*Generic[E], error) {
	entityType := factory().EntityType()
	if !schema.HasField(entityType, cfg.PrimaryKey) {
		return nil, fmt.Errorf("repository %s: primary key %q is not a field of entity %q",
			cfg.Table, cfg.PrimaryKey, entityType)
	}
	for _, field := range cfg.Fillable {
		if !schema.HasField(entityType, field) {
			return nil, fmt.Errorf("repository %s: fillable field %q is not a field of entity %q",
				cfg.Table, field, entityType)
		}
	}
	return &Generic[E]{
		db:         db,
		cfg:        cfg,
		entityType: entityType,
		factory:    factory,
		timer:      timer,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}, nil
}

// Config returns the repository configuration
func (r *Generic[E]) Config() Config {
	return r.cfg
}

// WithDB returns a copy of the repository bound to another connection,
// typically an open atomic unit
func (r *Generic[E]) WithDB(db *gorm.DB) *Generic[E] {
	clone := *r
	clone.db = db
	return &clone
}

// FindOne returns the first row matching the AND of all filters, hydrated
// into the entity type, restricted to the given fields (all when empty).
// The boolean reports whether a row matched.
func (r *Generic[E]) FindOne(ctx context.Context, fields []string, filters ...query.Filter) (E, bool, error) {
	var zero E

	rows, err := r.fetch(ctx, fields, nil, filters, 1)
	if err != nil {
		return zero, false, err
	}
	if len(rows) == 0 {
		return zero, false, nil
	}

	record, err := r.hydrate(rows[0])
	if err != nil {
		return zero, false, err
	}
	return record, true, nil
}

// FindAll returns every row matching the AND of all filters, respecting
// the pagination's ordering and bounds when supplied. Zero matches yield
// an empty slice.
func (r *Generic[E]) FindAll(ctx context.Context, fields []string, pagination *query.Pagination, filters ...query.Filter) ([]E, error) {
	rows, err := r.fetch(ctx, fields, pagination, filters, 0)
	if err != nil {
		return nil, err
	}

	records := make([]E, 0, len(rows))
	for _, row := range rows {
		record, err := r.hydrate(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Create inserts a row from the fillable fields and assigns the
// storage-generated identifier back onto the entity's primary key
func (r *Generic[E]) Create(ctx context.Context, record E) (E, error) {
	columns, values, err := r.writeSet(record)
	if err != nil {
		return record, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.cfg.Table, strings.Join(columns, ", "), placeholders, schema.Column(r.cfg.PrimaryKey))

	var id int64
	if err := r.db.WithContext(ctx).Raw(stmt, values...).Scan(&id).Error; err != nil {
		return record, r.wrapError("create", err)
	}

	if err := record.SetField(r.cfg.PrimaryKey, id); err != nil {
		return record, fmt.Errorf("%w: assigning generated id: %s", errs.ErrInternalServer, err)
	}
	return record, nil
}

// Save updates the fillable fields by primary key when the key is set and
// the row exists; otherwise it creates the row
func (r *Generic[E]) Save(ctx context.Context, record E) error {
	pk, err := r.primaryKeyValue(record)
	if err != nil {
		return err
	}

	exists := false
	if pk > 0 {
		exists, err = r.exists(ctx, pk)
		if err != nil {
			return err
		}
	}

	if !exists {
		_, err := r.Create(ctx, record)
		return err
	}

	columns, values, err := r.writeSet(record)
	if err != nil {
		return err
	}

	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = column + " = ?"
	}
	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		r.cfg.Table, strings.Join(assignments, ", "), schema.Column(r.cfg.PrimaryKey))

	if err := r.db.WithContext(ctx).Exec(stmt, append(values, pk)...).Error; err != nil {
		return r.wrapError("save", err)
	}
	return nil
}

// Delete removes the rows matching the AND of all filters and returns the
// affected row count. With soft delete enabled the rows are logically
// deleted by setting the deletion marker instead. Calling without filters,
// or on a non-deletable repository, is a precondition error.
func (r *Generic[E]) Delete(ctx context.Context, filters ...query.Filter) (int64, error) {
	if !r.cfg.Deletable {
		return 0, fmt.Errorf("%w: %s", errs.ErrNotDeletable, r.cfg.Table)
	}
	if len(filters) == 0 {
		return 0, errs.ErrMissingFilters
	}

	where, args, err := r.whereClause(filters)
	if err != nil {
		return 0, err
	}

	var stmt string
	if r.cfg.SoftDelete {
		deletedColumn := schema.Column(deletedAtField)
		stmt = fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s AND %s IS NULL",
			r.cfg.Table, deletedColumn, where, deletedColumn)
		args = append([]any{r.timer.Now().Format(schema.TimeLayout)}, args...)
	} else {
		stmt = fmt.Sprintf("DELETE FROM %s WHERE %s", r.cfg.Table, where)
	}

	result := r.db.WithContext(ctx).Exec(stmt, args...)
	if result.Error != nil {
		return 0, r.wrapError("delete", result.Error)
	}
	return result.RowsAffected, nil
}

// fetch runs a select and returns raw rows keyed by column name
func (r *Generic[E]) fetch(ctx context.Context, fields []string, pagination *query.Pagination, filters []query.Filter, limit int) ([]map[string]any, error) {
	columns, err := r.columns(fields)
	if err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Table(r.cfg.Table).Select(columns)

	// Soft-deleted rows stay invisible unless the caller filters on the
	// deletion marker explicitly.
	if r.cfg.SoftDelete && !filtersField(filters, deletedAtField) {
		tx = tx.Where(schema.Column(deletedAtField) + " IS NULL")
	}

	for _, filter := range filters {
		if filter.Entity() != r.entityType {
			return nil, fmt.Errorf("%w: filter on %s applied to %s repository",
				errs.ErrUnknownField, filter.Entity(), r.entityType)
		}
		clause, args := filter.Fragment()
		tx = tx.Where(clause, args...)
	}

	if pagination != nil {
		if pagination.Entity() != r.entityType {
			return nil, fmt.Errorf("%w: pagination on %s applied to %s repository",
				errs.ErrUnknownField, pagination.Entity(), r.entityType)
		}
		order, pageLimit, offset := pagination.Fragment()
		tx = tx.Order(order).Limit(pageLimit).Offset(offset)
	}

	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []map[string]any
	if err := tx.Find(&rows).Error; err != nil {
		return nil, r.wrapError("select", err)
	}
	return rows, nil
}

// hydrate casts a raw row through the registry and assigns it onto a fresh
// entity via its validating setters
func (r *Generic[E]) hydrate(row map[string]any) (E, error) {
	record := r.factory()
	for column, value := range row {
		field := schema.Field(column)
		cast, err := schema.Cast(r.entityType, field, value)
		if err != nil {
			return record, fmt.Errorf("%w: hydrating %s.%s: %s", errs.ErrInternalServer, r.cfg.Table, column, err)
		}
		if err := record.SetField(field, cast); err != nil {
			return record, fmt.Errorf("%w: hydrating %s.%s: %s", errs.ErrInternalServer, r.cfg.Table, column, err)
		}
	}
	return record, nil
}

// columns validates a field projection and translates it to column names;
// an empty projection selects every declared field
func (r *Generic[E]) columns(fields []string) ([]string, error) {
	if len(fields) == 0 {
		fields = schema.Fields(r.entityType)
	}
	columns := make([]string, len(fields))
	for i, field := range fields {
		if !schema.HasField(r.entityType, field) {
			return nil, fmt.Errorf("%w: %s.%s", errs.ErrUnknownField, r.entityType, field)
		}
		columns[i] = schema.Column(field)
	}
	return columns, nil
}

// writeSet collects the writable columns and cast values of an entity,
// excluding the primary key
func (r *Generic[E]) writeSet(record E) ([]string, []any, error) {
	fields := r.cfg.Fillable
	if len(fields) == 0 {
		fields = schema.Fields(r.entityType)
	}

	values := record.Fields()
	var columns []string
	var bound []any
	for _, field := range fields {
		if field == r.cfg.PrimaryKey {
			continue
		}
		cast, err := schema.Cast(r.entityType, field, values[field])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: binding %s.%s: %s", errs.ErrInternalServer, r.cfg.Table, field, err)
		}
		columns = append(columns, schema.Column(field))
		bound = append(bound, cast)
	}
	return columns, bound, nil
}

// whereClause joins filter fragments into one AND-ed predicate
func (r *Generic[E]) whereClause(filters []query.Filter) (string, []any, error) {
	clauses := make([]string, 0, len(filters))
	var args []any
	for _, filter := range filters {
		if filter.Entity() != r.entityType {
			return "", nil, fmt.Errorf("%w: filter on %s applied to %s repository",
				errs.ErrUnknownField, filter.Entity(), r.entityType)
		}
		clause, bound := filter.Fragment()
		clauses = append(clauses, clause)
		args = append(args, bound...)
	}
	return strings.Join(clauses, " AND "), args, nil
}

// primaryKeyValue reads the entity's primary key as an integer id
func (r *Generic[E]) primaryKeyValue(record E) (int64, error) {
	value, ok := record.Fields()[r.cfg.PrimaryKey]
	if !ok {
		return 0, fmt.Errorf("%w: entity %s has no %q value", errs.ErrInternalServer, r.entityType, r.cfg.PrimaryKey)
	}
	id, ok := value.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: primary key %q is not an integer", errs.ErrInternalServer, r.cfg.PrimaryKey)
	}
	return id, nil
}

// exists checks whether a row with the given primary key is present.
// Soft-deleted rows count as absent, matching the read path.
func (r *Generic[E]) exists(ctx context.Context, pk int64) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Table(r.cfg.Table).
		Where(schema.Column(r.cfg.PrimaryKey)+" = ?", pk)
	if r.cfg.SoftDelete {
		tx = tx.Where(schema.Column(deletedAtField) + " IS NULL")
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, r.wrapError("exists", err)
	}
	return count > 0, nil
}

// wrapError classifies storage failures, translating uniqueness violations
// into the duplicate-key sentinel and everything else into a database error
func (r *Generic[E]) wrapError(operation string, err error) error {
	if r.classifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate key on "+r.cfg.Table, map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDuplicateKey, err)
	}
	r.logger.Error("Database error on "+r.cfg.Table, map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	return fmt.Errorf("%w: %s %s: %s", errs.ErrDatabase, operation, r.cfg.Table, err)
}

// filtersField reports whether any filter targets the given field
func filtersField(filters []query.Filter, field string) bool {
	for _, filter := range filters {
		if filter.Field() == field {
			return true
		}
	}
	return false
}
