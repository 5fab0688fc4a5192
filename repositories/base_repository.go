// Package repositories is the data-access layer. Every entity table is
// reached through the same generic Repository so services never touch
// *gorm.DB directly.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidColumn = errors.New("column not allowed")
)

type Op string

const (
	OpEq  Op = "="
	OpGte Op = ">="
	OpLte Op = "<="
	OpGt  Op = ">"
	OpLt  Op = "<"
	OpIn  Op = "IN"
)

// Filter is a single column predicate.
type Filter struct {
	Column string
	Op     Op
	Value  interface{}
}

func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}
func Gte(column string, value interface{}) Filter {
	return Filter{Column: column, Op: OpGte, Value: value}
}
func Lte(column string, value interface{}) Filter {
	return Filter{Column: column, Op: OpLte, Value: value}
}
func In(column string, values interface{}) Filter {
	return Filter{Column: column, Op: OpIn, Value: values}
}

// Between is an inclusive range on column.
func Between(column string, from, to interface{}) []Filter {
	return []Filter{Gte(column, from), Lte(column, to)}
}

// Order sorts by one column.
type Order struct {
	Column string
	Desc   bool
}

type Query struct {
	Select  []string
	Filters []Filter
	Order   []Order
	Limit   int
}

// Repository is the table-level CRUD surface shared by every entity kind.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	Find(ctx context.Context, q Query) ([]T, error)
	First(ctx context.Context, q Query) (*T, error)
	Save(ctx context.Context, entity *T) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type GormRepository[T any] struct {
	db      *gorm.DB
	columns map[string]bool
}

// NewGormRepository builds a repository that only accepts the listed
// columns in filters, ordering, selects and field updates.
func NewGormRepository[T any](db *gorm.DB, columns ...string) *GormRepository[T] {
	allowed := make(map[string]bool, len(columns)+1)
	allowed["id"] = true
	for _, c := range columns {
		allowed[c] = true
	}
	return &GormRepository[T]{db: db, columns: allowed}
}

func (r *GormRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *GormRepository[T]) checkColumn(c string) error {
	if !r.columns[c] {
		return fmt.Errorf("%w: %q", ErrInvalidColumn, c)
	}
	return nil
}

func (r *GormRepository[T]) scope(ctx context.Context, q Query) (*gorm.DB, error) {
	tx := r.getDB(ctx).Model(new(T))

	if len(q.Select) > 0 {
		for _, c := range q.Select {
			if err := r.checkColumn(c); err != nil {
				return nil, err
			}
		}
		tx = tx.Select(q.Select)
	}

	for _, f := range q.Filters {
		if err := r.checkColumn(f.Column); err != nil {
			return nil, err
		}
		switch f.Op {
		case OpEq, OpGte, OpLte, OpGt, OpLt:
			tx = tx.Where(fmt.Sprintf("%s %s ?", f.Column, f.Op), f.Value)
		case OpIn:
			tx = tx.Where(fmt.Sprintf("%s IN ?", f.Column), f.Value)
		default:
			return nil, fmt.Errorf("unsupported operator %q", f.Op)
		}
	}

	for _, o := range q.Order {
		if err := r.checkColumn(o.Column); err != nil {
			return nil, err
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		tx = tx.Order(o.Column + " " + dir)
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	return tx, nil
}

func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Create(entity).Error
}

func (r *GormRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.getDB(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *GormRepository[T]) Find(ctx context.Context, q Query) ([]T, error) {
	tx, err := r.scope(ctx, q)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository[T]) First(ctx context.Context, q Query) (*T, error) {
	q.Limit = 1
	rows, err := r.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// Save writes every column of an existing row.
func (r *GormRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Save(entity).Error
}

func (r *GormRepository[T]) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	for c := range fields {
		if err := r.checkColumn(c); err != nil {
			return err
		}
	}
	// RowsAffected is not checked: MySQL reports 0 when values are unchanged.
	return r.getDB(ctx).Model(new(T)).Where("id = ?", id).Updates(fields).Error
}

func (r *GormRepository[T]) Delete(ctx context.Context, id string) error {
	res := r.getDB(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.getDB(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
