package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Order names a single column to sort a read by.
type Order struct {
	Field     string
	Direction Direction
}

func Asc(field string) Order {
	return Order{Field: field, Direction: Ascending}
}

func Desc(field string) Order {
	return Order{Field: field, Direction: Descending}
}

func (o Order) String() string {
	return fmt.Sprintf("%s %s", o.Field, o.Direction)
}

type tabler interface {
	TableName() string
}

// Table is the store client for one collection. Each call is a single round
// trip with no retries.
type Table[T any] struct {
	db   *gorm.DB
	name string
}

func NewTable[T any](db *gorm.DB) *Table[T] {
	var zero T
	name := fmt.Sprintf("%T", zero)
	if t, ok := any(zero).(tabler); ok {
		name = t.TableName()
	}
	return &Table[T]{db: db, name: name}
}

// Name returns the collection name.
func (t *Table[T]) Name() string {
	return t.name
}

// GetDB returns the underlying database connection for debugging purposes
func (t *Table[T]) GetDB() *gorm.DB {
	return t.db
}

// ReadAll returns every record of the collection sorted by order.
func (t *Table[T]) ReadAll(ctx context.Context, order Order) ([]T, error) {
	if err := t.checkOrder(order); err != nil {
		return nil, err
	}

	records := make([]T, 0)
	err := t.db.WithContext(ctx).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: order.Field},
			Desc:   order.Direction == Descending,
		}).
		Find(&records).Error
	if err != nil {
		return nil, classify("read", t.name, err)
	}
	return records, nil
}

// InsertOne persists record and fills in the store-assigned fields
// (generated id, default timestamps) from the returned row.
func (t *Table[T]) InsertOne(ctx context.Context, record *T) error {
	if record == nil {
		return errs.NewValidationError(t.name, "record is nil", nil)
	}
	if err := t.db.WithContext(ctx).Create(record).Error; err != nil {
		return classify("insert", t.name, err)
	}
	return nil
}

// checkOrder rejects sort fields that are not columns of T before any SQL is sent.
func (t *Table[T]) checkOrder(order Order) error {
	if order.Field == "" {
		return errs.NewValidationError(t.name, "order field is required", nil)
	}

	stmt := &gorm.Statement{DB: t.db}
	if err := stmt.Parse(new(T)); err != nil {
		return errs.NewSchemaMismatchError("parse schema of", t.name, err)
	}
	field := stmt.Schema.LookUpField(order.Field)
	if field == nil || field.DBName == "" {
		return errs.NewValidationError(t.name, fmt.Sprintf("unknown order field %q", order.Field), nil)
	}
	return nil
}
