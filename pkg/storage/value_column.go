package storage

import (
	"github.com/apopiak/hyrise/pkg/errors"
	"github.com/apopiak/hyrise/pkg/types"
)

// ValueColumn is the uncompressed column representation: a plain value
// sequence with an optional parallel null-indicator sequence of equal
// length. It is the input representation the dictionary compressor
// consumes.
type ValueColumn[T types.ColumnValue] struct {
	values []T
	// nulls is nil when the column is not nullable; otherwise nulls[i]
	// marks row i as SQL NULL and values[i] holds the zero value.
	nulls []bool
}

// NewValueColumn creates an empty value column. When nullable is true the
// column tracks a null indicator per row.
func NewValueColumn[T types.ColumnValue](nullable bool) *ValueColumn[T] {
	c := &ValueColumn[T]{
		values: make([]T, 0, 1024),
	}
	if nullable {
		c.nulls = make([]bool, 0, 1024)
	}
	return c
}

// DataType returns the column's declared data type.
func (c *ValueColumn[T]) DataType() types.DataType { return dataTypeFor[T]() }

// Size returns the number of rows.
func (c *ValueColumn[T]) Size() int { return len(c.values) }

// Nullable reports whether the column carries a null-indicator sequence.
func (c *ValueColumn[T]) Nullable() bool { return c.nulls != nil }

// Append adds a non-null value to the column.
func (c *ValueColumn[T]) Append(value T) {
	c.values = append(c.values, value)
	if c.nulls != nil {
		c.nulls = append(c.nulls, false)
	}
}

// AppendNull adds a null row to the column. The backing value slot holds
// the zero value so both sequences keep equal length.
func (c *ValueColumn[T]) AppendNull() error {
	if c.nulls == nil {
		return errors.New(errors.ErrorTypeValidation, "cannot append null to non-nullable column").
			WithDetail("data_type", c.DataType().String())
	}
	var zero T
	c.values = append(c.values, zero)
	c.nulls = append(c.nulls, true)
	return nil
}

// AppendVariant adds a dynamically typed value to the column. A nil value
// is treated as SQL NULL. The value must be convertible to the column's
// type; a mismatch is a validation error.
func (c *ValueColumn[T]) AppendVariant(value interface{}) error {
	if value == nil {
		return c.AppendNull()
	}
	v, err := variantToValue[T](value)
	if err != nil {
		return err
	}
	c.Append(v)
	return nil
}

// Value returns the value at row i together with a flag that is false when
// the row is null.
func (c *ValueColumn[T]) Value(i int) (T, bool) {
	if c.nulls != nil && c.nulls[i] {
		var zero T
		return zero, false
	}
	return c.values[i], true
}

// IsNullAt reports whether row i is null.
func (c *ValueColumn[T]) IsNullAt(i int) bool {
	return c.nulls != nil && c.nulls[i]
}

// Values exposes the backing value sequence. Callers must not modify it.
func (c *ValueColumn[T]) Values() []T { return c.values }

// NullValues exposes the backing null-indicator sequence, nil for
// non-nullable columns. Callers must not modify it.
func (c *ValueColumn[T]) NullValues() []bool { return c.nulls }

// MemoryUsage returns the estimated memory footprint in bytes.
func (c *ValueColumn[T]) MemoryUsage() int64 {
	var total int64
	for _, v := range c.values {
		total += valueMemoryUsage(v)
	}
	total += int64(len(c.nulls))
	return total
}

// variantToValue converts a dynamically typed value into the column value
// type T, accepting the conversions the dynamic append path needs.
func variantToValue[T types.ColumnValue](value interface{}) (T, error) {
	var zero T
	ok := true
	switch p := interface{}(&zero).(type) {
	case *int32:
		switch v := value.(type) {
		case int32:
			*p = v
		case int:
			*p = int32(v)
		case int64:
			*p = int32(v)
		default:
			ok = false
		}
	case *int64:
		switch v := value.(type) {
		case int64:
			*p = v
		case int:
			*p = int64(v)
		case int32:
			*p = int64(v)
		default:
			ok = false
		}
	case *float32:
		switch v := value.(type) {
		case float32:
			*p = v
		case float64:
			*p = float32(v)
		default:
			ok = false
		}
	case *float64:
		switch v := value.(type) {
		case float64:
			*p = v
		case float32:
			*p = float64(v)
		default:
			ok = false
		}
	case *string:
		v, isString := value.(string)
		if isString {
			*p = v
		} else {
			ok = false
		}
	default:
		ok = false
	}
	if !ok {
		return zero, errors.New(errors.ErrorTypeValidation, "value type does not match column type").
			WithDetail("column_type", dataTypeFor[T]().String()).
			WithDetail("value", value)
	}
	return zero, nil
}
