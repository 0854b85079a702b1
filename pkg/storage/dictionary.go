package storage

import (
	"fmt"
	"slices"

	"github.com/apopiak/hyrise/pkg/types"
)

// Dictionary is the sorted, de-duplicated sequence of a column's non-null
// values. It is built once during compression and immutable afterwards;
// value-id resolution and the lower/upper-bound scans of downstream
// operators rely on its sortedness.
type Dictionary[T types.ColumnValue] struct {
	values []T
}

// NewDictionary builds a dictionary from a column's full value sequence
// and, for nullable columns, its parallel null-indicator sequence. Null
// rows are swapped to the tail of a working copy in a single reverse scan
// and truncated away, the remainder is sorted and de-duplicated in one
// linear pass, and excess capacity is released.
func NewDictionary[T types.ColumnValue](values []T, nulls []bool) *Dictionary[T] {
	working := make([]T, len(values))
	copy(working, values)

	if nulls != nil {
		// Scanning from the back keeps the relative order of the non-null
		// entries ahead of the partition point.
		eraseFrom := len(working)
		for i := len(working) - 1; i >= 0; i-- {
			if nulls[i] {
				eraseFrom--
				working[i], working[eraseFrom] = working[eraseFrom], working[i]
			}
		}
		working = working[:eraseFrom]
	}

	slices.Sort(working)
	working = slices.Compact(working)

	return &Dictionary[T]{values: slices.Clip(working)}
}

// Size returns the number of distinct values.
func (d *Dictionary[T]) Size() int { return len(d.values) }

// ValueByID returns the value stored at the given dictionary position.
func (d *Dictionary[T]) ValueByID(id types.ValueID) T { return d.values[id] }

// IndexOf resolves a value to its ValueID by binary search. Every value
// the compressor resolves originates from the sequence the dictionary was
// built from, so a miss is a programming error, not a data condition.
func (d *Dictionary[T]) IndexOf(value T) types.ValueID {
	idx, found := slices.BinarySearch(d.values, value)
	if !found {
		panic(fmt.Sprintf("storage: value %v not present in dictionary", value))
	}
	return types.ValueID(idx)
}

// LowerBound returns the id of the first dictionary value >= value, or
// InvalidValueID when no such value exists.
func (d *Dictionary[T]) LowerBound(value T) types.ValueID {
	idx, _ := slices.BinarySearch(d.values, value)
	if idx >= len(d.values) {
		return types.InvalidValueID
	}
	return types.ValueID(idx)
}

// UpperBound returns the id of the first dictionary value > value, or
// InvalidValueID when no such value exists.
func (d *Dictionary[T]) UpperBound(value T) types.ValueID {
	idx, found := slices.BinarySearch(d.values, value)
	if found {
		idx++
	}
	if idx >= len(d.values) {
		return types.InvalidValueID
	}
	return types.ValueID(idx)
}

// Min returns the smallest value. The dictionary must not be empty.
func (d *Dictionary[T]) Min() T { return d.values[0] }

// Max returns the largest value. The dictionary must not be empty.
func (d *Dictionary[T]) Max() T { return d.values[len(d.values)-1] }

// Values exposes the sorted value sequence. Callers must not modify it.
func (d *Dictionary[T]) Values() []T { return d.values }

// MemoryUsage returns the estimated memory footprint in bytes.
func (d *Dictionary[T]) MemoryUsage() int64 {
	var total int64
	for _, v := range d.values {
		total += valueMemoryUsage(v)
	}
	return total
}
