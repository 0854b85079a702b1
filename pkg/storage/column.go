// Package storage implements the in-memory column-oriented storage core:
// tables partitioned into chunks, uncompressed value columns, and the
// dictionary-encoded representation produced by the compression subsystem.
package storage

import (
	"github.com/apopiak/hyrise/pkg/types"
)

// Column is the base interface shared by the uncompressed and compressed
// column representations held by a chunk.
type Column interface {
	// Size returns the number of rows in the column.
	Size() int
	// DataType returns the declared primitive type of the column.
	DataType() types.DataType
	// MemoryUsage returns an estimate of the column's memory footprint in
	// bytes. It feeds the compression-ratio metrics.
	MemoryUsage() int64
}

// appendableColumn is satisfied by mutable columns that accept dynamically
// typed values. Compressed columns are immutable and do not implement it.
type appendableColumn interface {
	AppendVariant(value interface{}) error
}

// dataTypeFor maps a member of the closed ColumnValue set to its type tag.
func dataTypeFor[T types.ColumnValue]() types.DataType {
	var zero T
	switch interface{}(zero).(type) {
	case int32:
		return types.DataTypeInt32
	case int64:
		return types.DataTypeInt64
	case float32:
		return types.DataTypeFloat32
	case float64:
		return types.DataTypeFloat64
	default:
		return types.DataTypeString
	}
}

// valueMemoryUsage estimates the in-memory size of a single value.
func valueMemoryUsage(value interface{}) int64 {
	switch v := value.(type) {
	case int32, float32:
		return 4
	case int64, float64:
		return 8
	case string:
		return int64(len(v)) + 16 // string header overhead
	default:
		return 8
	}
}
