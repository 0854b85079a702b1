// Package types defines the primitive type system shared by the storage
// containers and the dictionary compression subsystem: the closed set of
// column data types, the identifier newtypes used to index chunks, columns
// and dictionary entries, and the generic constraint that ties the two
// together.
package types

import (
	"math"

	"github.com/apopiak/hyrise/pkg/errors"
)

// DataType identifies one of the primitive value types a column can hold.
// The set is closed: compression dispatch, statistics and the dynamic
// append path all switch exhaustively over it.
type DataType int

const (
	DataTypeInt32 DataType = iota
	DataTypeInt64
	DataTypeFloat32
	DataTypeFloat64
	DataTypeString
)

// String returns the SQL-facing name of the data type.
func (d DataType) String() string {
	switch d {
	case DataTypeInt32:
		return "int"
	case DataTypeInt64:
		return "long"
	case DataTypeFloat32:
		return "float"
	case DataTypeFloat64:
		return "double"
	case DataTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// ParseDataType converts a type name (as used in configs and the CLI)
// into a DataType.
func ParseDataType(name string) (DataType, error) {
	switch name {
	case "int":
		return DataTypeInt32, nil
	case "long":
		return DataTypeInt64, nil
	case "float":
		return DataTypeFloat32, nil
	case "double":
		return DataTypeFloat64, nil
	case "string":
		return DataTypeString, nil
	default:
		return 0, errors.New(errors.ErrorTypeValidation, "unknown data type").
			WithDetail("name", name)
	}
}

// ColumnValue is the closed union of Go types backing the DataType
// enumeration. Generic storage and compression code is instantiated once
// per member of this set.
type ColumnValue interface {
	~int32 | ~int64 | ~float32 | ~float64 | ~string
}

// ValueID is an index into a dictionary. The maximum value of the
// attribute vector's current width is reserved as the null sentinel and is
// never a valid dictionary position.
type ValueID uint32

// InvalidValueID marks a value id that does not reference any dictionary
// entry, independent of attribute vector width.
const InvalidValueID ValueID = math.MaxUint32

// ChunkID identifies a chunk within a table.
type ChunkID uint32

// ColumnID identifies a column within a table or chunk.
type ColumnID uint16

// CommitID orders committed transactions for visibility checks.
type CommitID uint32

// MaxCommitID marks a row version without a commit timestamp yet.
const MaxCommitID CommitID = math.MaxUint32

// TransactionID identifies the transaction holding a row.
type TransactionID uint64
