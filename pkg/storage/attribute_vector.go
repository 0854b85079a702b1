package storage

import (
	"math"

	"github.com/apopiak/hyrise/pkg/types"
)

// AttributeVector is the per-row index array backing a dictionary-encoded
// column. Each slot holds either a valid ValueID into the sibling
// dictionary or the width-specific null sentinel.
type AttributeVector interface {
	// Get returns the value id stored at row i, widened to ValueID.
	Get(i int) types.ValueID
	// Set stores a value id at row i.
	Set(i int, id types.ValueID)
	// Size returns the number of rows.
	Size() int
	// Width returns the per-entry width in bytes.
	Width() int
	// NullValueID returns the sentinel denoting a null row: the maximum
	// representable value of the vector's width. It is never a valid
	// dictionary index.
	NullValueID() types.ValueID
	// MemoryUsage returns the vector's footprint in bytes.
	MemoryUsage() int64
}

// fittedUint is the closed set of index widths a fitted vector can use.
type fittedUint interface {
	~uint8 | ~uint16 | ~uint32
}

// FittedAttributeVector stores value ids at the smallest integer width
// able to represent the dictionary's cardinality plus the null sentinel.
// The width is chosen once from the final dictionary and never changes; a
// recompression builds a new vector instead of widening.
type FittedAttributeVector[U fittedUint] struct {
	ids []U
}

func (v *FittedAttributeVector[U]) Get(i int) types.ValueID { return types.ValueID(v.ids[i]) }

func (v *FittedAttributeVector[U]) Set(i int, id types.ValueID) { v.ids[i] = U(id) }

func (v *FittedAttributeVector[U]) Size() int { return len(v.ids) }

func (v *FittedAttributeVector[U]) Width() int {
	var zero U
	switch interface{}(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		return 4
	}
}

func (v *FittedAttributeVector[U]) NullValueID() types.ValueID {
	return types.ValueID(^U(0))
}

func (v *FittedAttributeVector[U]) MemoryUsage() int64 {
	return int64(len(v.ids) * v.Width())
}

// NewFittedAttributeVector allocates a vector of size entries whose width
// is the smallest of 8, 16 or 32 bits that can hold uniqueValues distinct
// ids. Callers pass the dictionary's cardinality plus one: the sentinel
// occupies the top value of the chosen width regardless of nullability, so
// the headroom is mandatory even for non-nullable columns.
func NewFittedAttributeVector(uniqueValues, size int) AttributeVector {
	switch {
	case uniqueValues <= math.MaxUint8:
		return &FittedAttributeVector[uint8]{ids: make([]uint8, size)}
	case uniqueValues <= math.MaxUint16:
		return &FittedAttributeVector[uint16]{ids: make([]uint16, size)}
	default:
		return &FittedAttributeVector[uint32]{ids: make([]uint32, size)}
	}
}

// RawAttributeVector stores value ids at full ValueID width with append
// semantics. It performs no index compression and serves callers that need
// direct append and random access, such as intermediate representations
// built row by row.
type RawAttributeVector struct {
	ids []types.ValueID
}

// NewRawAttributeVector creates an empty raw vector.
func NewRawAttributeVector() *RawAttributeVector {
	return &RawAttributeVector{}
}

// Append adds a value id at the end of the vector.
func (v *RawAttributeVector) Append(id types.ValueID) {
	v.ids = append(v.ids, id)
}

func (v *RawAttributeVector) Get(i int) types.ValueID { return v.ids[i] }

func (v *RawAttributeVector) Set(i int, id types.ValueID) { v.ids[i] = id }

func (v *RawAttributeVector) Size() int { return len(v.ids) }

func (v *RawAttributeVector) Width() int { return 4 }

func (v *RawAttributeVector) NullValueID() types.ValueID { return types.InvalidValueID }

func (v *RawAttributeVector) MemoryUsage() int64 { return int64(len(v.ids) * 4) }
