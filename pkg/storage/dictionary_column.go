package storage

import (
	"github.com/apopiak/hyrise/pkg/types"
)

// DictionaryColumn is the compressed column representation: an immutable
// pairing of a dictionary and an attribute vector sized to the original
// column's row count. It exclusively owns both.
type DictionaryColumn[T types.ColumnValue] struct {
	dictionary      *Dictionary[T]
	attributeVector AttributeVector
}

// NewDictionaryColumn pairs a dictionary with its attribute vector.
func NewDictionaryColumn[T types.ColumnValue](dictionary *Dictionary[T], attributeVector AttributeVector) *DictionaryColumn[T] {
	return &DictionaryColumn[T]{
		dictionary:      dictionary,
		attributeVector: attributeVector,
	}
}

// DataType returns the column's declared data type.
func (c *DictionaryColumn[T]) DataType() types.DataType { return dataTypeFor[T]() }

// Size returns the number of rows.
func (c *DictionaryColumn[T]) Size() int { return c.attributeVector.Size() }

// Value decodes the value at row i. The second return is false when the
// row is null.
func (c *DictionaryColumn[T]) Value(i int) (T, bool) {
	id := c.attributeVector.Get(i)
	if id == c.attributeVector.NullValueID() {
		var zero T
		return zero, false
	}
	return c.dictionary.ValueByID(id), true
}

// IsNullAt reports whether row i is null.
func (c *DictionaryColumn[T]) IsNullAt(i int) bool {
	return c.attributeVector.Get(i) == c.attributeVector.NullValueID()
}

// ValueByValueID returns the dictionary value for a value id.
func (c *DictionaryColumn[T]) ValueByValueID(id types.ValueID) T {
	return c.dictionary.ValueByID(id)
}

// AttributeVectorValue returns the raw value id stored at row i.
func (c *DictionaryColumn[T]) AttributeVectorValue(i int) types.ValueID {
	return c.attributeVector.Get(i)
}

// LowerBound returns the id of the first dictionary value >= value, or
// InvalidValueID when none exists. Scan operators use it for range
// predicates.
func (c *DictionaryColumn[T]) LowerBound(value T) types.ValueID {
	return c.dictionary.LowerBound(value)
}

// UpperBound returns the id of the first dictionary value > value, or
// InvalidValueID when none exists.
func (c *DictionaryColumn[T]) UpperBound(value T) types.ValueID {
	return c.dictionary.UpperBound(value)
}

// UniqueValuesCount returns the dictionary's cardinality.
func (c *DictionaryColumn[T]) UniqueValuesCount() int { return c.dictionary.Size() }

// Dictionary exposes the backing dictionary. Callers must not modify it.
func (c *DictionaryColumn[T]) Dictionary() *Dictionary[T] { return c.dictionary }

// AttributeVector exposes the backing attribute vector. Callers must not
// modify it.
func (c *DictionaryColumn[T]) AttributeVector() AttributeVector { return c.attributeVector }

// MemoryUsage returns the estimated memory footprint in bytes.
func (c *DictionaryColumn[T]) MemoryUsage() int64 {
	return c.dictionary.MemoryUsage() + c.attributeVector.MemoryUsage()
}
