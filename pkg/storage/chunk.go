package storage

import (
	"fmt"

	"github.com/apopiak/hyrise/pkg/errors"
	"github.com/apopiak/hyrise/pkg/types"
)

// Chunk is a horizontal partition of a table's rows, holding one column
// object per table column. It exclusively owns its columns; compression
// replaces an uncompressed column in place and nothing retains a reference
// to the old one afterwards.
type Chunk struct {
	columns    []Column
	mvcc       *MvccColumns
	statistics *ChunkStatistics
}

// NewChunk creates an empty chunk without a transaction side-table.
func NewChunk() *Chunk {
	return &Chunk{}
}

// NewChunkWithMvcc creates an empty chunk carrying MVCC columns.
func NewChunkWithMvcc() *Chunk {
	return &Chunk{mvcc: NewMvccColumns()}
}

// AddColumn appends a column object to the chunk.
func (c *Chunk) AddColumn(column Column) {
	c.columns = append(c.columns, column)
}

// ReplaceColumn swaps the column at the given position for a new one,
// typically its compressed form.
func (c *Chunk) ReplaceColumn(id types.ColumnID, column Column) {
	c.columns[id] = column
}

// Column returns the column at the given position.
func (c *Chunk) Column(id types.ColumnID) Column {
	return c.columns[id]
}

// ColumnCount returns the number of columns.
func (c *Chunk) ColumnCount() int { return len(c.columns) }

// Size returns the chunk's row count.
func (c *Chunk) Size() int {
	if len(c.columns) == 0 {
		return 0
	}
	return c.columns[0].Size()
}

// Append adds one row of dynamically typed values, one per column. All
// columns must still be mutable.
func (c *Chunk) Append(row []interface{}) error {
	if len(row) != len(c.columns) {
		return errors.New(errors.ErrorTypeValidation, "row arity does not match chunk column count").
			WithDetail("row_len", len(row)).
			WithDetail("column_count", len(c.columns))
	}
	for i, value := range row {
		column, ok := c.columns[i].(appendableColumn)
		if !ok {
			return errors.New(errors.ErrorTypeValidation, "cannot append to compressed column").
				WithDetail("column_id", i)
		}
		if err := column.AppendVariant(value); err != nil {
			return errors.Wrap(err, errors.ErrorTypeData, fmt.Sprintf("appending to column %d", i))
		}
	}
	if c.mvcc != nil {
		c.mvcc.Grow(1)
	}
	return nil
}

// HasMvccColumns reports whether the chunk carries a transaction
// side-table.
func (c *Chunk) HasMvccColumns() bool { return c.mvcc != nil }

// MvccColumns returns the transaction side-table, nil if absent.
func (c *Chunk) MvccColumns() *MvccColumns { return c.mvcc }

// ShrinkMvccColumns releases the side-table's append headroom. Called once
// the chunk's row count is final, after all columns were compressed.
func (c *Chunk) ShrinkMvccColumns() {
	if c.mvcc != nil {
		c.mvcc.Shrink()
	}
}

// SetStatistics attaches the chunk statistics produced by compression.
// The record is treated as immutable from here on and may be read without
// synchronization.
func (c *Chunk) SetStatistics(statistics *ChunkStatistics) {
	c.statistics = statistics
}

// Statistics returns the attached chunk statistics, nil before
// compression.
func (c *Chunk) Statistics() *ChunkStatistics { return c.statistics }

// MemoryUsage returns the estimated footprint of all columns in bytes.
func (c *Chunk) MemoryUsage() int64 {
	var total int64
	for _, column := range c.columns {
		total += column.MemoryUsage()
	}
	return total
}
