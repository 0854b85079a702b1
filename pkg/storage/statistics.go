package storage

import (
	"github.com/apopiak/hyrise/pkg/types"
)

// ColumnStatistics exposes the min/max of a compressed column, taken from
// the ordered extremes of its dictionary. Query planning and chunk pruning
// read these; they are immutable once produced.
type ColumnStatistics interface {
	DataType() types.DataType
	Min() interface{}
	Max() interface{}
}

// ColumnStatisticsOf is the typed statistics record for one column.
type ColumnStatisticsOf[T types.ColumnValue] struct {
	min T
	max T
}

// NewColumnStatistics creates a statistics record from a column's extreme
// values.
func NewColumnStatistics[T types.ColumnValue](min, max T) *ColumnStatisticsOf[T] {
	return &ColumnStatisticsOf[T]{min: min, max: max}
}

func (s *ColumnStatisticsOf[T]) DataType() types.DataType { return dataTypeFor[T]() }

func (s *ColumnStatisticsOf[T]) Min() interface{} { return s.min }

func (s *ColumnStatisticsOf[T]) Max() interface{} { return s.max }

// MinValue returns the typed minimum.
func (s *ColumnStatisticsOf[T]) MinValue() T { return s.min }

// MaxValue returns the typed maximum.
func (s *ColumnStatisticsOf[T]) MaxValue() T { return s.max }

// ChunkStatistics aggregates the per-column statistics of one chunk in
// column-index order. An entry is nil when the column's dictionary is
// empty, i.e. the column is all-null.
type ChunkStatistics struct {
	columns []ColumnStatistics
}

// NewChunkStatistics creates the per-chunk aggregate.
func NewChunkStatistics(columns []ColumnStatistics) *ChunkStatistics {
	return &ChunkStatistics{columns: columns}
}

// ColumnCount returns the number of column entries.
func (s *ChunkStatistics) ColumnCount() int { return len(s.columns) }

// Column returns the statistics of one column, nil for all-null columns.
func (s *ChunkStatistics) Column(id types.ColumnID) ColumnStatistics {
	return s.columns[id]
}
