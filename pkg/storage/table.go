package storage

import (
	"github.com/apopiak/hyrise/pkg/errors"
	"github.com/apopiak/hyrise/pkg/types"
)

// Table is a collection of chunks sharing one column layout. Rows are
// appended to the last chunk; a full chunk is sealed by starting a new one.
type Table struct {
	columnNames    []string
	columnTypes    []types.DataType
	columnNullable []bool
	maxChunkSize   int
	useMvcc        bool
	chunks         []*Chunk
}

// TableOption configures a table at creation time.
type TableOption func(*Table)

// WithMvcc makes every chunk carry a transaction side-table.
func WithMvcc() TableOption {
	return func(t *Table) { t.useMvcc = true }
}

// NewTable creates an empty table whose chunks hold at most maxChunkSize
// rows; 0 means unlimited.
func NewTable(maxChunkSize int, opts ...TableOption) *Table {
	t := &Table{maxChunkSize: maxChunkSize}
	for _, opt := range opts {
		opt(t)
	}
	t.createNewChunk()
	return t
}

// AddColumn appends a column definition. Definitions are fixed once the
// first row was appended.
func (t *Table) AddColumn(name string, dataType types.DataType, nullable bool) error {
	if t.RowCount() > 0 {
		return errors.New(errors.ErrorTypeValidation, "cannot add column to a table that already has rows").
			WithDetail("column", name)
	}
	t.columnNames = append(t.columnNames, name)
	t.columnTypes = append(t.columnTypes, dataType)
	t.columnNullable = append(t.columnNullable, nullable)

	for _, chunk := range t.chunks {
		chunk.AddColumn(createValueColumn(dataType, nullable))
	}
	return nil
}

// Append adds one row of dynamically typed values, creating a new chunk
// when the current one is full.
func (t *Table) Append(row []interface{}) error {
	last := t.chunks[len(t.chunks)-1]
	if t.maxChunkSize > 0 && last.Size() >= t.maxChunkSize {
		t.createNewChunk()
		last = t.chunks[len(t.chunks)-1]
	}
	return last.Append(row)
}

// createNewChunk seals the current chunk and starts an empty one with the
// table's column layout.
func (t *Table) createNewChunk() {
	var chunk *Chunk
	if t.useMvcc {
		chunk = NewChunkWithMvcc()
	} else {
		chunk = NewChunk()
	}
	for i, dataType := range t.columnTypes {
		chunk.AddColumn(createValueColumn(dataType, t.columnNullable[i]))
	}
	t.chunks = append(t.chunks, chunk)
}

// EmplaceChunk adds a pre-built chunk to the table. The chunk must match
// the table's column layout.
func (t *Table) EmplaceChunk(chunk *Chunk) error {
	if chunk.ColumnCount() != len(t.columnTypes) {
		return errors.New(errors.ErrorTypeValidation, "chunk column count does not match table").
			WithDetail("chunk_columns", chunk.ColumnCount()).
			WithDetail("table_columns", len(t.columnTypes))
	}
	// Replace the trailing chunk if it is still empty.
	if last := t.chunks[len(t.chunks)-1]; last.Size() == 0 {
		t.chunks[len(t.chunks)-1] = chunk
		return nil
	}
	t.chunks = append(t.chunks, chunk)
	return nil
}

// RowCount returns the total number of rows across all chunks.
func (t *Table) RowCount() int {
	var total int
	for _, chunk := range t.chunks {
		total += chunk.Size()
	}
	return total
}

// ChunkCount returns the number of chunks.
func (t *Table) ChunkCount() int { return len(t.chunks) }

// GetChunk returns the chunk with the given id.
func (t *Table) GetChunk(id types.ChunkID) *Chunk { return t.chunks[id] }

// ColumnCount returns the number of column definitions.
func (t *Table) ColumnCount() int { return len(t.columnTypes) }

// ColumnTypes returns the declared type of every column in column-index
// order. Callers must not modify the slice.
func (t *Table) ColumnTypes() []types.DataType { return t.columnTypes }

// ColumnNames returns the column names in column-index order. Callers must
// not modify the slice.
func (t *Table) ColumnNames() []string { return t.columnNames }

// ColumnDataType returns the declared type of one column.
func (t *Table) ColumnDataType(id types.ColumnID) types.DataType { return t.columnTypes[id] }

// ColumnIDByName resolves a column name to its position.
func (t *Table) ColumnIDByName(name string) (types.ColumnID, error) {
	for i, n := range t.columnNames {
		if n == name {
			return types.ColumnID(i), nil
		}
	}
	return 0, errors.New(errors.ErrorTypeNotFound, "no column with this name").
		WithDetail("name", name)
}

// MemoryUsage returns the estimated footprint of all chunks in bytes.
func (t *Table) MemoryUsage() int64 {
	var total int64
	for _, chunk := range t.chunks {
		total += chunk.MemoryUsage()
	}
	return total
}

// createValueColumn creates the uncompressed column object for a declared
// type, dispatching over the closed type set.
func createValueColumn(dataType types.DataType, nullable bool) Column {
	switch dataType {
	case types.DataTypeInt32:
		return NewValueColumn[int32](nullable)
	case types.DataTypeInt64:
		return NewValueColumn[int64](nullable)
	case types.DataTypeFloat32:
		return NewValueColumn[float32](nullable)
	case types.DataTypeFloat64:
		return NewValueColumn[float64](nullable)
	default:
		return NewValueColumn[string](nullable)
	}
}
