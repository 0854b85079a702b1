package storage

import (
	"testing"

	"github.com/apopiak/hyrise/pkg/errors"
	"github.com/apopiak/hyrise/pkg/testutil"
	"github.com/apopiak/hyrise/pkg/types"
)

func makeTable(t *testing.T, maxChunkSize int, opts ...TableOption) *Table {
	t.Helper()

	table := NewTable(maxChunkSize, opts...)
	testutil.RequireNoError(t, table.AddColumn("id", types.DataTypeInt64, false), "adding id column")
	testutil.RequireNoError(t, table.AddColumn("city", types.DataTypeString, true), "adding city column")
	return table
}

func TestTableAppendCreatesChunks(t *testing.T) {
	table := makeTable(t, 2)

	for i := 0; i < 5; i++ {
		if err := table.Append([]interface{}{int64(i), "city"}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	if table.RowCount() != 5 {
		t.Errorf("row count = %d, want 5", table.RowCount())
	}
	if table.ChunkCount() != 3 {
		t.Errorf("chunk count = %d, want 3", table.ChunkCount())
	}
	if got := table.GetChunk(2).Size(); got != 1 {
		t.Errorf("last chunk size = %d, want 1", got)
	}
}

func TestTableColumnLayout(t *testing.T) {
	table := makeTable(t, 0)

	if table.ColumnCount() != 2 {
		t.Fatalf("column count = %d, want 2", table.ColumnCount())
	}
	if table.ColumnDataType(1) != types.DataTypeString {
		t.Errorf("column 1 type = %s", table.ColumnDataType(1))
	}

	id, err := table.ColumnIDByName("city")
	if err != nil {
		t.Fatalf("ColumnIDByName: %v", err)
	}
	if id != 1 {
		t.Errorf("column id = %d, want 1", id)
	}

	if _, err := table.ColumnIDByName("nope"); !errors.IsType(err, errors.ErrorTypeNotFound) {
		t.Errorf("expected not_found error, got %v", err)
	}
}

func TestTableAddColumnAfterRows(t *testing.T) {
	table := makeTable(t, 0)
	if err := table.Append([]interface{}{int64(1), nil}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	err := table.AddColumn("late", types.DataTypeInt32, false)
	if !errors.IsType(err, errors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestChunkAppendArity(t *testing.T) {
	table := makeTable(t, 0)

	err := table.Append([]interface{}{int64(1)})
	if !errors.IsType(err, errors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestTableWithMvcc(t *testing.T) {
	table := makeTable(t, 0, WithMvcc())

	for i := 0; i < 3; i++ {
		if err := table.Append([]interface{}{int64(i), nil}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	chunk := table.GetChunk(0)
	if !chunk.HasMvccColumns() {
		t.Fatal("chunk should carry mvcc columns")
	}
	mvcc := chunk.MvccColumns()
	if mvcc.Size() != 3 {
		t.Fatalf("mvcc size = %d, want 3", mvcc.Size())
	}
	if mvcc.BeginCids[0] != types.MaxCommitID {
		t.Errorf("begin cid = %d, want MaxCommitID", mvcc.BeginCids[0])
	}

	chunk.ShrinkMvccColumns()
	if mvcc.Size() != 3 {
		t.Errorf("mvcc size after shrink = %d, want 3", mvcc.Size())
	}
	if got := cap(mvcc.Tids); got != 3 {
		t.Errorf("tids capacity after shrink = %d, want 3", got)
	}
}

func TestEmplaceChunk(t *testing.T) {
	table := makeTable(t, 0)

	chunk := NewChunk()
	chunk.AddColumn(NewValueColumn[int64](false))
	chunk.AddColumn(NewValueColumn[string](true))
	if err := chunk.Append([]interface{}{int64(9), "x"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// The table's only chunk is still empty, so the new chunk replaces it.
	if err := table.EmplaceChunk(chunk); err != nil {
		t.Fatalf("EmplaceChunk: %v", err)
	}
	if table.ChunkCount() != 1 || table.RowCount() != 1 {
		t.Errorf("chunks=%d rows=%d, want 1/1", table.ChunkCount(), table.RowCount())
	}

	mismatched := NewChunk()
	mismatched.AddColumn(NewValueColumn[int64](false))
	if err := table.EmplaceChunk(mismatched); !errors.IsType(err, errors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
