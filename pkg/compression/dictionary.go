// Package compression implements dictionary compression for the storage
// core: the type-parametric column compressor and the chunk, subset and
// table drivers that apply it.
//
// Contract violations (a column that is already compressed or whose type
// does not match the dispatched compressor, a declared-type count that
// does not match a chunk, an out-of-range chunk id) are caller bugs and
// panic; data edge cases such as all-null columns are handled as normal
// control flow.
package compression

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/apopiak/hyrise/pkg/logger"
	"github.com/apopiak/hyrise/pkg/metrics"
	"github.com/apopiak/hyrise/pkg/storage"
	"github.com/apopiak/hyrise/pkg/types"
)

// CompressColumn converts an uncompressed column into its
// dictionary-encoded form and derives its min/max statistics. The concrete
// compressor is selected by the column's declared type tag; the returned
// statistics are nil when the column is all-null. The input column is left
// untouched and becomes eligible for replacement by the caller.
func CompressColumn(dataType types.DataType, column storage.Column) (storage.Column, storage.ColumnStatistics) {
	switch dataType {
	case types.DataTypeInt32:
		return compressColumn[int32](column)
	case types.DataTypeInt64:
		return compressColumn[int64](column)
	case types.DataTypeFloat32:
		return compressColumn[float32](column)
	case types.DataTypeFloat64:
		return compressColumn[float64](column)
	case types.DataTypeString:
		return compressColumn[string](column)
	default:
		panic(fmt.Sprintf("compression: unknown data type %d", dataType))
	}
}

// compressColumn is the generic compression algorithm: build the
// dictionary from the non-null values, size a fitted attribute vector from
// the dictionary's final cardinality, then resolve every row in one linear
// pass. Pure function of its input column.
func compressColumn[T types.ColumnValue](column storage.Column) (storage.Column, storage.ColumnStatistics) {
	valueColumn, ok := column.(*storage.ValueColumn[T])
	if !ok {
		panic(fmt.Sprintf("compression: column is either already compressed or its type does not match %s",
			column.DataType()))
	}

	values := valueColumn.Values()
	var nulls []bool
	if valueColumn.Nullable() {
		nulls = valueColumn.NullValues()
	}

	dictionary := storage.NewDictionary(values, nulls)

	// The +1 reserves the null sentinel, which occupies the top value of
	// the chosen width regardless of nullability.
	attributeVector := storage.NewFittedAttributeVector(dictionary.Size()+1, len(values))

	if nulls != nil {
		nullValueID := attributeVector.NullValueID()
		for i, value := range values {
			if nulls[i] {
				attributeVector.Set(i, nullValueID)
				continue
			}
			attributeVector.Set(i, dictionary.IndexOf(value))
		}
	} else {
		for i, value := range values {
			attributeVector.Set(i, dictionary.IndexOf(value))
		}
	}

	// An empty dictionary means an all-null column; it yields no
	// statistics.
	var statistics storage.ColumnStatistics
	if dictionary.Size() > 0 {
		statistics = storage.NewColumnStatistics(dictionary.Min(), dictionary.Max())
	}

	return storage.NewDictionaryColumn(dictionary, attributeVector), statistics
}

// CompressChunk compresses every column of a chunk in column-index order,
// replacing each column immediately after compression, shrinks the MVCC
// side-table once all columns are compressed, and attaches the aggregated
// chunk statistics.
//
// Replacement is column by column, not batched: if a later column panics
// on a contract violation, earlier columns have already been replaced.
// Callers needing whole-chunk atomicity must snapshot beforehand.
func CompressChunk(columnTypes []types.DataType, chunk *storage.Chunk) *storage.ChunkStatistics {
	if len(columnTypes) != chunk.ColumnCount() {
		panic(fmt.Sprintf("compression: %d declared column types for a chunk with %d columns",
			len(columnTypes), chunk.ColumnCount()))
	}

	start := time.Now()
	bytesBefore := chunk.MemoryUsage()

	columnStats := make([]storage.ColumnStatistics, 0, chunk.ColumnCount())
	for columnID := 0; columnID < chunk.ColumnCount(); columnID++ {
		compressed, stats := CompressColumn(columnTypes[columnID], chunk.Column(types.ColumnID(columnID)))
		chunk.ReplaceColumn(types.ColumnID(columnID), compressed)
		columnStats = append(columnStats, stats)
	}

	if chunk.HasMvccColumns() {
		chunk.ShrinkMvccColumns()
	}

	statistics := storage.NewChunkStatistics(columnStats)
	chunk.SetStatistics(statistics)

	bytesAfter := chunk.MemoryUsage()
	elapsed := time.Since(start)
	metrics.Default().ObserveChunkCompression(chunk.ColumnCount(), bytesBefore, bytesAfter, elapsed)
	logger.Debug("compressed chunk",
		zap.Int("columns", chunk.ColumnCount()),
		zap.Int("rows", chunk.Size()),
		zap.Int64("bytes_before", bytesBefore),
		zap.Int64("bytes_after", bytesAfter),
		zap.Duration("duration", elapsed))

	return statistics
}

// CompressChunks compresses the named chunks of a table and returns their
// statistics in input order. Every chunk id must be within the table's
// current chunk range.
func CompressChunks(table *storage.Table, chunkIDs []types.ChunkID) []*storage.ChunkStatistics {
	chunkStats := make([]*storage.ChunkStatistics, 0, len(chunkIDs))
	for _, chunkID := range chunkIDs {
		if int(chunkID) >= table.ChunkCount() {
			panic(fmt.Sprintf("compression: chunk %d does not exist, table has %d chunks",
				chunkID, table.ChunkCount()))
		}
		chunkStats = append(chunkStats, CompressChunk(table.ColumnTypes(), table.GetChunk(chunkID)))
	}
	return chunkStats
}

// CompressTable compresses every chunk of a table in chunk-index order and
// returns the per-chunk statistics in that order.
func CompressTable(table *storage.Table) []*storage.ChunkStatistics {
	start := time.Now()

	chunkStats := make([]*storage.ChunkStatistics, 0, table.ChunkCount())
	for chunkID := 0; chunkID < table.ChunkCount(); chunkID++ {
		chunkStats = append(chunkStats, CompressChunk(table.ColumnTypes(), table.GetChunk(types.ChunkID(chunkID))))
	}

	logger.Info("compressed table",
		zap.Int("chunks", table.ChunkCount()),
		zap.Int("rows", table.RowCount()),
		zap.Duration("duration", time.Since(start)))

	return chunkStats
}
