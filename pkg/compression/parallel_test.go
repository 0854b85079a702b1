package compression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apopiak/hyrise/pkg/storage"
	"github.com/apopiak/hyrise/pkg/types"
)

func TestCompressTableParallel(t *testing.T) {
	table := buildTestTable(t, 120, 16)
	require.Greater(t, table.ChunkCount(), 1)

	stats := CompressTableParallel(table, 4)

	require.Len(t, stats, table.ChunkCount())
	for chunkID := 0; chunkID < table.ChunkCount(); chunkID++ {
		chunk := table.GetChunk(types.ChunkID(chunkID))
		require.NotNil(t, stats[chunkID], "chunk %d", chunkID)
		require.Same(t, stats[chunkID], chunk.Statistics(), "chunk %d", chunkID)

		dictColumn, ok := chunk.Column(0).(*storage.DictionaryColumn[int64])
		require.True(t, ok, "chunk %d column 0 not compressed", chunkID)

		// Round-trip the id column to make sure no chunk was compressed twice
		// or skipped.
		base := int64(chunkID * 16)
		for i := 0; i < chunk.Size(); i++ {
			v, notNull := dictColumn.Value(i)
			require.True(t, notNull)
			assert.Equal(t, base+int64(i), v)
		}
	}
}

func TestCompressTableParallelDefaultWorkers(t *testing.T) {
	table := buildTestTable(t, 30, 8)

	stats := CompressTableParallel(table, 0)

	require.Len(t, stats, table.ChunkCount())
	for _, s := range stats {
		require.NotNil(t, s)
	}
}

func TestCompressTableParallelSerialEquivalence(t *testing.T) {
	serial := buildTestTable(t, 64, 16)
	parallel := buildTestTable(t, 64, 16)

	serialStats := CompressTable(serial)
	parallelStats := CompressTableParallel(parallel, 3)

	require.Len(t, parallelStats, len(serialStats))
	for chunkID := range serialStats {
		for columnID := 0; columnID < serialStats[chunkID].ColumnCount(); columnID++ {
			want := serialStats[chunkID].Column(types.ColumnID(columnID))
			got := parallelStats[chunkID].Column(types.ColumnID(columnID))
			if want == nil {
				assert.Nil(t, got)
				continue
			}
			require.NotNil(t, got)
			assert.Equal(t, want.Min(), got.Min(), "chunk %d column %d", chunkID, columnID)
			assert.Equal(t, want.Max(), got.Max(), "chunk %d column %d", chunkID, columnID)
		}
	}
}
