package compression

import (
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/apopiak/hyrise/pkg/logger"
	"github.com/apopiak/hyrise/pkg/storage"
	"github.com/apopiak/hyrise/pkg/types"
)

// CompressTableParallel compresses all chunks of a table with a fixed pool
// of workers, one task per chunk. Chunks have no data dependency on each
// other; exclusive per-chunk access holds because every chunk id is
// dispatched to exactly one worker. Statistics are returned in chunk-index
// order. workers <= 0 selects GOMAXPROCS.
func CompressTableParallel(table *storage.Table, workers int) []*storage.ChunkStatistics {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > table.ChunkCount() {
		workers = table.ChunkCount()
	}

	start := time.Now()
	columnTypes := table.ColumnTypes()
	chunkStats := make([]*storage.ChunkStatistics, table.ChunkCount())

	chunkIDs := make(chan types.ChunkID)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for chunkID := range chunkIDs {
				// Distinct workers write distinct slice slots.
				chunkStats[chunkID] = CompressChunk(columnTypes, table.GetChunk(chunkID))
			}
		}()
	}

	for chunkID := 0; chunkID < table.ChunkCount(); chunkID++ {
		chunkIDs <- types.ChunkID(chunkID)
	}
	close(chunkIDs)
	wg.Wait()

	logger.Info("compressed table in parallel",
		zap.Int("chunks", table.ChunkCount()),
		zap.Int("rows", table.RowCount()),
		zap.Int("workers", workers),
		zap.Duration("duration", time.Since(start)))

	return chunkStats
}
