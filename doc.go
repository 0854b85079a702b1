// Package hyrise is the storage core of an in-memory, column-oriented
// database engine. Tables are partitioned into chunks; each chunk holds
// one column per attribute, stored either as an uncompressed value
// sequence or as a dictionary-encoded sequence.
//
// # Architecture
//
// The module is organized around three layers:
//
// 1. Storage containers (pkg/storage): Table, Chunk and the two column
// representations. A ValueColumn is a plain value sequence with an
// optional null-indicator sequence; a DictionaryColumn pairs a sorted,
// de-duplicated Dictionary with a width-fitted AttributeVector of value
// ids.
//
// 2. Dictionary compression (pkg/compression): the type-parametric
// compressor that converts a ValueColumn into a DictionaryColumn plus
// min/max statistics, and the chunk, subset and table drivers that apply
// it, serially or with a worker pool.
//
// 3. Ambient services: structured logging (pkg/logger), structured errors
// (pkg/errors), Prometheus metrics (pkg/metrics) and YAML configuration
// (pkg/config).
//
// # Quick Start
//
// Build a table, fill it and compress it:
//
//	table := storage.NewTable(65536)
//	_ = table.AddColumn("city", types.DataTypeString, true)
//	_ = table.Append([]interface{}{"Berlin"})
//	_ = table.Append([]interface{}{nil})
//
//	chunkStats := compression.CompressTable(table)
//
// After compression every chunk holds DictionaryColumn objects and
// carries a ChunkStatistics record with the per-column min/max that query
// planning and chunk pruning consume.
package hyrise
