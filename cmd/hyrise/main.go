// Command hyrise exercises the columnar storage core from the command
// line: it builds a table of synthetic rows, dictionary-compresses it and
// prints a JSON report of the resulting chunk statistics.
package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/apopiak/hyrise/pkg/compression"
	"github.com/apopiak/hyrise/pkg/config"
	"github.com/apopiak/hyrise/pkg/logger"
	"github.com/apopiak/hyrise/pkg/storage"
	"github.com/apopiak/hyrise/pkg/types"
)

var version = "0.1.0"

// CompressFlags contains the knobs of the compress subcommand
type CompressFlags struct {
	Rows        int    `json:"rows"`
	Distinct    int    `json:"distinct"`
	Seed        int64  `json:"seed"`
	MetricsAddr string `json:"metrics_addr"`
	LogLevel    string `json:"log_level"`
}

// DefaultCompressFlags returns sensible defaults
func DefaultCompressFlags() *CompressFlags {
	return &CompressFlags{
		Rows:     100000,
		Distinct: 200,
		Seed:     1,
		LogLevel: "info",
	}
}

// Report is the JSON document printed after a compression run
type Report struct {
	Rows         int           `json:"rows"`
	Chunks       int           `json:"chunks"`
	Workers      int           `json:"workers,omitempty"`
	BytesBefore  int64         `json:"bytes_before"`
	BytesAfter   int64         `json:"bytes_after"`
	Ratio        float64       `json:"ratio"`
	Duration     time.Duration `json:"duration_ns"`
	ChunkReports []ChunkReport `json:"chunk_stats"`
}

// ChunkReport summarizes one compressed chunk
type ChunkReport struct {
	ChunkID int            `json:"chunk_id"`
	Rows    int            `json:"rows"`
	Columns []ColumnReport `json:"columns"`
}

// ColumnReport summarizes one column's statistics
type ColumnReport struct {
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	AllNull bool        `json:"all_null,omitempty"`
	Min     interface{} `json:"min,omitempty"`
	Max     interface{} `json:"max,omitempty"`
}

func main() {
	root := &cobra.Command{
		Use:     "hyrise",
		Short:   "In-memory columnar storage core",
		Version: version,
	}

	flags := DefaultCompressFlags()
	var configPath string

	compress := &cobra.Command{
		Use:   "compress",
		Short: "Build a synthetic table and dictionary-compress it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if err := logger.Init(logger.Config{
				Level:       flags.LogLevel,
				Development: cfg.Logging.Development,
				Encoding:    cfg.Logging.Encoding,
			}); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if flags.MetricsAddr != "" {
				go serveMetrics(flags.MetricsAddr)
			}

			report, err := runCompress(cfg, flags)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			if flags.MetricsAddr != "" {
				logger.Info("serving metrics until interrupted", zap.String("addr", flags.MetricsAddr))
				waitForInterrupt()
			}
			return nil
		},
	}

	compress.Flags().IntVar(&flags.Rows, "rows", flags.Rows, "number of synthetic rows")
	compress.Flags().IntVar(&flags.Distinct, "distinct", flags.Distinct, "distinct values per generated column")
	compress.Flags().Int64Var(&flags.Seed, "seed", flags.Seed, "random seed for the generated data")
	compress.Flags().StringVar(&flags.MetricsAddr, "metrics-addr", flags.MetricsAddr, "address to serve Prometheus metrics on (empty to disable)")
	compress.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level (debug, info, warn, error)")
	compress.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	root.AddCommand(compress)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges defaults, an optional config file and HYRISE_*
// environment variables.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	if path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	v := viper.New()
	v.SetEnvPrefix("HYRISE")
	v.AutomaticEnv()
	if workers := v.GetInt("compression_workers"); workers > 0 {
		cfg.Compression.Workers = workers
	}
	if v.GetBool("compression_parallel") {
		cfg.Compression.Parallel = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runCompress builds the synthetic table, compresses it and assembles the
// report.
func runCompress(cfg *config.Config, flags *CompressFlags) (*Report, error) {
	table, err := buildTable(cfg.Table.MaxChunkSize, flags.Rows, flags.Distinct, flags.Seed)
	if err != nil {
		return nil, err
	}

	bytesBefore := table.MemoryUsage()
	start := time.Now()

	var chunkStats []*storage.ChunkStatistics
	workers := 0
	if cfg.Compression.Parallel {
		workers = cfg.Compression.Workers
		chunkStats = compression.CompressTableParallel(table, workers)
	} else {
		chunkStats = compression.CompressTable(table)
	}

	elapsed := time.Since(start)
	bytesAfter := table.MemoryUsage()

	report := &Report{
		Rows:        table.RowCount(),
		Chunks:      table.ChunkCount(),
		Workers:     workers,
		BytesBefore: bytesBefore,
		BytesAfter:  bytesAfter,
		Duration:    elapsed,
	}
	if bytesAfter > 0 {
		report.Ratio = float64(bytesBefore) / float64(bytesAfter)
	}

	names := table.ColumnNames()
	for chunkID, stats := range chunkStats {
		chunkReport := ChunkReport{
			ChunkID: chunkID,
			Rows:    table.GetChunk(types.ChunkID(chunkID)).Size(),
		}
		for columnID := 0; columnID < stats.ColumnCount(); columnID++ {
			columnReport := ColumnReport{
				Name: names[columnID],
				Type: table.ColumnDataType(types.ColumnID(columnID)).String(),
			}
			if columnStats := stats.Column(types.ColumnID(columnID)); columnStats != nil {
				columnReport.Min = columnStats.Min()
				columnReport.Max = columnStats.Max()
			} else {
				columnReport.AllNull = true
			}
			chunkReport.Columns = append(chunkReport.Columns, columnReport)
		}
		report.ChunkReports = append(report.ChunkReports, chunkReport)
	}
	return report, nil
}

// buildTable generates a table with one column per primitive type, filled
// with low-cardinality data so dictionary compression has something to
// bite on.
func buildTable(maxChunkSize, rows, distinct int, seed int64) (*storage.Table, error) {
	table := storage.NewTable(maxChunkSize, storage.WithMvcc())
	columns := []struct {
		name     string
		dataType types.DataType
		nullable bool
	}{
		{"id", types.DataTypeInt64, false},
		{"quantity", types.DataTypeInt32, false},
		{"score", types.DataTypeFloat32, false},
		{"amount", types.DataTypeFloat64, false},
		{"category", types.DataTypeString, true},
	}
	for _, c := range columns {
		if err := table.AddColumn(c.name, c.dataType, c.nullable); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < rows; i++ {
		var category interface{}
		if rng.Intn(10) == 0 {
			category = nil // sprinkle in SQL NULLs
		} else {
			category = fmt.Sprintf("category-%03d", rng.Intn(distinct))
		}
		row := []interface{}{
			int64(i),
			int32(rng.Intn(distinct)),
			float32(rng.Intn(distinct)) / 2,
			float64(rng.Intn(distinct)) * 1.5,
			category,
		}
		if err := table.Append(row); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server failed", zap.Error(err))
	}
}

func waitForInterrupt() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
}
