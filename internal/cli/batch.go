package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ppiankov/calsigns/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var batchTimeout time.Duration

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Classify many dates from a file in parallel",
	Long: `Batch classifies every date listed in a file against all enabled systems:
- One date per line (YYYY-MM-DD or MM-DD)
- Blank lines and lines starting with # are skipped
- Duplicate lines are classified once
- Results are printed in input order; unparseable lines are reported inline

Example:
  calsigns batch dates.txt
  calsigns batch dates.txt --concurrency 4 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", time.Minute, "total timeout for batch processing")

	_ = viper.BindPFlag("concurrency.workers", batchCmd.Flags().Lookup("concurrency"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tables, err := resolveTables(cfg)
	if err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
		fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
		fmt.Fprintf(os.Stderr, "  Systems:      %d\n", len(tables))
		fmt.Fprintf(os.Stderr, "\n")
	}

	processor := worker.NewBatchProcessor(tables, cfg.Concurrency.Workers)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	failures := 0
	for _, r := range results {
		if r.Error != nil {
			failures++
		}
	}
	logger.Debug("Batch finished",
		zap.String("file", file),
		zap.Int("dates", len(results)),
		zap.Int("failures", failures))

	if err := renderBatch(cmd.OutOrStdout(), cfg.Output.Format, results); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d dates could not be classified", failures, len(results))
	}
	return nil
}
