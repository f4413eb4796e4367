package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-expiry-bar/internal/analyzer"
	"github.com/penwyp/go-expiry-bar/internal/data/scanner"
)

type batchOptions struct {
	watch           bool
	sortBy          string
	defaultInterval string
}

func newBatchCmd(g *globalOptions) *cobra.Command {
	b := &batchOptions{}

	batchCmd := &cobra.Command{
		Use:   "batch FILE|DIR...",
		Short: "Render every entity listed in entry files",
		Long: `Reads entities from .json, .jsonl, .yaml or .yml files and renders one bar per entity.
Directories are searched recursively for such files.

Each entry has a name and optional start, end, threshold_interval, threshold or
threshold_percentage fields. All entities are evaluated against the same reference day.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, g, b, args)
		},
	}

	batchCmd.Flags().BoolVarP(&b.watch, "watch", "w", false,
		"Re-render when an entry file changes")
	batchCmd.Flags().StringVar(&b.sortBy, "sort", analyzer.SortNone,
		"Sort by name or remaining (default file order)")
	batchCmd.Flags().StringVar(&b.defaultInterval, "default-interval", "",
		"Threshold interval for entries without one")

	return batchCmd
}

func runBatch(cmd *cobra.Command, g *globalOptions, b *batchOptions, files []string) error {
	switch b.sortBy {
	case analyzer.SortNone, analyzer.SortName, analyzer.SortRemaining:
	default:
		return fmt.Errorf("invalid --sort %q (valid: name, remaining)", b.sortBy)
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, expandPath(f))
	}
	paths, err := scanner.Expand(paths)
	if err != nil {
		return err
	}

	a := analyzer.New(&analyzer.Config{
		Files:           paths,
		OutputFormat:    g.outputFormat,
		Now:             g.now,
		DefaultInterval: b.defaultInterval,
		BarWidth:        g.barWidth,
		Sort:            b.sortBy,
	})

	if !b.watch {
		return a.Run(cmd.OutOrStdout())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.Watch(ctx, cmd.OutOrStdout())
}
