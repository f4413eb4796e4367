package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-expiry-bar/internal/analyzer"
	"github.com/penwyp/go-expiry-bar/internal/core/constants"
	"github.com/penwyp/go-expiry-bar/internal/core/timeline"
	"github.com/penwyp/go-expiry-bar/internal/presentation/formatter"
	"github.com/penwyp/go-expiry-bar/internal/util"
)

const (
	defaultLogFile   = "~/.go-expiry-bar/logs/app.log"
	defaultConfigDir = "~/.go-expiry-bar"
)

// globalOptions are shared by every command.
type globalOptions struct {
	// Logging related
	debug     bool
	logFile   string
	logFormat string

	configFile string

	// Output related
	outputFormat string
	barWidth     int
	now          string
}

type renderOptions struct {
	start             string
	end               string
	thresholdInterval string
	threshold         string
	thresholdPercent  string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}
	r := &renderOptions{}

	rootCmd := &cobra.Command{
		Use:   "go-expiry-bar [flags]",
		Short: "Lifespan progress bars for expiring things",
		Long: `go-expiry-bar shows how far an entity has progressed through its lifespan.

The bar is split into a safe part, an expiring part once the warning threshold
has passed, and an expired part after the end date. Dates are counted in whole
days against a reference day that is fixed for the whole run.

Examples:
  go-expiry-bar --start 2024-01-01 --end 2024-12-31                 # One month warning by default
  go-expiry-bar --start 2024-01-01 --end 2024-12-31 --threshold-interval 2w
  go-expiry-bar --end 2024-12-31 --threshold 2024-12-01 -o html      # Bootstrap progress markup
  go-expiry-bar --end 2024-12-31 --threshold-percent 20% -o json
  go-expiry-bar --end 2024-12-31 --now 2024-12-15                    # Evaluate on another day
  go-expiry-bar batch certs.yaml --sort remaining --watch`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, g.configFile); err != nil {
				return err
			}
			return initLogging(g)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, r)
		},
	}

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&g.logFile, "log-file", defaultLogFile,
		"Log file path")
	rootCmd.PersistentFlags().StringVar(&g.logFormat, "log-format", string(util.FormatText),
		"Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "",
		"Config file (default "+defaultConfigDir+"/config.yaml)")

	// Output configuration
	rootCmd.PersistentFlags().StringVarP(&g.outputFormat, "output", "o", "bar",
		"Output format ("+strings.Join(formatter.Formats, ", ")+")")
	rootCmd.PersistentFlags().IntVar(&g.barWidth, "bar-width", 0,
		"Bar width in cells (0 = fit terminal)")
	rootCmd.PersistentFlags().StringVar(&g.now, "now", "",
		"Reference day (default today)")

	// Lifespan
	rootCmd.Flags().StringVar(&r.start, "start", "",
		"Lifespan start (default one month before the reference day)")
	rootCmd.Flags().StringVar(&r.end, "end", "",
		"Lifespan end (default one month after the reference day)")
	rootCmd.Flags().StringVarP(&r.thresholdInterval, "threshold-interval", "i", constants.DefaultThresholdInterval,
		"Warning span before the end (e.g., P1M, P20D, 2w3d)")
	rootCmd.Flags().StringVar(&r.threshold, "threshold", "",
		"Explicit warning date, overrides the interval")
	rootCmd.Flags().StringVar(&r.thresholdPercent, "threshold-percent", "",
		"Warning span as a share of the lifespan (e.g., 20%)")
	rootCmd.MarkFlagsMutuallyExclusive("threshold", "threshold-percent")

	rootCmd.AddCommand(newBatchCmd(g))

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func runRender(cmd *cobra.Command, g *globalOptions, r *renderOptions) error {
	f, err := formatter.New(g.outputFormat, g.barWidth)
	if err != nil {
		return err
	}

	now, err := analyzer.ResolveNow(g.now)
	if err != nil {
		return fmt.Errorf("invalid --now: %w", err)
	}

	tl, err := timeline.New(
		timeline.WithNow(now),
		timeline.WithStart(optional(r.start)),
		timeline.WithEnd(optional(r.end)),
		timeline.WithThresholdInterval(r.thresholdInterval),
	)
	if err != nil {
		return err
	}

	switch {
	case r.threshold != "":
		err = tl.SetThreshold(r.threshold)
	case r.thresholdPercent != "":
		var pct float64
		if pct, err = timeline.ParsePercentage(r.thresholdPercent); err == nil {
			err = tl.SetThresholdAsPercentage(pct)
		}
	}
	if err != nil {
		return err
	}

	util.LogDebugf("Rendering timeline: status=%s total=%d lived=%d", tl.Status(), tl.TotalDays(), tl.TotalLivedDays())

	return f.Format(cmd.OutOrStdout(), []formatter.Row{analyzer.BuildRow("", tl)})
}

func initLogging(g *globalOptions) error {
	logLevel := "info"
	if g.debug {
		logLevel = "debug"
	}

	logFile := expandPath(g.logFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	return util.InitLogger(util.LoggerConfig{
		Level:     logLevel,
		File:      logFile,
		Format:    util.LogFormat(g.logFormat),
		ToConsole: g.debug,
	})
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
