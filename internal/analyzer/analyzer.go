package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"time"

	"github.com/penwyp/go-expiry-bar/internal/core/datemath"
	"github.com/penwyp/go-expiry-bar/internal/core/model"
	"github.com/penwyp/go-expiry-bar/internal/core/timeline"
	"github.com/penwyp/go-expiry-bar/internal/data/parser"
	"github.com/penwyp/go-expiry-bar/internal/data/watcher"
	"github.com/penwyp/go-expiry-bar/internal/presentation/formatter"
	"github.com/penwyp/go-expiry-bar/internal/util"
)

// Sort orders accepted by Config.Sort.
const (
	SortNone      = ""
	SortName      = "name"
	SortRemaining = "remaining"
)

// watchDebounce groups the bursts of events editors emit for a single save.
const watchDebounce = 150 * time.Millisecond

// ErrNoFiles is returned when the analyzer has nothing to read.
var ErrNoFiles = errors.New("no entry files given")

type Config struct {
	Files           []string
	OutputFormat    string
	Now             string // reference day; empty uses the wall clock
	DefaultInterval string // used by entries without threshold_interval
	BarWidth        int
	Sort            string
	Concurrency     int
}

type Analyzer struct {
	config *Config
	parser *parser.Parser
}

func New(config *Config) *Analyzer {
	if config.Concurrency == 0 {
		config.Concurrency = runtime.NumCPU()
	}

	return &Analyzer{
		config: config,
		parser: parser.NewParser(config.Concurrency),
	}
}

// Run reads every entry file once and writes the formatted result to w.
func (a *Analyzer) Run(w io.Writer) error {
	f, err := formatter.New(a.config.OutputFormat, a.config.BarWidth)
	if err != nil {
		return err
	}

	rows, err := a.Rows()
	if err != nil {
		return err
	}

	outputStart := time.Now()
	err = f.Format(w, rows)
	util.LogDebugf("Formatting and output duration: %v", time.Since(outputStart))
	return err
}

// Rows parses the entry files and evaluates one timeline per entry, all
// against the same reference day.
func (a *Analyzer) Rows() ([]formatter.Row, error) {
	startTime := time.Now()

	if len(a.config.Files) == 0 {
		return nil, ErrNoFiles
	}

	now, err := ResolveNow(a.config.Now)
	if err != nil {
		return nil, fmt.Errorf("reference day: %w", err)
	}

	stats := NewRunStats()
	byFile := make(map[string][]model.Entry, len(a.config.Files))
	for result := range a.parser.ParseFiles(a.config.Files) {
		stats.IncrementFiles()
		if result.Error != nil {
			stats.IncrementFailure()
			err = errors.Join(err, result.Error)
			continue
		}
		byFile[result.File] = result.Entries
	}
	if err != nil {
		return nil, err
	}

	var entries []model.Entry
	for _, file := range a.config.Files {
		entries = append(entries, byFile[file]...)
	}
	if err := model.ValidateEntries(entries); err != nil {
		return nil, err
	}
	util.LogDebugf("Parsed %d entries from %d files in %v", len(entries), len(a.config.Files), time.Since(startTime))

	rows := make([]formatter.Row, 0, len(entries))
	for _, entry := range entries {
		tl, err := a.buildTimeline(entry, now)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", entry.Name, err)
		}
		row := BuildRow(entry.Name, tl)
		stats.Record(row.Status)
		rows = append(rows, row)
	}

	a.sortRows(rows)
	stats.PrintFinalStats()

	return rows, nil
}

// Watch renders once, then re-renders whenever one of the entry files
// changes, until ctx is cancelled. Failures after the first render are
// reported and the loop keeps going.
func (a *Analyzer) Watch(ctx context.Context, w io.Writer) error {
	if err := a.Run(w); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(a.config.Files)
	if err != nil {
		return fmt.Errorf("watch entry files: %w", err)
	}
	defer fw.Close()

	util.LogInfof("Watching %d entry files for changes", len(a.config.Files))

	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events():
			if !ok {
				return nil
			}
			util.LogDebugf("Entry file changed: %s (%s)", event.Path, event.Operation)
			a.parser.Forget(event.Path)
			debounce.Reset(watchDebounce)
		case <-debounce.C:
			if err := util.ClearTerminal(w); err != nil {
				return err
			}
			if err := a.Run(w); err != nil {
				util.LogErrorf("Re-render failed: %v", err)
				fmt.Fprintf(w, "error: %v\n", err)
			}
		}
	}
}

func (a *Analyzer) buildTimeline(entry model.Entry, now time.Time) (*timeline.Timeline, error) {
	interval := entry.ThresholdInterval
	if interval == "" {
		interval = a.config.DefaultInterval
	}

	tl, err := timeline.New(
		timeline.WithNow(now),
		timeline.WithStart(optional(entry.Start)),
		timeline.WithEnd(optional(entry.End)),
		timeline.WithThresholdInterval(interval),
	)
	if err != nil {
		return nil, err
	}

	switch {
	case entry.Threshold != "":
		err = tl.SetThreshold(entry.Threshold)
	case entry.ThresholdPercentage != nil:
		err = tl.SetThresholdAsPercentage(*entry.ThresholdPercentage)
	}
	if err != nil {
		return nil, err
	}
	return tl, nil
}

func (a *Analyzer) sortRows(rows []formatter.Row) {
	switch a.config.Sort {
	case SortName:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Name < rows[j].Name
		})
	case SortRemaining:
		// expired entities sort by how long ago they ended
		key := func(r formatter.Row) int { return r.RemainingDays - r.ExpiredDays }
		sort.SliceStable(rows, func(i, j int) bool {
			return key(rows[i]) < key(rows[j])
		})
	}
}

// ResolveNow turns the configured reference day into an instant. An empty
// value means the wall clock.
func ResolveNow(value string) (time.Time, error) {
	clock := util.GetTimeProvider().Now()
	if value == "" {
		return clock, nil
	}
	return datemath.Parse(value, clock.Location(), clock)
}

// BuildRow copies a timeline's derived values into a formatter row.
func BuildRow(name string, tl *timeline.Timeline) formatter.Row {
	snap := tl.Snapshot()

	segments := make([]formatter.Segment, 0, len(snap.Segments))
	for _, s := range snap.Segments {
		segments = append(segments, formatter.Segment{
			Phase:      string(s.Phase),
			Percentage: s.Percentage,
			Style:      string(s.Style),
		})
	}

	return formatter.Row{
		Name:               name,
		Now:                snap.Now,
		Start:              snap.Start,
		End:                snap.End,
		Threshold:          snap.Threshold,
		Interval:           snap.ThresholdInterval,
		Status:             string(snap.Status),
		TotalDays:          snap.TotalDays,
		LivedDays:          snap.LivedDays,
		SafeDays:           snap.SafeDays,
		ExpiringDays:       snap.ExpiringDays,
		ExpiredDays:        snap.ExpiredDays,
		RemainingDays:      snap.RemainingDays,
		SafePercentage:     snap.Percentages.Safe,
		ExpiringPercentage: snap.Percentages.Expiring,
		ExpiredPercentage:  snap.Percentages.Expired,
		Segments:           segments,
	}
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
