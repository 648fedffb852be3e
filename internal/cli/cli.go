package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/talk-events/internal/calendar"
	"github.com/pfrederiksen/talk-events/internal/config"
	"github.com/pfrederiksen/talk-events/internal/logger"
	"github.com/pfrederiksen/talk-events/internal/storage"
	"github.com/pfrederiksen/talk-events/internal/table"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagInput    string
	flagOutput   string
	flagTimezone string
	flagDuration int
	flagConfig   string
	flagFormat   string
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "talk-events",
		Short: "Export the life science talks table to an iCalendar file",
		Long: `A CLI tool that reads a saved HTML copy of the life science talks page,
parses the event table (dates, time ranges, titles, speakers, venues, links)
and writes the talks as entries in an .ics calendar file.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagInput, "input", "", "Path to the saved HTML file of the talks page (required)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Output .ics path (default "+config.DefaultOutput+")")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "", "IANA timezone for event times (default "+config.DefaultTimezone+")")
	cmd.Flags().IntVar(&flagDuration, "duration-minutes", 0, "Assumed duration for single-time events (default 60)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Optional YAML config file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("input")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagTimezone != "" {
		cfg.Timezone = flagTimezone
	}
	if flagDuration > 0 {
		cfg.DurationMinutes = flagDuration
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Warn("timezone unavailable, exporting floating times", logger.Fields{
			"timezone": cfg.Timezone,
		})
		loc = nil
	}

	f, err := os.Open(flagInput)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	logger.Debug("extracting events", logger.Fields{
		"input":    flagInput,
		"timezone": cfg.Timezone,
	})

	result, err := table.New(loc, cfg.Duration()).Extract(f)
	if err != nil {
		return err
	}

	logger.AddCounter("rows.exported", int64(len(result.Events)))
	logger.AddCounter("rows.skipped", int64(len(result.Skips)))

	data := calendar.Generate(result.Events, loc == nil)
	path, err := storage.WriteFile(cfg.Output, []byte(data))
	if err != nil {
		return err
	}

	logger.Info("calendar written", logger.Fields{
		"path":   path,
		"events": len(result.Events),
	})
	if flagVerbose {
		logger.Debug("run counters", logger.Fields{"counters": logger.CountersSnapshot()})
	}

	out := &OutputResult{
		ExportedAt: time.Now().UTC(),
		EventCount: len(result.Events),
		Output:     path,
		Skips:      result.Skips,
	}
	return WriteOutput(os.Stdout, out, format)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
