package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pfrederiksen/hltv-players/internal/config"
	"github.com/pfrederiksen/hltv-players/internal/logger"
	"github.com/pfrederiksen/hltv-players/internal/pipeline"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

type options struct {
	envFile    string
	endpoint   string
	userAgent  string
	output     string
	tableClass string
	timeout    time.Duration
	daysBack   int
	maps       string
	ranking    string
	side       string
	format     string
	verbose    bool
	quiet      bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{})
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hltv-players",
		Short: "Export the HLTV player stats table to CSV",
		Long: `Fetches the HLTV player statistics page once, extracts the stats table
and writes it to a CSV file (data/hltv_players.csv by default), replacing any
previous export.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "Optional .env file with HLTV_* settings")
	flags.StringVar(&opts.endpoint, "endpoint", config.DefaultEndpoint, "Stats page URL")
	flags.StringVar(&opts.userAgent, "user-agent", config.DefaultUserAgent, "User-Agent header sent with the request")
	flags.StringVarP(&opts.output, "output", "o", config.DefaultOutputPath, "Output CSV path (directory must exist)")
	flags.StringVar(&opts.tableClass, "table-class", config.DefaultTableClass, "Class marking the stats table")
	flags.DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout (0 waits indefinitely)")
	flags.IntVar(&opts.daysBack, "days-back", 0, "Build the URL for the last N days instead of using --endpoint")
	flags.StringVar(&opts.maps, "maps", "de_ancient", "Map filter used with --days-back")
	flags.StringVar(&opts.ranking, "ranking", "Top30", "Ranking filter used with --days-back")
	flags.StringVar(&opts.side, "side", "TERRORIST", "Team side filter used with --days-back")
	flags.StringVar(&opts.format, "format", "text", "Summary format: text or json")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only log errors")

	cmd.MarkFlagsMutuallyExclusive("endpoint", "days-back")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}
	if opts.daysBack < 0 {
		return fmt.Errorf("--days-back must not be negative")
	}

	level := logger.LevelInfo
	switch {
	case opts.verbose:
		level = logger.LevelDebug
	case opts.quiet:
		level = logger.LevelError
	}
	log := logger.New(level, cmd.ErrOrStderr())

	cfg, err := resolveConfig(cmd, opts, time.Now())
	if err != nil {
		return err
	}

	log.Debug("Resolved config", logger.Fields{
		"endpoint":    cfg.Endpoint,
		"user_agent":  cfg.UserAgent,
		"output":      cfg.OutputPath,
		"table_class": cfg.TableClass,
		"timeout":     cfg.Timeout.String(),
	})

	result, err := pipeline.Run(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// resolveConfig layers explicitly set flags over config.Load.
func resolveConfig(cmd *cobra.Command, opts *options, now time.Time) (config.Config, error) {
	flags := cmd.Flags()

	envFile := opts.envFile
	if !flags.Changed("env-file") {
		// The default .env is optional; only an explicit one must parse.
		if _, err := os.Stat(envFile); err != nil {
			envFile = ""
		}
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}

	if flags.Changed("endpoint") {
		cfg.Endpoint = opts.endpoint
	}
	if flags.Changed("user-agent") {
		cfg.UserAgent = opts.userAgent
	}
	if flags.Changed("output") {
		cfg.OutputPath = opts.output
	}
	if flags.Changed("table-class") {
		cfg.TableClass = opts.tableClass
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if opts.daysBack > 0 {
		q := config.RollingQuery(now, opts.daysBack, opts.maps, opts.ranking, opts.side)
		cfg.Endpoint = config.BuildEndpoint(config.PlayersStatsURL, q)
	}

	return cfg, nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}
