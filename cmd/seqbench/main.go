package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/tychoish/lazy/ers"
)

type Config struct {
	LogLevel  string   `toml:"log_level"`
	LogFormat string   `toml:"log_format"`
	Length    int      `toml:"length"`
	Runs      int      `toml:"runs"`
	Scenarios []string `toml:"scenarios"`
	Output    string   `toml:"output"`
}

const (
	defaultLength = 1_000
	defaultRuns   = 10_000
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seqbench",
		Short:         "seqbench compares lazy sequence pipelines with eager slice code",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(runCmd())
	cmd.AddCommand(listCmd())
	cmd.AddCommand(checkCmd())

	return cmd
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run benchmark scenarios",
		Args:  cobra.NoArgs,
	}

	filename := cmd.Flags().String("config", "", "config file to load")

	var flagsConfig Config
	cmd.Flags().StringVar(&flagsConfig.LogLevel, "log-level", "", "log level to use")
	cmd.Flags().StringVar(&flagsConfig.LogFormat, "log-format", "", "log formatter to use")
	cmd.Flags().IntVar(&flagsConfig.Length, "length", 0, "number of elements in each input sequence")
	cmd.Flags().IntVar(&flagsConfig.Runs, "runs", 0, "number of timed invocations per case")
	cmd.Flags().StringSliceVar(&flagsConfig.Scenarios, "scenario", nil, "scenario to run, may be repeated (default all)")
	cmd.Flags().StringVar(&flagsConfig.Output, "output", "", "report format (one of text|json)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(*filename)
		if err != nil {
			return err
		}

		cfg.merge(flagsConfig)
		cfg = cfg.withDefaults()
		if err := cfg.validate(); err != nil {
			return err
		}

		logger, err := logger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("configure logger: %w", err)
		}

		return run(cmd.Context(), cfg, logger, cmd.OutOrStdout())
	}

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeScenarioList(cmd.OutOrStdout())
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <config-file>",
		Short: "check configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}

			cfg = cfg.withDefaults()
			if err := cfg.validate(); err != nil {
				return err
			}

			if _, err := logger(cfg, io.Discard); err != nil {
				return fmt.Errorf("configure logger: %w", err)
			}

			return nil
		},
	}
}

func loadConfig(file string) (Config, error) {
	var cfg Config
	if file == "" {
		return cfg, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return cfg, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec = dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", file, err)
	}
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
	if o.Length != 0 {
		c.Length = o.Length
	}
	if o.Runs != 0 {
		c.Runs = o.Runs
	}
	if len(o.Scenarios) > 0 {
		c.Scenarios = o.Scenarios
	}
	if o.Output != "" {
		c.Output = o.Output
	}
}

func (c Config) withDefaults() Config {
	if c.Length == 0 {
		c.Length = defaultLength
	}
	if c.Runs == 0 {
		c.Runs = defaultRuns
	}
	if c.Output == "" {
		c.Output = "text"
	}
	return c
}

func (c Config) validate() error {
	switch {
	case c.Length < 0:
		return fmt.Errorf("%w: length must not be negative, got %d", ers.ErrMalformedConfiguration, c.Length)
	case c.Runs < 0:
		return fmt.Errorf("%w: runs must not be negative, got %d", ers.ErrMalformedConfiguration, c.Runs)
	case c.Output != "text" && c.Output != "json":
		return fmt.Errorf("%w: '%s' is not a valid output (one of text|json)", ers.ErrMalformedConfiguration, c.Output)
	}

	if _, err := selectScenarios(c.Scenarios); err != nil {
		return fmt.Errorf("%w: %w", ers.ErrMalformedConfiguration, err)
	}
	return nil
}

func logger(cfg Config, out io.Writer) (*slog.Logger, error) {
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	case "info", "":
		logLevel = slog.LevelInfo
	default:
		return nil, fmt.Errorf("'%s' is not a valid log level (one of debug|info|warn|error)", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "json":
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: logLevel,
		})), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: logLevel,
		})), nil
	default:
		return nil, fmt.Errorf("'%s' is not a valid log format (one of json|text)", cfg.LogFormat)
	}
}
