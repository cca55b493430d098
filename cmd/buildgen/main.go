// cmd/buildgen/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/julianshen/buildgen/internal/config"
	"github.com/julianshen/buildgen/internal/logging"
	"github.com/julianshen/buildgen/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath  string
	envFile     string
	logFile     string
	verboseFlag bool
	jsonLogs    bool
	demoFlag    bool
)

// errNotTerminal is returned when the interactive UI is requested without a TTY.
var errNotTerminal = errors.New("stdout is not a terminal; use `buildgen generate` for non-interactive output")

func versionString() string {
	return fmt.Sprintf("buildgen %s (commit: %s, built: %s)", version, commit, date)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "buildgen",
		Short: "Generate tailored product ideas for your next build",
		Long: `buildgen walks you through three questions (space, vibe and time) and
composes a product idea with a stack, diagrams, build plan and go-to-market notes.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := setupLogging(cmd)
			if err != nil {
				return err
			}
			logCloser = c
			return config.LoadDotEnv(envFile)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInteractive()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the config")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "write logs as JSON")
	rootCmd.Flags().BoolVar(&demoFlag, "demo", false, "open on a sample idea instead of the first question")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(optionsCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(configCmd())

	return rootCmd
}

// setupLogging installs the default logger. The interactive UI owns the
// terminal, so without --log-file it discards logs rather than writing to
// stderr. The returned closer, if any, releases the log file.
func setupLogging(cmd *cobra.Command) (io.Closer, error) {
	opts := logging.Options{Verbose: verboseFlag, JSON: jsonLogs}

	if logFile != "" {
		f, err := logging.OpenFile(logFile)
		if err != nil {
			return nil, err
		}
		logging.Setup(f, opts)
		return f, nil
	}

	var w io.Writer = os.Stderr
	if !cmd.HasParent() || cmd.Name() == "config" {
		w = io.Discard
	}
	logging.Setup(w, opts)
	return nil, nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func loadConfig() (*config.Config, error) {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	slog.Debug("config loaded", "path", cfgPath)
	return cfg, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runInteractive() error {
	if !isTerminal() {
		return errNotTerminal
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model := tui.NewModel(cfg, demoFlag)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
