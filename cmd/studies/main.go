package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/treykane/cli-studies/internal/app"
	"github.com/treykane/cli-studies/internal/config"
	"github.com/treykane/cli-studies/internal/layout"
	"github.com/treykane/cli-studies/internal/logging"
)

var (
	version = "dev"  // set with -ldflags "-X main.version=..."
	commit  = "none" // git commit SHA
)

var log = logging.New("main")

const logFileName = "studies.log"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	logFile    string
	layout     string
	noMouse    bool
	verbose    bool
}

// store opens the config file named by --config, or the default one.
func (o *rootOptions) store() (*config.Store, error) {
	if o.configPath != "" {
		return config.NewStore(afero.NewOsFs(), o.configPath), nil
	}
	return config.DefaultStore()
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "studies",
		Short:        "Browse imaging studies in the terminal",
		Long:         "studies lists mock imaging studies, filters them, and opens a study in a viewer with a configurable viewport layout.",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logging.SetLevel(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd.Context(), opts)
		},
	}
	root.SetOut(out)
	root.SetVersionTemplate(fmt.Sprintf("studies %s\ncommit: %s\n", version, commit))

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.cli-studies/config.yaml)")
	root.Flags().StringVar(&opts.layout, "layout", "", "initial viewer layout preset, e.g. 2x2 or mpr")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse tracking")
	root.Flags().StringVar(&opts.logFile, "log-file", "", "log file while the browser runs (default studies.log next to the config file)")

	root.AddCommand(newConfigCmd(opts))
	return root
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			exists, err := store.Exists()
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", store.Path())
			}
			if err := store.Save(config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", store.Path())
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

// logFilePath resolves where logs go while the browser owns the terminal.
func logFilePath(opts *rootOptions) (string, error) {
	if opts.logFile != "" {
		return opts.logFile, nil
	}
	store, err := opts.store()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(store.Path()), logFileName), nil
}

// redirectLogs points every logger at the log file and returns a function
// that restores the previous destination.
func redirectLogs(opts *rootOptions) (func(), error) {
	path, err := logFilePath(opts)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "studies")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	prev := logging.SetOutput(f)
	return func() {
		logging.SetOutput(prev)
		_ = f.Close()
	}, nil
}

// loadSettings reads the config file and resolves the initial layout. A
// --layout flag wins over the config file.
func loadSettings(opts *rootOptions) (config.Config, layout.Preset, error) {
	store, err := opts.store()
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := store.LoadOrDefault()
	if err != nil {
		return config.Config{}, "", err
	}
	if opts.layout == "" {
		return cfg, cfg.Layout(), nil
	}
	preset, err := layout.ParsePreset(opts.layout)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("--layout: %w", err)
	}
	return cfg, preset, nil
}

func runBrowser(ctx context.Context, opts *rootOptions) error {
	cfg, preset, err := loadSettings(opts)
	if err != nil {
		return err
	}
	m, err := app.New(app.Options{Config: cfg, Layout: preset})
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !opts.noMouse && !cfg.DisableMouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	restore, err := redirectLogs(opts)
	if err != nil {
		log.Warn("discarding logs while the browser runs", "error", err)
		prev := logging.SetOutput(nil)
		restore = func() { logging.SetOutput(prev) }
	}
	defer restore()
	log.Debug("starting browser", "layout", preset, "mouse", !opts.noMouse && !cfg.DisableMouse, "log_level", logging.Level().String())

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
