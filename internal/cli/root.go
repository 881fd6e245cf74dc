// Package cli implements the explorer command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/p3rf/explorer/internal/paths"
	"github.com/p3rf/explorer/internal/sidebar"
	"github.com/p3rf/explorer/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by the command tree to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// rootOptions holds global flag values and the state PersistentPreRunE loads
// for subcommands.
type rootOptions struct {
	configDir string
	logLevel  string
	jsonMode  bool

	cfg types.Config
	log *logrus.Logger
}

// NewRootCmd creates the top-level "explorer" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{log: logrus.New()}

	root := &cobra.Command{
		Use:   "explorer",
		Short: "Migrate dashboard documents and drive the explorer sidebar",
		Long: "explorer brings dashboard configuration documents to the latest schema\n" +
			"version and replays sidebar tab navigation against the configured catalog.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/explorer)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default: config log_level)")
	root.PersistentFlags().BoolVar(&opts.jsonMode, "json", false, "output as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newMigrateCmd(opts))
	root.AddCommand(newVerifyCmd(opts))
	root.AddCommand(newTabsCmd(opts))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// load reads config.yaml and configures logging. The version command needs
// neither.
func (o *rootOptions) load(cmd *cobra.Command) error {
	o.log.SetOutput(cmd.ErrOrStderr())
	o.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(o.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	o.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return userError(err)
	}
	o.cfg = cfg

	level := cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return userError(fmt.Errorf("log level: %w", err))
	}
	o.log.SetLevel(lvl)
	return nil
}

// catalog builds the tab catalog from config, falling back to the built-in
// explorer tabs.
func (o *rootOptions) catalog() (*sidebar.Catalog, error) {
	tabs := o.cfg.Tabs
	if len(tabs) == 0 {
		tabs = sidebar.DefaultTabs()
	}
	c, err := sidebar.NewCatalog(tabs)
	if err != nil {
		return nil, userError(fmt.Errorf("tab catalog: %w", err))
	}
	return c, nil
}
