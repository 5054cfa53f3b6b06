// Package cli implements the nodelist command-line interface.
// The root command runs the scenario; positional arguments are accepted
// and ignored.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/nodelist/internal/app"
	"github.com/mesh-intelligence/nodelist/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile string
	output     string
	items      int
	arenaLimit int
	logLevel   string
}

var (
	flags rootFlags

	// cfg is the effective configuration, loaded before any command runs.
	cfg types.Config

	// logger writes structured logs to stderr.
	logger *zap.Logger
)

// NewRootCmd creates the top-level "nodelist" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	def := types.DefaultConfig()

	root := &cobra.Command{
		Use:   "nodelist",
		Short: "Sort a generated array and print a node list",
		Long: "nodelist fills an integer array with i*i+i, sorts it with a three-way\n" +
			"comparator, then builds a singly linked list of nodes and prints it.",
		Args: cobra.ArbitraryArgs,
		// Do not print usage on errors returned by the run.
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runScenario,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "optional YAML config file")
	pf.StringVarP(&flags.output, "output", "o", def.Output, "output format: text, json or yaml")
	pf.IntVar(&flags.items, "items", def.Items, "number of integers to generate and sort")
	pf.IntVar(&flags.arenaLimit, "arena-limit", def.ArenaLimit, "maximum live nodes (0 = unbounded)")
	pf.StringVar(&flags.logLevel, "log-level", def.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a run error to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrAllocation):
		return exitSysError
	default:
		return exitUserError
	}
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	// Skip init for version command
	if cmd.Name() == "version" {
		return nil
	}

	loaded, err := loadConfig(flags.configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	logger, err = newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	runID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}
	log := logger.With(zap.String("run_id", runID.String()))
	if len(args) > 0 {
		log.Debug("ignoring positional arguments", zap.Strings("args", args))
	}

	runner, err := app.NewRunner(cfg, cmd.OutOrStdout(), log)
	if err != nil {
		return err
	}
	if err := runner.Run(cmd.Context()); err != nil {
		log.Error("run failed", zap.Stringer("state", runner.State()), zap.Error(err))
		return err
	}
	log.Info("run complete", zap.Stringer("state", runner.State()))
	return nil
}
