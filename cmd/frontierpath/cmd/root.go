package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontierpath/config"
	"github.com/katalvlaran/frontierpath/obslog"
)

var (
	cfgFile       string
	logLevelFlag  string
	logFormatFlag string

	cfg   *config.Config
	log   obslog.Logger
	runID string
)

// rootCmd is the base command; subcommands attach themselves via init().
var rootCmd = &cobra.Command{
	Use:   "frontierpath",
	Short: "Enumerate simple s-t paths in a graph as a compressed ZDD",
	Long: `frontierpath builds a Zero-suppressed Decision Diagram that
represents every simple path between two vertices of an undirected graph,
using the frontier method: edges are processed one at a time and the live
node set at each step is merged down to its distinct frontier-equivalent
states, never enumerating paths individually.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevelFlag != "" {
			loaded.Log.Level = logLevelFlag
		}
		if logFormatFlag != "" {
			loaded.Log.Format = logFormatFlag
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		runID = uuid.New().String()
		log = obslog.New(os.Stderr, obslog.ParseLevel(cfg.Log.Level), obslog.ParseFormat(cfg.Log.Format)).
			With("run_id", runID)

		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure. Cobra has already printed the error by the time this returns.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "override log.level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "override log.format (text|json)")
}
