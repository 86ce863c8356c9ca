package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/giantswarm/procfiles"
)

// NewRootCommand returns the procfiles root command with every subcommand
// attached.
func NewRootCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "procfiles",
		Short: "Configuration and PID file helpers for daemons",
		Long: `procfiles parses simple key = value configuration files and manages
the <dir>/<program>.pid file of a running daemon.

Run 'procfiles config show FILE' to inspect a configuration file.
Run 'procfiles pid --help' to manage PID files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			procfiles.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")

	cmd.AddCommand(newConfigCommand())
	cmd.AddCommand(newPIDCommand())

	return cmd
}
