package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/giantswarm/procfiles"
)

// Output formats accepted by config show.
const (
	formatText = "text"
	formatYAML = "yaml"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration files",
	}
	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the parsed key/value pairs of a configuration file",
		Long: `Parse FILE and print its key/value pairs sorted by key.

Comment lines start with ';', '#' or '//'. Lines without '=' are ignored,
and a repeated key keeps its last value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := procfiles.LoadConfig(args[0])
			if err != nil {
				return err
			}
			return writeConfig(cmd.OutOrStdout(), cfg, format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", formatText, "Output format: text or yaml")

	return cmd
}

// writeConfig renders cfg to w in the given format.
func writeConfig(w io.Writer, cfg procfiles.Config, format string) error {
	switch format {
	case formatText:
		for _, k := range cfg.Keys() {
			if _, err := fmt.Fprintf(w, "%s = %s\n", k, cfg[k]); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]string(cfg)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatText, formatYAML)
	}
}
