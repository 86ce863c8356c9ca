package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/giantswarm/procfiles"
	"github.com/giantswarm/procfiles/internal/fileutil"
	"github.com/giantswarm/procfiles/internal/sentinel"
)

// ErrNotRunning is returned by pid status when no live process owns the PID
// file, so that the command exits non-zero.
const ErrNotRunning = sentinel.Error("process is not running")

const defaultLockTimeout = 10 * time.Second

// pidFlags holds the flags shared by the pid subcommands.
type pidFlags struct {
	dir     string
	name    string
	pid     int
	timeout time.Duration
	mkdir   bool
}

func (f *pidFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "dir", "", "Directory holding the PID file (required)")
	cmd.Flags().StringVar(&f.name, "name", "", "Program name used as the PID file stem (default: base name of this binary)")
	_ = cmd.MarkFlagRequired("dir")
}

func (f *pidFlags) registerTimeout(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&f.timeout, "timeout", defaultLockTimeout, "How long to wait for the PID lock")
}

// pidFile builds a PIDFile from the flags. Invalid flag values are returned
// as errors; the option constructors would panic on them.
//
//nolint:ireturn // PIDFile is the only public handle.
func (f *pidFlags) pidFile() (procfiles.PIDFile, error) {
	var opts []procfiles.PIDOption
	if f.name != "" {
		if strings.ContainsAny(f.name, `/\`) {
			return nil, fmt.Errorf("--name %q must not contain path separators", f.name)
		}
		opts = append(opts, procfiles.WithProgramName(f.name))
	}
	if f.pid < 0 {
		return nil, fmt.Errorf("--pid must not be negative, got %d", f.pid)
	}
	if f.pid > 0 {
		opts = append(opts, procfiles.WithPID(f.pid))
	}
	return procfiles.NewPIDFile(opts...), nil
}

// lockContext bounds ctx by the --timeout flag.
func (f *pidFlags) lockContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, f.timeout)
}

func newPIDCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pid",
		Short: "Manage <dir>/<program>.pid files",
	}
	cmd.AddCommand(newPIDPathCommand())
	cmd.AddCommand(newPIDCreateCommand())
	cmd.AddCommand(newPIDRemoveCommand())
	cmd.AddCommand(newPIDStatusCommand())
	return cmd
}

func newPIDPathCommand() *cobra.Command {
	var f pidFlags
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the PID file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pf, err := f.pidFile()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pf.Path(f.dir))
			return err
		},
	}
	f.register(cmd)
	return cmd
}

func newPIDCreateCommand() *cobra.Command {
	var f pidFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write the PID file, failing if one is already present",
		Long: `Write the process id to <dir>/<name>.pid and print the file's path.

The pid defaults to the parent of procfiles, which is the shell script that
invoked it. With --mkdir the directory is created first. The command fails,
leaving the file untouched, when a PID file is already present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.pid == 0 {
				f.pid = os.Getppid()
			}
			pf, err := f.pidFile()
			if err != nil {
				return err
			}
			if f.mkdir && f.dir != "" {
				if err := fileutil.EnsureDirForFile(pf.Path(f.dir)); err != nil {
					return err
				}
			}
			ctx, cancel := f.lockContext(cmd.Context())
			defer cancel()

			path, err := pf.Create(ctx, f.dir)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	f.register(cmd)
	f.registerTimeout(cmd)
	cmd.Flags().IntVar(&f.pid, "pid", 0, "Process id to write (default: parent process)")
	cmd.Flags().BoolVar(&f.mkdir, "mkdir", false, "Create --dir and its parents if missing")
	return cmd
}

func newPIDRemoveCommand() *cobra.Command {
	var f pidFlags
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete the PID file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pf, err := f.pidFile()
			if err != nil {
				return err
			}
			ctx, cancel := f.lockContext(cmd.Context())
			defer cancel()

			removed, err := pf.Remove(ctx, f.dir)
			if err != nil {
				return err
			}
			status := "absent"
			if removed {
				status = "removed"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), status)
			return err
		},
	}
	f.register(cmd)
	f.registerTimeout(cmd)
	return cmd
}

func newPIDStatusCommand() *cobra.Command {
	var f pidFlags
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether the process in the PID file is alive",
		Long: `Print "running <pid>", "stale <pid>" or "absent". The command exits
non-zero unless the process is running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pf, err := f.pidFile()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			pid, running, err := pf.Running(f.dir)
			switch {
			case errors.Is(err, procfiles.ErrNotFound):
				if _, err := fmt.Fprintln(out, "absent"); err != nil {
					return err
				}
				return ErrNotRunning
			case err != nil:
				return err
			case !running:
				if _, err := fmt.Fprintf(out, "stale %d\n", pid); err != nil {
					return err
				}
				return fmt.Errorf("pid %d: %w", pid, ErrNotRunning)
			}
			_, err = fmt.Fprintf(out, "running %d\n", pid)
			return err
		},
	}
	f.register(cmd)
	return cmd
}
