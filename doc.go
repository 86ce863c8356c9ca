// Package procfiles provides the file plumbing a long-running host process
// needs: safe file access, a PID file marking the running instance, and a
// lightweight key=value configuration format.
//
// # Configuration
//
//	cfg, err := procfiles.LoadConfig("/etc/agent/agent.conf")
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, procfiles.ErrConfigNotFound) when missing
//	}
//	addr := cfg.Get("listen", ":8080")
//
// The format is line based. Blank lines and lines starting with ";", "#" or
// "//" are ignored, every other line with an "=" is "key = value". Values may
// contain "=" themselves; only the first one separates the key.
//
// # PID files
//
//	pid := procfiles.NewPIDFile()
//	path, err := pid.Create(ctx, "/var/run")
//	if errors.Is(err, procfiles.ErrAlreadyRunning) {
//	    log.Fatal("another instance is running")
//	}
//	defer pid.Remove(ctx, "/var/run")
//
// The PID file is <dir>/<program>.pid, where program is the base name of
// os.Args[0] unless overridden with WithProgramName. Create never
// overwrites an existing PID file.
//
// # Files
//
// Stat distinguishes "absent" from "could not check", Read distinguishes
// ErrNotFound from other read failures, Write reports its errors, and Append
// is fire-and-forget: failures are logged and surface only through Flush.
package procfiles
