package pidfile

import (
	"os"
	"strings"
	"testing"
)

func TestProgramName(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args []string
		want string
	}{
		"absolute path": {args: []string{"/usr/local/bin/agent", "-v"}, want: "agent"},
		"relative path": {args: []string{"./bin/agent"}, want: "agent"},
		"bare name":     {args: []string{"agent"}, want: "agent"},
		"script name":   {args: []string{"/opt/app/main.js"}, want: "main.js"},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := ProgramName(tc.args); got != tc.want {
				t.Errorf("ProgramName(%q) = %q, want %q", tc.args, got, tc.want)
			}
		})
	}
}

func TestProgramName_FallsBackToExecutable(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{nil, {""}, {"/"}, {`bin\agent`}} {
		got := ProgramName(args)
		if got == "" || got == "." || strings.ContainsAny(got, `/\`) {
			t.Errorf("ProgramName(%q) = %q, want a usable name", args, got)
		}
	}
}

func TestCurrentIdentity(t *testing.T) {
	t.Parallel()

	id := CurrentIdentity()
	if id.PID != os.Getpid() {
		t.Errorf("PID = %d, want %d", id.PID, os.Getpid())
	}
	if id.Program != ProgramName(os.Args) {
		t.Errorf("Program = %q, want %q", id.Program, ProgramName(os.Args))
	}
}
