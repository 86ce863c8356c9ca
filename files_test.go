package procfiles_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/giantswarm/procfiles"
)

func TestStat(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tests := map[string]struct {
		path      string
		wantState procfiles.ExistState
		wantErr   bool
	}{
		"file":         {path: file, wantState: procfiles.PathExists},
		"directory":    {path: dir, wantState: procfiles.PathExists},
		"missing":      {path: filepath.Join(dir, "missing"), wantState: procfiles.PathAbsent},
		"empty path":   {path: "", wantState: procfiles.PathCheckError, wantErr: true},
		"below a file": {path: filepath.Join(file, "child"), wantState: procfiles.PathCheckError, wantErr: true},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			state, err := procfiles.Stat(tc.path)
			if state != tc.wantState {
				t.Errorf("Stat(%q) state = %v, want %v", tc.path, state, tc.wantState)
			}
			if (err != nil) != tc.wantErr {
				t.Errorf("Stat(%q) error = %v, wantErr %v", tc.path, err, tc.wantErr)
			}
		})
	}
}

func TestExists(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if !procfiles.Exists(file) {
		t.Errorf("Exists(%q) = false, want true", file)
	}
	if procfiles.Exists(filepath.Join(dir, "missing")) {
		t.Error("Exists(missing) = true, want false")
	}
	if procfiles.Exists("") {
		t.Error(`Exists("") = true, want false`)
	}
}

func TestReadWrite(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "data.txt")

	if err := procfiles.Write(path, "first"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := procfiles.Write(path, "2nd"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := procfiles.Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != "2nd" {
		t.Errorf("Read() = %q, want %q (Write must truncate)", got, "2nd")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm&^procfiles.DefaultFileMode != 0 {
		t.Errorf("mode = %v, must not exceed %v", perm, procfiles.DefaultFileMode)
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := procfiles.Read(filepath.Join(dir, "missing"))
	if !errors.Is(err, procfiles.ErrNotFound) {
		t.Errorf("Read(missing) error = %v, want %v", err, procfiles.ErrNotFound)
	}

	_, err = procfiles.Read(dir)
	if err == nil {
		t.Fatal("Read(directory) error = nil, want error")
	}
	if errors.Is(err, procfiles.ErrNotFound) {
		t.Errorf("Read(directory) error = %v, must not match %v", err, procfiles.ErrNotFound)
	}
}

func TestWrite_MissingParent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt")

	if err := procfiles.Write(path, "x"); err == nil {
		t.Fatal("Write() into missing directory error = nil, want error")
	}
	if procfiles.Exists(path) {
		t.Error("file exists after failed Write")
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "state.txt")

	for _, content := range []string{"one", "two"} {
		if err := procfiles.WriteAtomic(path, content); err != nil {
			t.Fatalf("WriteAtomic(%q) error: %v", content, err)
		}
		got, err := procfiles.Read(path)
		if err != nil {
			t.Fatalf("Read() error: %v", err)
		}
		if got != content {
			t.Errorf("Read() = %q, want %q", got, content)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, want only state.txt", names)
	}
}

// TestAppendFlush shares the package-level appender, so it does not run in
// parallel with other tests that call Flush.
func TestAppendFlush(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")

	procfiles.Append(path, "a\n")
	if err := procfiles.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	procfiles.Append(path, "b\n")
	if err := procfiles.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	got, err := procfiles.Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != "a\nb\n" {
		t.Errorf("Read() = %q, want %q", got, "a\nb\n")
	}

	bad := filepath.Join(dir, "missing", "log.txt")
	procfiles.Append(bad, "lost")
	if err := procfiles.Flush(); err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("Flush() error = %v, want failure naming %q", err, bad)
	}

	if err := procfiles.Flush(); err != nil {
		t.Errorf("Flush() after a reported failure = %v, want nil", err)
	}
}
