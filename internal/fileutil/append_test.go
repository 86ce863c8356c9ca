package fileutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendFile(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		initial *string
		chunks  []string
		want    string
	}{
		"creates missing file": {
			chunks: []string{"first\n"},
			want:   "first\n",
		},
		"appends to existing": {
			initial: ptr("head\n"),
			chunks:  []string{"a\n", "b\n"},
			want:    "head\na\nb\n",
		},
		"empty chunk": {
			initial: ptr("x"),
			chunks:  []string{""},
			want:    "x",
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			path := filepath.Join(dir, "app.log")
			if tc.initial != nil {
				createTestFile(t, dir, "app.log", *tc.initial)
			}

			for _, c := range tc.chunks {
				if err := AppendFile(path, c, DefaultFileMode); err != nil {
					t.Fatalf("AppendFile() error: %v", err)
				}
			}

			if got := readBack(t, path); got != tc.want {
				t.Errorf("content = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAppendFile_EmptyPath(t *testing.T) {
	t.Parallel()

	if err := AppendFile("", "x", DefaultFileMode); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("error = %v, want %v", err, ErrEmptyPath)
	}
}

func TestAppender_AppendThenWait(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "app.log")

	a := NewAppender(nil, 0)
	const lines = 20
	for i := 0; i < lines; i++ {
		a.Append(path, fmt.Sprintf("line-%02d\n", i))
	}

	if err := a.Wait(); err != nil {
		t.Fatalf("Wait() error: %v", err)
	}

	got := readBack(t, path)
	// Ordering between concurrent appends is not guaranteed; every line must
	// be present exactly once and no write may be torn.
	for i := 0; i < lines; i++ {
		want := fmt.Sprintf("line-%02d\n", i)
		if n := strings.Count(got, want); n != 1 {
			t.Errorf("line %q appears %d times, want 1", want, n)
		}
	}
	if n := strings.Count(got, "\n"); n != lines {
		t.Errorf("got %d lines, want %d", n, lines)
	}
}

func TestAppender_FailureOnlyVisibleThroughWait(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	a := NewAppender(nil, DefaultFileMode)
	// Append has no return value: the failure below cannot reach the caller.
	a.Append(filepath.Join(dir, "missing", "app.log"), "lost\n")
	a.Append(filepath.Join(dir, "ok.log"), "kept\n")

	if err := a.Wait(); err == nil {
		t.Fatal("expected Wait to report the failed append")
	}
	if got := readBack(t, filepath.Join(dir, "ok.log")); got != "kept\n" {
		t.Errorf("content = %q, want %q", got, "kept\n")
	}
}

func TestAppender_WaitScopesFailuresToBatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	a := NewAppender(nil, DefaultFileMode)
	a.Append(filepath.Join(dir, "missing", "app.log"), "lost\n")
	if err := a.Wait(); err == nil {
		t.Fatal("first Wait() should report the failed append")
	}

	a.Append(filepath.Join(dir, "ok.log"), "kept\n")
	if err := a.Wait(); err != nil {
		t.Errorf("second Wait() error = %v, want nil: failures must not carry over", err)
	}
}

func TestAppender_WaitWithNothingPending(t *testing.T) {
	t.Parallel()

	if err := NewAppender(nil, 0).Wait(); err != nil {
		t.Errorf("Wait() error = %v, want nil", err)
	}
}

func ptr(s string) *string { return &s }
