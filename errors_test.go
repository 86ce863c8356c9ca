package procfiles_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/giantswarm/procfiles"
)

// allErrors lists every exported sentinel error.
var allErrors = []struct {
	name string
	err  error
}{
	{"ErrAlreadyRunning", procfiles.ErrAlreadyRunning},
	{"ErrConfigNotFound", procfiles.ErrConfigNotFound},
	{"ErrEmptyDir", procfiles.ErrEmptyDir},
	{"ErrEmptyPath", procfiles.ErrEmptyPath},
	{"ErrInvalidPID", procfiles.ErrInvalidPID},
	{"ErrNotFound", procfiles.ErrNotFound},
	{"ErrNotImplemented", procfiles.ErrNotImplemented},
}

// TestPublicErrorConstants verifies that every exported error constant has a
// message and matches itself directly and through wrapping.
func TestPublicErrorConstants(t *testing.T) {
	t.Parallel()

	for _, tc := range allErrors {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if tc.err == nil {
				t.Fatalf("%s is nil", tc.name)
			}
			if msg := tc.err.Error(); msg == "" {
				t.Errorf("%s.Error() returned empty string", tc.name)
			}
			if !errors.Is(tc.err, tc.err) {
				t.Errorf("errors.Is(%s, %s) = false, want true", tc.name, tc.name)
			}
			if wrapped := fmt.Errorf("wrapping: %w", tc.err); !errors.Is(wrapped, tc.err) {
				t.Errorf("errors.Is(wrapped %s) = false, want true", tc.name)
			}
		})
	}
}

// TestPublicErrorConstantsAreDistinct verifies that no two exported error
// constants match each other.
func TestPublicErrorConstantsAreDistinct(t *testing.T) {
	t.Parallel()

	for i, a := range allErrors {
		for _, b := range allErrors[i+1:] {
			if errors.Is(a.err, b.err) || errors.Is(b.err, a.err) {
				t.Errorf("%s and %s match each other: constants must be distinct", a.name, b.name)
			}
		}
	}
}
