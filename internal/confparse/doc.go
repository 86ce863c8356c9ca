// Package confparse parses the line-oriented key=value configuration format.
//
// Lines are split on LF. Each line is trimmed; blank lines and lines whose
// first characters are ";", "#" or "//" are skipped, as are lines without
// "=". The key is the text before the first "=", trimmed on both sides. The
// value is everything after it, with "=" characters preserved, trimmed only
// at its outer edges. A later occurrence of a key replaces an earlier one.
//
// No validation of keys or values is performed.
//
// Load reads and parses a file, failing with ErrConfigNotFound when it is
// missing. Save is a stub that only logs and returns ErrNotImplemented.
package confparse
