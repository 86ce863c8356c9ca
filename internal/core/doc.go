// Package core holds state shared by every procfiles package, currently the
// package-level logger.
package core
