// Package sentinel provides a string-backed error type so that procfiles'
// sentinel errors (ErrNotFound, ErrAlreadyRunning, ...) can be declared as
// constants instead of reassignable errors.New variables.
package sentinel
