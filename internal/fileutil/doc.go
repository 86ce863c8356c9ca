// Package fileutil is the file store used by procfiles.
//
// Stat reports a tri-state existence result, ReadFile separates "not found"
// from other read failures, WriteFile truncates (optionally through a temp
// file and rename, or exclusively with O_EXCL), and Appender performs
// fire-and-forget appends whose failures are collected for a later Wait.
// EnsureDir and EnsureDirForFile prepare directories for PID and config files.
package fileutil
