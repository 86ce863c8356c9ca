// Package cli implements the procfiles command line: inspecting
// configuration files and managing PID files from shell scripts.
package cli
