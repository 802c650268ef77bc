// Package cli parses command-line arguments, builds the logger and the
// planner, and maps failures to process exit codes.
package cli
