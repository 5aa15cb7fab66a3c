// Package logging provides structured logging for the backupseeker CLI.
//
// It builds on log/slog with two output modes: a TTY-optimized text handler
// with color support (the default) and a JSON handler for machine
// consumption. Color output is automatically disabled when stderr is not a
// terminal, when NO_COLOR is set, or when TERM=dumb.
//
// Use [New] with a [Config] to construct a logger, [Default] for the standard
// CLI logger, [NewDiscard] for quiet mode, and [ForTest] inside tests.
package logging
