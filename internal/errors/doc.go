// Package errors provides error handling conventions for the backupseeker CLI.
//
// It re-exports the cockroachdb/errors helpers used throughout the codebase,
// defines exit code constants following standard Unix conventions, and an
// [ExitError] type that carries an exit code and an optional suggestion to
// print alongside the error message.
//
// Failure conditions specific to one subsystem (missing backup source,
// empty source directory, corrupted archive, ...) are defined as sentinel
// errors in the package that owns them, not here.
package errors
