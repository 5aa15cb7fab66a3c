// Package profile owns the durable record of backup profiles and application
// settings.
//
// The [Store] is the sole writer of the persisted configuration file. Writes
// are atomic (temp file + rename) so a failed save never corrupts the
// previous good file, and load failures are recovered locally: a corrupt file
// is quarantined with a .corrupted suffix and the store starts empty.
//
// Save paths are kept in portable form (environment-variable placeholders)
// and expanded only at use time. File patterns are intentionally not
// persisted; they reset to the match-everything default on every load.
package profile
