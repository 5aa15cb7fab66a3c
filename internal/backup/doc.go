// Package backup orchestrates backup and restore runs for profiles.
//
// A backup run validates the resolved save path, then archives it into the
// profile's backup directory under a timestamped filename. The source is
// never mutated.
//
// A restore run validates the selected archive, snapshots the current target
// content into the profile's Safety directory, optionally clears the target,
// and extracts the archive. The central correctness property is ordering:
// the safety snapshot always completes (or is correctly skipped when the
// target is missing or empty) before anything in the target is destroyed or
// overwritten.
//
// All operations are synchronous and blocking; the coordinator spawns no
// background workers and offers no cancellation.
package backup
