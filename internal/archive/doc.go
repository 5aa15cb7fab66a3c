// Package archive creates and extracts zip archives of a directory tree.
//
// Archives preserve paths relative to the source directory. Extraction never
// writes outside the destination: an entry whose resolved path escapes the
// destination directory is rejected with [ErrExtractionFailed]. [Validate]
// performs the same entry check without writing anything, so callers can
// refuse a bad archive before taking any destructive action.
//
// Archive filenames embed a sortable timestamp ([TimestampLayout]) so lexical
// and chronological ordering coincide.
package archive
