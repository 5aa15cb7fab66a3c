// Package detect maintains the catalog of known game descriptors and decides
// which of them are installed on this machine.
//
// Descriptors come from three sources loaded in order: the compiled catalog,
// a JSONC catalog file, and a supplemental TOML catalog file. A later entry
// with a duplicate game id replaces the earlier one, so data files can
// override compiled defaults. Bad entries are skipped individually; a reload
// never fails outright.
//
// Detection is filesystem-first (any candidate save path exists after
// placeholder expansion) with a best-effort platform registry fallback.
package detect
