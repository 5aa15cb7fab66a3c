// Package pathcodec converts between absolute filesystem paths and a portable
// representation using environment-variable placeholders.
//
// Contraction rewrites the longest matching environment-variable value as a
// placeholder (%VAR% on Windows, $VAR elsewhere) so a profile written on one
// machine resolves on another that shares the same variable convention.
// Expansion is deferred to point-of-use and never fails: placeholders that
// cannot be resolved stay in the string as literal text.
package pathcodec

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Expand substitutes environment-variable placeholders (%VAR%, $VAR, ${VAR})
// and a leading ~, then cleans the result. Placeholders that do not resolve
// are left as literal text. An empty input yields an empty string.
func Expand(portable string) string {
	if portable == "" {
		return ""
	}
	expanded := expandVars(portable)
	expanded = expandHome(expanded)
	return filepath.Clean(filepath.FromSlash(expanded))
}

// Contract rewrites the longest environment-variable value that is a prefix
// of abs as a placeholder. Candidate variables must have a resolved value of
// at least 4 characters that currently exists on disk; this avoids false
// positives from short or stale variables. If no variable matches, abs is
// returned unchanged.
func Contract(abs string) string {
	if abs == "" {
		return ""
	}

	abs, err := filepath.Abs(abs)
	if err != nil {
		return abs
	}

	type candidate struct {
		name  string
		value string
	}
	var candidates []candidate
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || len(value) < 4 {
			continue
		}
		resolved, err := filepath.Abs(value)
		if err != nil {
			continue
		}
		if _, err := os.Stat(resolved); err != nil {
			continue
		}
		candidates = append(candidates, candidate{name: name, value: resolved})
	}

	// Longest value first so the most specific variable wins; name as a
	// stable tiebreak.
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i].value) != len(candidates[j].value) {
			return len(candidates[i].value) > len(candidates[j].value)
		}
		return candidates[i].name < candidates[j].name
	})

	normAbs := normCase(abs)
	for _, c := range candidates {
		if !strings.HasPrefix(normAbs, normCase(c.value)) {
			continue
		}
		remaining := abs[len(c.value):]
		if remaining == "" {
			return placeholder(c.name)
		}
		if remaining[0] == os.PathSeparator {
			rest := strings.TrimLeft(remaining, string(os.PathSeparator))
			return filepath.Join(placeholder(c.name), rest)
		}
	}
	return abs
}

// CleanInput strips a file:// or file:/// URI prefix, trims surrounding
// whitespace, and normalizes path separators. Returns an empty string for
// empty input.
func CleanInput(raw string) string {
	if raw == "" {
		return ""
	}
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return ""
	}
	lower := strings.ToLower(clean)
	switch {
	case strings.HasPrefix(lower, "file:///"):
		clean = clean[8:]
	case strings.HasPrefix(lower, "file://"):
		clean = clean[7:]
	}
	return filepath.Clean(filepath.FromSlash(clean))
}

// placeholder renders an environment-variable reference in the platform's
// conventional syntax.
func placeholder(name string) string {
	if runtime.GOOS == "windows" {
		return "%" + name + "%"
	}
	return "$" + name
}

// normCase folds case on case-insensitive filesystems.
func normCase(p string) string {
	if runtime.GOOS == "windows" {
		return strings.ToLower(p)
	}
	return p
}

// expandVars resolves %VAR%, $VAR, and ${VAR} references against the
// environment. Unset variables and malformed references are copied through
// verbatim.
func expandVars(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		switch s[i] {
		case '%':
			end := strings.IndexByte(s[i+1:], '%')
			if end < 0 {
				b.WriteString(s[i:])
				return b.String()
			}
			name := s[i+1 : i+1+end]
			if value, ok := lookupVar(name); ok {
				b.WriteString(value)
			} else {
				b.WriteString(s[i : i+end+2])
			}
			i += end + 2
		case '$':
			name, width := parseDollarVar(s[i+1:])
			if name == "" {
				b.WriteByte(s[i])
				i++
				continue
			}
			if value, ok := lookupVar(name); ok {
				b.WriteString(value)
			} else {
				b.WriteString(s[i : i+1+width])
			}
			i += 1 + width
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// parseDollarVar reads a $NAME or ${NAME} reference starting right after the
// dollar sign. It returns the variable name and the number of consumed bytes;
// an empty name means the reference is malformed.
func parseDollarVar(s string) (name string, width int) {
	if s == "" {
		return "", 0
	}
	if s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", 0
		}
		inner := s[1:end]
		if inner == "" || !validVarName(inner) {
			return "", 0
		}
		return inner, end + 1
	}
	i := 0
	for i < len(s) && isVarByte(s[i]) {
		i++
	}
	if i == 0 {
		return "", 0
	}
	return s[:i], i
}

func validVarName(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isVarByte(s[i]) {
			return false
		}
	}
	return true
}

func isVarByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// lookupVar resolves an environment variable name, rejecting empty values so
// a placeholder never silently expands to nothing.
func lookupVar(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// expandHome rewrites a leading ~ to the user's home directory.
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	if p[1] == '/' || p[1] == os.PathSeparator {
		return filepath.Join(home, p[2:])
	}
	return p
}
