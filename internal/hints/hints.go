// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to
// error messages.
package hints

import "strings"

// ForSourceNotFound returns hints for a missing input file.
func ForSourceNotFound() string {
	return format("check the path; input must be an existing .md or .markdown file")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml")
}

// ForOutputWrite returns hints for output write errors.
func ForOutputWrite() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
