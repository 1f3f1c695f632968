// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "/absolute/path.css" -> true (absolute)
//   - "my-style" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS returns true if the string looks like inline CSS content rather
// than a style name or path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}

// ReplaceExt returns path with its extension replaced by ext.
// ext should include the leading dot. A path with no extension gets ext
// appended.
func ReplaceExt(path, ext string) string {
	if idx := strings.LastIndexByte(path, '.'); idx > strings.LastIndexAny(path, `/\`) {
		return path[:idx] + ext
	}
	return path + ext
}
