// Package txt implements the UltraStar song text format: parsing the header
// block and lyric body into the song model, and generating canonical text
// back from it.
//
// Both directions are pure functions over in-memory strings. File access,
// encoding detection and media path resolution live in the importing package
// and in internal/encoding and internal/songpath.
package txt

import "strings"

// splitLines splits text on '\n', dropping a trailing '\r' from each line so
// Unix and Windows line endings parse identically. A final newline does not
// produce an empty trailing line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
