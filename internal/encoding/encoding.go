// Package encoding turns the raw bytes of a song file into a clean string.
//
// Song files in the wild come in UTF-8, Latin-1, Windows code pages and the
// occasional UTF-16, usually without any declaration. This package sniffs
// the charset and decodes with substitution, so undecodable byte sequences
// become replacement runes instead of failing the whole read.
package encoding

import (
	"fmt"
	"os"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/simonhull/ultrastar/internal/types"
)

// ReadFile reads a song file and decodes it into a string.
//
// With charset "" the encoding is detected from the content; otherwise the
// named charset is used as-is. I/O failures are returned wrapped, detection
// and decoding failures as DetectionError and DecodeError, so callers can
// keep "bad file" apart from "bad content".
func ReadFile(path, charset string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read song file: %w", err)
	}
	return Decode(data, path, charset)
}

// Decode converts raw song bytes into a string using the given charset, or
// a detected one when charset is "".
func Decode(data []byte, path, charset string) (string, error) {
	if charset == "" {
		best, err := chardet.NewTextDetector().DetectBest(data)
		if err != nil {
			return "", &types.DetectionError{Path: path}
		}
		charset = best.Charset
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", &types.DecodeError{Path: path, Charset: charset, Err: err}
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		// Decoders substitute bad sequences rather than failing, so this
		// only fires on transformer-internal errors.
		return "", &types.DecodeError{Path: path, Charset: charset, Err: err}
	}

	return strings.TrimPrefix(string(decoded), "\ufeff"), nil
}
