package types

import (
	"fmt"
	"strings"
)

// DuplicateHeaderError is returned when a header tag appears more than once.
//
// Tag is the recognized tag name, or "UNKNOWN" when an unrecognized tag
// repeats. Line is the 1-based line of the second occurrence.
type DuplicateHeaderError struct {
	Line int
	Tag  string
}

func (e *DuplicateHeaderError) Error() string {
	return fmt.Sprintf("line %d: additional %s tag found", e.Line, e.Tag)
}

// MissingEssentialError is returned when the header block lacks one of the
// essential tags (TITLE, ARTIST, BPM, MP3).
type MissingEssentialError struct {
	// Missing lists the absent essential tags in canonical order.
	Missing []string
}

func (e *MissingEssentialError) Error() string {
	if len(e.Missing) == 0 {
		return "essential header tag is missing"
	}
	return fmt.Sprintf("essential header tag missing: %s", strings.Join(e.Missing, ", "))
}

// ValueError is returned when a field on a line fails to parse or violates
// a field constraint (negative note duration, player number out of range).
type ValueError struct {
	Line  int
	Field string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("line %d: could not parse %s", e.Line, e.Field)
}

// UnknownNoteTypeError is returned when a note line carries a sigil other
// than ':', '*' or 'F'.
type UnknownNoteTypeError struct {
	Line int
}

func (e *UnknownNoteTypeError) Error() string {
	return fmt.Sprintf("line %d: unknown note type", e.Line)
}

// ParseFailureError is returned when a body line matches no known form.
type ParseFailureError struct {
	Line int
}

func (e *ParseFailureError) Error() string {
	return fmt.Sprintf("line %d: could not parse line", e.Line)
}

// MissingEndError is returned when the body never reaches an 'E' terminator.
type MissingEndError struct{}

func (e *MissingEndError) Error() string {
	return "missing end indicator"
}

// NotImplementedError is returned when the file uses a feature this package
// intentionally does not support, such as variable BPM.
type NotImplementedError struct {
	Line    int
	Feature string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("line %d: the feature %q is not implemented", e.Line, e.Feature)
}

// InvalidPathEncodingError is reserved for generator-side validation of path
// tags. No current code path raises it.
type InvalidPathEncodingError struct {
	Tag string
}

func (e *InvalidPathEncodingError) Error() string {
	return fmt.Sprintf("invalid path encoding on tag %s", e.Tag)
}

// DetectionError is returned by the loader when no usable text encoding
// could be detected for a file. Distinct from parse errors so callers can
// tell a bad file from bad content.
type DetectionError struct {
	Path string
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("%s: could not detect text encoding", e.Path)
}

// DecodeError is returned by the loader when the detected or requested
// charset failed to decode the file contents.
type DecodeError struct {
	Path    string
	Charset string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding as %s failed: %v", e.Path, e.Charset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ResolveError is returned by the loader when a local media reference could
// not be canonicalized against the song's directory.
type ResolveError struct {
	Path string
	Tag  string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: resolving %s reference failed: %v", e.Path, e.Tag, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
