package ultrastar

import (
	"github.com/simonhull/ultrastar/internal/types"
)

// DuplicateHeaderError reports a header tag that appears more than once.
type DuplicateHeaderError = types.DuplicateHeaderError

// MissingEssentialError reports absent essential header tags.
type MissingEssentialError = types.MissingEssentialError

// ValueError reports a field that failed to parse or violated a constraint.
type ValueError = types.ValueError

// UnknownNoteTypeError reports a note line with an unrecognized sigil.
type UnknownNoteTypeError = types.UnknownNoteTypeError

// ParseFailureError reports a body line matching no known form.
type ParseFailureError = types.ParseFailureError

// MissingEndError reports a song body without an 'E' terminator.
type MissingEndError = types.MissingEndError

// NotImplementedError reports use of an intentionally unsupported feature.
type NotImplementedError = types.NotImplementedError

// InvalidPathEncodingError is reserved for generator-side path validation.
type InvalidPathEncodingError = types.InvalidPathEncodingError

// DetectionError reports a file whose text encoding could not be detected.
type DetectionError = types.DetectionError

// DecodeError reports a file that failed to decode in its charset.
type DecodeError = types.DecodeError

// ResolveError reports a media reference that could not be canonicalized.
type ResolveError = types.ResolveError
