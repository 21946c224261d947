package ultrastar

// Option configures behavior when opening song files.
//
// Options use the functional options pattern:
//
//	song, err := ultrastar.Open("song.txt",
//	    ultrastar.WithEncoding("windows-1252"),
//	    ultrastar.WithStrictPaths(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening song files.
type openOptions struct {
	charset           string // Force a charset instead of detecting ("" = detect)
	keepRelativePaths bool   // Skip media reference resolution
	strictPaths       bool   // Fail Open when a reference cannot be resolved
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithEncoding forces a text encoding instead of detecting one.
//
// The name is any charset label the WHATWG encoding index knows, such as
// "utf-8", "iso-8859-1" or "windows-1252". Useful for files whose content
// is too short or too ambiguous for reliable detection.
func WithEncoding(name string) Option {
	return func(o *openOptions) {
		o.charset = name
	}
}

// WithKeepRelativePaths leaves media references exactly as written in the
// file instead of resolving them against the song's directory.
//
// Use this when the song will be re-saved next to its media, or when the
// caller does its own path handling.
func WithKeepRelativePaths() Option {
	return func(o *openOptions) {
		o.keepRelativePaths = true
	}
}

// WithStrictPaths makes Open fail with a ResolveError when a local media
// reference cannot be canonicalized, typically because the referenced file
// does not exist.
//
// By default such references are kept as written so that a song with a
// missing cover image still loads.
func WithStrictPaths() Option {
	return func(o *openOptions) {
		o.strictPaths = true
	}
}
