// Package songpath classifies and resolves the media references a song
// header carries: audio, video, cover and background paths that may be
// written relative to the song file, absolute, or remote URIs.
package songpath

import (
	"path/filepath"
	"strings"
)

// IsLocal reports whether ref refers to the local filesystem.
//
// A reference is local unless it contains a "://" scheme separator for a
// scheme other than file. Bare relative paths, absolute paths and file://
// references are all local.
func IsLocal(ref string) bool {
	if strings.Contains(ref, "://") && !strings.HasPrefix(ref, "file://") {
		return false
	}
	return true
}

// Resolve canonicalizes a media reference against the directory holding the
// song file.
//
// Remote references and absolute file:/// URIs pass through unchanged. A
// local reference (with any bare file:// prefix stripped) is joined against
// baseDir when relative, then canonicalized to an absolute path with
// symlinks resolved. The referenced file must exist for canonicalization to
// succeed.
func Resolve(ref, baseDir string) (string, error) {
	if !IsLocal(ref) || strings.HasPrefix(ref, "file:///") {
		return ref, nil
	}

	path := strings.TrimPrefix(ref, "file://")
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
