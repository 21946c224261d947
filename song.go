package ultrastar

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/ultrastar/internal/encoding"
	"github.com/simonhull/ultrastar/internal/songpath"
	"github.com/simonhull/ultrastar/internal/txt"
	"github.com/simonhull/ultrastar/internal/types"
)

// Song is a parsed song file: its header and lyric lines.
type Song struct {
	// Path the song was loaded from. Empty for songs built with Parse or
	// constructed in memory.
	Path string

	// Header metadata.
	Header Header

	// Lines in song order. The first line is implicit (no break marker,
	// start 0); every following line was opened by a break marker.
	Lines []Line
}

// Parse parses song text into a Song.
//
// Parse is pure: no file access, no encoding detection, and media
// references stay exactly as written. Use Open to load from disk with the
// full loader behavior.
func Parse(text string) (*Song, error) {
	header, err := txt.ParseHeader(text)
	if err != nil {
		return nil, err
	}
	lines, err := txt.ParseBody(text)
	if err != nil {
		return nil, err
	}
	return &Song{Header: *header, Lines: lines}, nil
}

// Open reads, decodes and parses a song file.
//
// The file's text encoding is detected from its content unless WithEncoding
// forces one. After parsing, local media references (audio, video, cover,
// background) are resolved to absolute canonical paths against the song's
// directory; remote references pass through unchanged. A reference that
// fails to resolve (typically because the media file is missing) is kept as
// written unless WithStrictPaths is set. WithKeepRelativePaths skips
// resolution entirely.
//
// Example:
//
//	song, err := ultrastar.Open("songs/queen/song.txt")
//	if err != nil {
//		return err
//	}
//	play(song.Header.AudioPath) // absolute by now
func Open(path string, opts ...Option) (*Song, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	text, err := encoding.ReadFile(path, options.charset)
	if err != nil {
		return nil, err
	}

	song, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	song.Path = path

	if !options.keepRelativePaths {
		if err := resolveReferences(song, filepath.Dir(path), options.strictPaths); err != nil {
			return nil, err
		}
	}

	return song, nil
}

// OpenContext opens a song file with context support for cancellation.
//
// A thin wrapper around Open that checks the context before starting; the
// parse itself is bounded in-memory work.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple song files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. The first
// failure cancels the remaining work and is returned.
//
// Example:
//
//	songs, err := ultrastar.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range songs {
//		fmt.Printf("%s - %s\n", s.Header.Artist, s.Header.Title)
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*Song, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Song, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			song, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = song
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// IsLocalReference reports whether a media reference points at the local
// filesystem rather than a remote resource. References without a "://"
// scheme separator are local, as are file:// references.
func IsLocalReference(ref string) bool {
	return songpath.IsLocal(ref)
}

// resolveReferences rewrites the header's local media references to
// absolute canonical paths. In non-strict mode an unresolvable reference
// stays as written.
func resolveReferences(song *Song, baseDir string, strict bool) error {
	refs := []struct {
		tag   string
		field *string
	}{
		{"MP3", &song.Header.AudioPath},
		{"VIDEO", &song.Header.VideoPath},
		{"COVER", &song.Header.CoverPath},
		{"BACKGROUND", &song.Header.BackgroundPath},
	}

	for _, ref := range refs {
		if *ref.field == "" {
			continue
		}
		resolved, err := songpath.Resolve(*ref.field, baseDir)
		if err != nil {
			if strict {
				return &types.ResolveError{Path: song.Path, Tag: ref.tag, Err: err}
			}
			continue
		}
		*ref.field = resolved
	}

	return nil
}
