// Package ultrastar reads and writes UltraStar karaoke song files.
//
// An UltraStar song file is a line-oriented text format: a block of
// #TAG:value metadata (title, artist, tempo, media references) followed by
// timed lyric notes grouped into lines, optionally split across up to three
// performers. This package provides the bidirectional transformation between
// that format and a typed in-memory model.
//
// # Quick Start
//
// Loading a song from disk:
//
//	song, err := ultrastar.Open("song.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s - %s (%.1f BPM)\n", song.Header.Artist, song.Header.Title, song.Header.BPM)
//	for _, line := range song.Lines {
//		for _, note := range line.Notes {
//			fmt.Printf("%#v\n", note)
//		}
//	}
//
// Open reads the file, detects its text encoding (song files in the wild
// are authored in anything from UTF-8 to Windows code pages), parses it,
// and resolves relative media references against the song's directory.
// To parse text you already hold, use Parse, which does no I/O.
//
// # Writing
//
// A song serializes back to canonical text with TXT, or atomically to disk
// with Save and SaveAs:
//
//	song.Header.Title = "New Title"
//	if err := song.Save(ultrastar.WithBackup(".bak")); err != nil {
//		log.Fatal(err)
//	}
//
// Parsing the generated text reproduces the same header and lines, so a
// load-edit-save cycle preserves everything the model captures.
//
// # Error Handling
//
// Failures carry enough context to present an actionable diagnostic. Parse
// errors are typed and hold the offending 1-based line number and field
// name (DuplicateHeaderError, ValueError, UnknownNoteTypeError, ...);
// loader errors (I/O, encoding detection, path resolution) are distinct
// types, so callers can tell a bad file from bad content:
//
//	var verr *ultrastar.ValueError
//	if errors.As(err, &verr) {
//		fmt.Printf("line %d: bad %s\n", verr.Line, verr.Field)
//	}
//
// Parsing is fail-fast: a single malformed line invalidates the whole
// document, and nothing is repaired silently.
//
// # Concurrency
//
// Parsing and generation are pure functions over in-memory strings with no
// shared state; any number of songs can be processed concurrently. OpenMany
// loads a batch of files in parallel.
package ultrastar
