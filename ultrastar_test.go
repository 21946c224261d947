package ultrastar

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const exampleSong = "#TITLE:Song\n" +
	"#ARTIST:Artist\n" +
	"#MP3:song.mp3\n" +
	"#BPM:100\n" +
	": 0 4 60 Hel\n" +
	": 4 4 62 lo\n" +
	"E\n"

func writeSong(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse_Example(t *testing.T) {
	song, err := Parse(exampleSong)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	h := song.Header
	if h.Title != "Song" || h.Artist != "Artist" || h.BPM != 100 || h.AudioPath != "song.mp3" {
		t.Errorf("header = %+v", h)
	}
	if song.Path != "" {
		t.Errorf("Path = %q, want empty for Parse", song.Path)
	}
	if len(song.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(song.Lines))
	}
	line := song.Lines[0]
	if line.Start != 0 || line.Rel != nil || len(line.Notes) != 2 {
		t.Errorf("line = %+v", line)
	}
	if n := line.Notes[0].(RegularNote); n != (RegularNote{Start: 0, Duration: 4, Pitch: 60, Text: "Hel"}) {
		t.Errorf("notes[0] = %#v", n)
	}
}

func TestParse_KeepsReferencesAsWritten(t *testing.T) {
	song, err := Parse(exampleSong)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if song.Header.AudioPath != "song.mp3" {
		t.Errorf("AudioPath = %q, Parse must not touch references", song.Header.AudioPath)
	}
}

func TestOpen_ResolvesLocalReferences(t *testing.T) {
	dir := t.TempDir()
	writeSong(t, dir, "song.mp3", "fake audio")
	writeSong(t, dir, "cover.jpg", "fake image")
	path := writeSong(t, dir, "song.txt",
		"#TITLE:Song\n#ARTIST:Artist\n#MP3:song.mp3\n#BPM:100\n"+
			"#COVER:cover.jpg\n#VIDEO:https://example.com/clip.mp4\n"+
			": 0 4 60 Hel\nE\n")

	song, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if song.Path != path {
		t.Errorf("Path = %q, want %q", song.Path, path)
	}
	if !filepath.IsAbs(song.Header.AudioPath) {
		t.Errorf("AudioPath = %q, want absolute", song.Header.AudioPath)
	}
	if filepath.Base(song.Header.AudioPath) != "song.mp3" {
		t.Errorf("AudioPath = %q, want it to reference song.mp3", song.Header.AudioPath)
	}
	if !filepath.IsAbs(song.Header.CoverPath) {
		t.Errorf("CoverPath = %q, want absolute", song.Header.CoverPath)
	}
	if song.Header.VideoPath != "https://example.com/clip.mp4" {
		t.Errorf("VideoPath = %q, remote references must pass through", song.Header.VideoPath)
	}
}

func TestOpen_MissingMediaKeptByDefault(t *testing.T) {
	dir := t.TempDir()
	path := writeSong(t, dir, "song.txt", exampleSong)

	song, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if song.Header.AudioPath != "song.mp3" {
		t.Errorf("AudioPath = %q, want kept as written when the media is missing", song.Header.AudioPath)
	}
}

func TestOpen_StrictPaths(t *testing.T) {
	dir := t.TempDir()
	path := writeSong(t, dir, "song.txt", exampleSong)

	_, err := Open(path, WithStrictPaths())
	var rerr *ResolveError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want ResolveError", err)
	}
	if rerr.Tag != "MP3" {
		t.Errorf("Tag = %q, want MP3", rerr.Tag)
	}
}

func TestOpen_KeepRelativePaths(t *testing.T) {
	dir := t.TempDir()
	writeSong(t, dir, "song.mp3", "fake audio")
	path := writeSong(t, dir, "song.txt", exampleSong)

	song, err := Open(path, WithKeepRelativePaths())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if song.Header.AudioPath != "song.mp3" {
		t.Errorf("AudioPath = %q, want untouched", song.Header.AudioPath)
	}
}

func TestOpen_ForcedEncoding(t *testing.T) {
	dir := t.TempDir()
	// "Söng" in ISO-8859-1.
	content := append([]byte("#TITLE:S"), 0xF6)
	content = append(content, []byte("ng\n#ARTIST:Artist\n#MP3:song.mp3\n#BPM:100\n: 0 4 60 a\nE\n")...)
	path := filepath.Join(dir, "song.txt")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	song, err := Open(path, WithEncoding("iso-8859-1"), WithKeepRelativePaths())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if song.Header.Title != "Söng" {
		t.Errorf("Title = %q, want %q", song.Header.Title, "Söng")
	}
}

func TestOpen_ParseErrorsKeepTheirType(t *testing.T) {
	dir := t.TempDir()
	path := writeSong(t, dir, "song.txt",
		"#TITLE:Song\n#ARTIST:Artist\n#MP3:song.mp3\n#BPM:100\n: 0 4 60 a\n")

	_, err := Open(path)
	var merr *MissingEndError
	if !errors.As(err, &merr) {
		t.Fatalf("error = %v, want MissingEndError through the wrap", err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want wrapped os.ErrNotExist, distinct from parse errors", err)
	}
	var perr *ParseFailureError
	if errors.As(err, &perr) {
		t.Error("an I/O failure must not surface as a parse error")
	}
}

func TestOpenContext_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := OpenContext(ctx, "song.txt")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestOpenMany(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a", "b", "c"} {
		paths = append(paths, writeSong(t, dir, name+".txt",
			"#TITLE:"+name+"\n#ARTIST:Artist\n#MP3:song.mp3\n#BPM:100\n: 0 4 60 x\nE\n"))
	}

	songs, err := OpenMany(context.Background(), paths...)
	if err != nil {
		t.Fatalf("OpenMany failed: %v", err)
	}
	if len(songs) != 3 {
		t.Fatalf("got %d songs, want 3", len(songs))
	}
	for i, name := range []string{"a", "b", "c"} {
		if songs[i].Header.Title != name {
			t.Errorf("songs[%d].Title = %q, want %q (order must match input)", i, songs[i].Header.Title, name)
		}
	}
}

func TestOpenMany_FirstErrorWins(t *testing.T) {
	dir := t.TempDir()
	good := writeSong(t, dir, "good.txt", exampleSong)
	bad := writeSong(t, dir, "bad.txt", "#TITLE:Only\n")

	_, err := OpenMany(context.Background(), good, bad)
	if err == nil {
		t.Fatal("expected an error from the malformed song")
	}
	var merr *MissingEssentialError
	if !errors.As(err, &merr) {
		t.Errorf("error = %v, want MissingEssentialError", err)
	}
}

func TestOpenMany_Empty(t *testing.T) {
	songs, err := OpenMany(context.Background())
	if err != nil || songs != nil {
		t.Errorf("OpenMany() = %v, %v; want nil, nil", songs, err)
	}
}

func TestIsLocalReference(t *testing.T) {
	if !IsLocalReference("song.mp3") {
		t.Error("bare filenames are local")
	}
	if !IsLocalReference("file://song.mp3") {
		t.Error("file references are local")
	}
	if IsLocalReference("https://example.com/song.mp3") {
		t.Error("remote references are not local")
	}
}
