package ultrastar

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestTXT_Example(t *testing.T) {
	song, err := Parse(exampleSong)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	got, err := song.TXT()
	if err != nil {
		t.Fatalf("TXT failed: %v", err)
	}

	// Identical to the input except for the absent trailing newline after
	// the terminator.
	want := strings.TrimSuffix(exampleSong, "\n")
	if got != want {
		t.Errorf("TXT output:\n%s\nwant:\n%s", got, want)
	}
}

func TestSaveAs_RoundTrip(t *testing.T) {
	song, err := Parse(exampleSong)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	song.Header.Title = "Edited"

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := song.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	loaded, err := Open(path, WithKeepRelativePaths())
	if err != nil {
		t.Fatalf("Open of saved song failed: %v", err)
	}
	if loaded.Header.Title != "Edited" {
		t.Errorf("Title = %q, want %q", loaded.Header.Title, "Edited")
	}
	if !reflect.DeepEqual(loaded.Lines, song.Lines) {
		t.Errorf("lines mismatch after save/load:\ngot  %#v\nwant %#v", loaded.Lines, song.Lines)
	}
}

func TestSave_RequiresPath(t *testing.T) {
	song, err := Parse(exampleSong)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := song.Save(); err == nil {
		t.Fatal("Save on a pathless song must fail")
	}
}

func TestSave_WithBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeSong(t, dir, "song.txt", exampleSong)

	song, err := Open(path, WithKeepRelativePaths())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	song.Header.Artist = "Someone Else"

	if err := song.Save(WithBackup(".bak")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	backup, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) != exampleSong {
		t.Errorf("backup = %q, want the original contents", backup)
	}

	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(saved), "#ARTIST:Someone Else") {
		t.Errorf("saved = %q, want the edited artist", saved)
	}
}

func TestSaveAs_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	song, err := Parse(exampleSong)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if err := song.SaveAs(filepath.Join(dir, "out.txt")); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}
