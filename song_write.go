package ultrastar

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/ultrastar/internal/txt"
)

// TXT renders the song as canonical UltraStar text.
//
// Header tags are emitted in fixed order, each line's break marker precedes
// its notes, and the output ends with the 'E' terminator. Parsing the
// result reproduces the same header and lines.
func (s *Song) TXT() (string, error) {
	return txt.Generate(&s.Header, s.Lines)
}

// SaveOption configures behavior when saving song files.
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving song files.
type saveOptions struct {
	backupSuffix string // Keep the previous file under path+suffix ("" = no backup)
}

// defaultSaveOptions returns the default configuration.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup keeps the previous file contents under the original name plus
// suffix before the new contents replace it:
//
//	err := song.Save(ultrastar.WithBackup(".bak"))
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// Save writes the song back to the path it was loaded from.
//
// This is an atomic operation: the text is written to a temporary file in
// the same directory, then renamed over the original. Output is UTF-8
// regardless of the encoding the song was loaded with.
//
// Fails for songs that were not loaded from a file; use SaveAs for those.
func (s *Song) Save(opts ...SaveOption) error {
	if s.Path == "" {
		return fmt.Errorf("song has no path: use SaveAs")
	}
	return s.SaveAs(s.Path, opts...)
}

// SaveAs writes the song to a new location, atomically like Save.
func (s *Song) SaveAs(path string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	text, err := s.TXT()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ultrastar-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(text); err != nil {
		return fmt.Errorf("write song text: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if options.backupSuffix != "" {
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, path+options.backupSuffix); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	success = true

	return nil
}
