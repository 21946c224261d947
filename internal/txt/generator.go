package txt

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/simonhull/ultrastar/internal/types"
)

// Generate renders a header and line sequence as canonical song text.
//
// Header tags come first in fixed order (TITLE, ARTIST, MP3, BPM, then any
// present optionals, then unknown tags in sorted order), followed by each
// line's break marker and notes, and a trailing 'E' with no final newline.
// The implicit first line (start 0) emits no break marker. The input is
// assumed to satisfy the model invariants; Generate does not re-validate.
//
// Generate is the inverse of parsing: feeding its output back through the
// parser reproduces the same header and lines.
func Generate(h *types.Header, lines []types.Line) (string, error) {
	var b strings.Builder

	writeTag(&b, "TITLE", h.Title)
	writeTag(&b, "ARTIST", h.Artist)
	writeTag(&b, "MP3", h.AudioPath)
	writeTag(&b, "BPM", formatFloat(h.BPM))

	if h.Gap != nil {
		writeTag(&b, "GAP", formatFloat(*h.Gap))
	}
	if h.CoverPath != "" {
		writeTag(&b, "COVER", h.CoverPath)
	}
	if h.BackgroundPath != "" {
		writeTag(&b, "BACKGROUND", h.BackgroundPath)
	}
	if h.VideoPath != "" {
		writeTag(&b, "VIDEO", h.VideoPath)
	}
	if h.VideoGap != nil {
		writeTag(&b, "VIDEOGAP", formatFloat(*h.VideoGap))
	}
	if h.Genre != "" {
		writeTag(&b, "GENRE", h.Genre)
	}
	if h.Edition != "" {
		writeTag(&b, "EDITION", h.Edition)
	}
	if h.Language != "" {
		writeTag(&b, "LANGUAGE", h.Language)
	}
	if h.Year != nil {
		writeTag(&b, "YEAR", strconv.Itoa(*h.Year))
	}
	if h.Relative != nil {
		if *h.Relative {
			writeTag(&b, "RELATIVE", "YES")
		} else {
			writeTag(&b, "RELATIVE", "NO")
		}
	}
	unknownTags := make([]string, 0, len(h.Unknown))
	for tag := range h.Unknown {
		unknownTags = append(unknownTags, tag)
	}
	slices.Sort(unknownTags)
	for _, tag := range unknownTags {
		writeTag(&b, tag, h.Unknown[tag])
	}

	for _, line := range lines {
		if line.Start != 0 {
			if line.Rel != nil {
				fmt.Fprintf(&b, "- %d %d\n", line.Start, *line.Rel)
			} else {
				fmt.Fprintf(&b, "- %d\n", line.Start)
			}
		}
		for _, note := range line.Notes {
			switch n := note.(type) {
			case types.RegularNote:
				fmt.Fprintf(&b, ": %d %d %d %s\n", n.Start, n.Duration, n.Pitch, n.Text)
			case types.GoldenNote:
				fmt.Fprintf(&b, "* %d %d %d %s\n", n.Start, n.Duration, n.Pitch, n.Text)
			case types.FreestyleNote:
				fmt.Fprintf(&b, "F %d %d %d %s\n", n.Start, n.Duration, n.Pitch, n.Text)
			case types.PlayerChange:
				fmt.Fprintf(&b, "P%d\n", n.Player)
			}
		}
	}

	b.WriteString("E")
	return b.String(), nil
}

func writeTag(b *strings.Builder, tag, value string) {
	b.WriteString("#")
	b.WriteString(tag)
	b.WriteString(":")
	b.WriteString(value)
	b.WriteString("\n")
}

// formatFloat renders a float the shortest way that round-trips: whole
// numbers without a decimal point, 128.5 as "128.5".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
