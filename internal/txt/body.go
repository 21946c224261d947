package txt

import (
	"regexp"
	"strconv"

	"github.com/simonhull/ultrastar/internal/types"
)

// Body line patterns. lineBreakRE is anchored through end of line and must
// be tried before relLineBreakRE: the relative form is a superset match of
// the simple form, so only the exact one-integer shape may take the simple
// branch.
var (
	noteRE         = regexp.MustCompile(`^(.)\s*(-?[0-9]+)\s+(-?[0-9]+)\s+(-?[0-9]+)\s?(.*)`)
	lineBreakRE    = regexp.MustCompile(`^-\s?(-?[0-9]+)\s*$`)
	relLineBreakRE = regexp.MustCompile(`^-\s?(-?[0-9]+)\s+(-?[0-9]+)`)
	playerRE       = regexp.MustCompile(`^P\s?(-?[0-9]+)`)
)

// ParseBody scans the lyric lines of a song file and returns them in order.
//
// ParseBody takes the full song text; header tag lines are skipped. It runs
// a single pass with one current-line accumulator: note lines append to the
// accumulator, line-break markers flush it and open the next line, and the
// 'E' terminator flushes the final line and stops the scan. Input exhausted
// without an 'E' is MissingEndError. The first line of a song needs no
// marker; it is the implicit accumulator with start 0.
func ParseBody(text string) ([]types.Line, error) {
	var lines []types.Line
	current := types.Line{}

	for num, line := range splitLines(text) {
		count := num + 1
		if line == "" {
			return nil, &types.ParseFailureError{Line: count}
		}

		switch line[0] {
		case '#':
			continue
		case 'B':
			return nil, &types.NotImplementedError{Line: count, Feature: "variable bpm"}
		case 'E':
			lines = append(lines, current)
			return lines, nil
		}

		if m := noteRE.FindStringSubmatch(line); m != nil {
			note, err := parseNote(m, count)
			if err != nil {
				return nil, err
			}
			current.Notes = append(current.Notes, note)
			continue
		}

		if m := lineBreakRE.FindStringSubmatch(line); m != nil {
			start, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, &types.ValueError{Line: count, Field: "line start"}
			}
			lines = append(lines, current)
			current = types.Line{Start: start}
			continue
		}

		if m := relLineBreakRE.FindStringSubmatch(line); m != nil {
			start, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, &types.ValueError{Line: count, Field: "line start"}
			}
			rel, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, &types.ValueError{Line: count, Field: "line rel"}
			}
			lines = append(lines, current)
			current = types.Line{Start: start, Rel: &rel}
			continue
		}

		if m := playerRE.FindStringSubmatch(line); m != nil {
			player, err := strconv.Atoi(m[1])
			if err != nil || player < 1 || player > 3 {
				return nil, &types.ValueError{Line: count, Field: "player change"}
			}
			current.Notes = append(current.Notes, types.PlayerChange{Player: player})
			continue
		}

		return nil, &types.ParseFailureError{Line: count}
	}

	return nil, &types.MissingEndError{}
}

// parseNote builds a timed note from a noteRE match.
func parseNote(m []string, count int) (types.Note, error) {
	start, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, &types.ValueError{Line: count, Field: "note start"}
	}
	duration, err := strconv.Atoi(m[3])
	if err != nil || duration < 0 {
		return nil, &types.ValueError{Line: count, Field: "note duration"}
	}
	pitch, err := strconv.Atoi(m[4])
	if err != nil {
		return nil, &types.ValueError{Line: count, Field: "note pitch"}
	}
	text := m[5]

	switch m[1] {
	case ":":
		return types.RegularNote{Start: start, Duration: duration, Pitch: pitch, Text: text}, nil
	case "*":
		return types.GoldenNote{Start: start, Duration: duration, Pitch: pitch, Text: text}, nil
	case "F":
		return types.FreestyleNote{Start: start, Duration: duration, Pitch: pitch, Text: text}, nil
	default:
		return nil, &types.UnknownNoteTypeError{Line: count}
	}
}
