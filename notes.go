package ultrastar

import (
	"github.com/simonhull/ultrastar/internal/types"
)

// Line is one lyric line: its starting beat and notes in order.
type Line = types.Line

// Note is one entry in a lyric line. The concrete types are RegularNote,
// GoldenNote, FreestyleNote and PlayerChange; switch over them exhaustively.
type Note = types.Note

// RegularNote is a normally-sung syllable.
type RegularNote = types.RegularNote

// GoldenNote is a bonus-scored syllable.
type GoldenNote = types.GoldenNote

// FreestyleNote is an unscored syllable.
type FreestyleNote = types.FreestyleNote

// PlayerChange marks a performer switch within the current line.
type PlayerChange = types.PlayerChange
