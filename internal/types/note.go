package types

// Note is one entry in a lyric line: a timed syllable or a player-change
// marker. The set of implementations is closed; consumers switch over
// RegularNote, GoldenNote, FreestyleNote and PlayerChange.
//
// All implementations are comparable value types, so notes and lines can be
// compared with == and slices.Equal in tests and callers.
type Note interface {
	// note marks the implementing types. It also keeps the set closed:
	// nothing outside this package can implement Note.
	note()
}

// RegularNote is a normally-sung syllable.
type RegularNote struct {
	// Start is the beat offset the note begins at.
	Start int

	// Duration is the length in beats, never negative.
	Duration int

	// Pitch is the MIDI-style pitch, signed.
	Pitch int

	// Text is the syllable as written, whitespace preserved.
	Text string
}

// GoldenNote is a bonus-scored syllable. Same shape as RegularNote.
type GoldenNote struct {
	Start    int
	Duration int
	Pitch    int
	Text     string
}

// FreestyleNote is an unscored syllable. Same shape as RegularNote.
type FreestyleNote struct {
	Start    int
	Duration int
	Pitch    int
	Text     string
}

// PlayerChange marks that subsequent notes in the current line belong to
// another performer. It carries no timing.
type PlayerChange struct {
	// Player is the performer number, 1 through 3.
	Player int
}

func (RegularNote) note()   {}
func (GoldenNote) note()    {}
func (FreestyleNote) note() {}
func (PlayerChange) note()  {}

// Line is one lyric line: the beat it starts at and its notes in order.
type Line struct {
	// Start is the beat offset of the line-break marker that opened this
	// line. The implicit first line of a song has Start 0 and no marker.
	Start int

	// Rel is the additional relative offset from the two-argument line-break
	// form, nil when the source used the single-argument form.
	Rel *int

	// Notes in the order they appear in the file.
	Notes []Note
}
