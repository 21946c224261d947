package types

// Header holds the metadata block of an UltraStar song file.
//
// Title, Artist, BPM and AudioPath are essential: a file that omits any of
// them does not parse. Every other field is optional. Optional string fields
// use "" for "not present" — the parser skips tags with empty values, so an
// empty string can never be a legitimate parsed value. Optional numeric and
// boolean fields use pointers so that zero values remain representable.
type Header struct {
	// Title of the song (#TITLE, essential).
	Title string

	// Artist performing the song (#ARTIST, essential).
	Artist string

	// BPM is the tempo in beats per minute (#BPM, essential).
	BPM float64

	// AudioPath references the backing audio track (#MP3, essential).
	// A filesystem path or a URI; see the loader for resolution rules.
	AudioPath string

	// Gap is the delay in milliseconds before the first beat (#GAP).
	Gap *float64

	// CoverPath references the cover image (#COVER).
	CoverPath string

	// BackgroundPath references the background image (#BACKGROUND).
	BackgroundPath string

	// VideoPath references the background video (#VIDEO).
	VideoPath string

	// VideoGap is the video start offset in seconds (#VIDEOGAP).
	VideoGap *float64

	// Genre of the song (#GENRE).
	Genre string

	// Edition or collection the song belongs to (#EDITION).
	Edition string

	// Language of the lyrics (#LANGUAGE).
	Language string

	// Year the song was released (#YEAR).
	Year *int

	// Relative indicates relative beat timing (#RELATIVE, YES/NO).
	Relative *bool

	// Unknown preserves tags this package does not recognize, keyed by tag
	// name. Nil when the file contained none. Each tag appears at most once;
	// a duplicate is a parse error just like a duplicate recognized tag.
	Unknown map[string]string
}
