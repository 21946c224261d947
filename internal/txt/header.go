package txt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/simonhull/ultrastar/internal/types"
)

// tagRE matches a header tag line. The tag name class includes '3' for MP3.
var tagRE = regexp.MustCompile(`#([A-Z3a-z]*):(.*)`)

// essentialTags are the tags a header cannot do without, in reporting order.
var essentialTags = []string{"TITLE", "ARTIST", "BPM", "MP3"}

// headerSetters maps each recognized tag to its field assignment. A setter
// returns false when the value fails to parse, which the caller reports as a
// ValueError naming the tag. Keeping every tag behind the same shape keeps
// the one-tag-one-assignment-duplicate-checked contract uniform.
var headerSetters = map[string]func(h *types.Header, value string) bool{
	"TITLE": func(h *types.Header, v string) bool {
		h.Title = v
		return true
	},
	"ARTIST": func(h *types.Header, v string) bool {
		h.Artist = v
		return true
	},
	"MP3": func(h *types.Header, v string) bool {
		h.AudioPath = v
		return true
	},
	"BPM": func(h *types.Header, v string) bool {
		f, err := parseFloatTag(v)
		if err != nil {
			return false
		}
		h.BPM = f
		return true
	},
	"GAP": func(h *types.Header, v string) bool {
		f, err := parseFloatTag(v)
		if err != nil {
			return false
		}
		h.Gap = &f
		return true
	},
	"COVER": func(h *types.Header, v string) bool {
		h.CoverPath = v
		return true
	},
	"BACKGROUND": func(h *types.Header, v string) bool {
		h.BackgroundPath = v
		return true
	},
	"VIDEO": func(h *types.Header, v string) bool {
		h.VideoPath = v
		return true
	},
	"VIDEOGAP": func(h *types.Header, v string) bool {
		f, err := parseFloatTag(v)
		if err != nil {
			return false
		}
		h.VideoGap = &f
		return true
	},
	"GENRE": func(h *types.Header, v string) bool {
		h.Genre = v
		return true
	},
	"EDITION": func(h *types.Header, v string) bool {
		h.Edition = v
		return true
	},
	"LANGUAGE": func(h *types.Header, v string) bool {
		h.Language = v
		return true
	},
	"YEAR": func(h *types.Header, v string) bool {
		y, err := strconv.Atoi(v)
		if err != nil {
			return false
		}
		h.Year = &y
		return true
	},
	"RELATIVE": func(h *types.Header, v string) bool {
		var rel bool
		switch strings.ToLower(v) {
		case "yes":
			rel = true
		case "no":
			rel = false
		default:
			return false
		}
		h.Relative = &rel
		return true
	},
}

// parseFloatTag parses a header numeric, accepting a comma as the decimal
// separator. Song files authored with European locales write "128,5".
func parseFloatTag(v string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
}

// ParseHeader scans the header block of a song file and returns the Header.
//
// The header block is the strict prefix of lines matching #TAG:value; the
// first line that does not match ends the scan. Tags with empty values are
// skipped without effect. A repeated tag (recognized or unknown) fails with
// DuplicateHeaderError; once the block ends, all essential tags must have
// been seen or the result is MissingEssentialError.
func ParseHeader(text string) (*types.Header, error) {
	h := &types.Header{}
	seen := make(map[string]bool)

	for num, line := range splitLines(text) {
		m := tagRE.FindStringSubmatch(line)
		if m == nil {
			break
		}
		tag, value := m[1], m[2]

		// An empty value means the tag is treated as absent, without
		// tripping the duplicate check.
		if value == "" {
			continue
		}

		set, recognized := headerSetters[tag]
		if !recognized {
			if _, dup := h.Unknown[tag]; dup {
				return nil, &types.DuplicateHeaderError{Line: num + 1, Tag: "UNKNOWN"}
			}
			if h.Unknown == nil {
				h.Unknown = make(map[string]string)
			}
			h.Unknown[tag] = value
			continue
		}

		if seen[tag] {
			return nil, &types.DuplicateHeaderError{Line: num + 1, Tag: tag}
		}
		if !set(h, value) {
			return nil, &types.ValueError{Line: num + 1, Field: tag}
		}
		seen[tag] = true
	}

	var missing []string
	for _, tag := range essentialTags {
		if !seen[tag] {
			missing = append(missing, tag)
		}
	}
	if missing != nil {
		return nil, &types.MissingEssentialError{Missing: missing}
	}

	return h, nil
}
