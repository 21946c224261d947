package ultrastar

import (
	"github.com/simonhull/ultrastar/internal/types"
)

// Header holds the metadata block of a song file. See internal/types for
// field semantics; the essential fields are Title, Artist, BPM, AudioPath.
type Header = types.Header
