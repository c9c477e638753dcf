package colorizer

import (
	"github.com/philipp01105/idlog/core"
)

// Pair is an opening and closing terminal escape sequence
type Pair struct {
	Open  string
	Close string
}

// Wrap returns s surrounded by the pair
func (p Pair) Wrap(s string) string {
	return p.Open + s + p.Close
}

const resetForeground = "\x1b[39m"

// Palette is the ordered set of identifier colors
var Palette = [...]Pair{
	{"\x1b[91m", resetForeground}, // bright red
	{"\x1b[92m", resetForeground}, // bright green
	{"\x1b[93m", resetForeground}, // bright yellow
	{"\x1b[94m", resetForeground}, // bright blue
	{"\x1b[95m", resetForeground}, // bright magenta
	{"\x1b[96m", resetForeground}, // bright cyan
}

// PaletteSize is the number of identifier colors
const PaletteSize = len(Palette)

// levelColors is indexed by core.Level
var levelColors = [...]Pair{
	core.VerboseLevel: {"\x1b[97m", resetForeground},
	core.DebugLevel:   {"\x1b[94m", resetForeground},
	core.InfoLevel:    {"\x1b[92m", resetForeground},
	core.WarnLevel:    {"\x1b[93m", resetForeground},
	core.ErrorLevel:   {"\x1b[91m", resetForeground},
	core.AssertLevel:  {"\x1b[95m", resetForeground},
}

// LevelColor returns the color pair for a level. Unknown levels get an
// empty pair.
func LevelColor(l core.Level) Pair {
	if !l.Valid() {
		return Pair{}
	}
	return levelColors[l]
}
