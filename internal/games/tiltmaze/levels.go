package tiltmaze

import (
	"embed"
	"strings"
)

//go:embed levels/*.map
var builtinFS embed.FS

// builtinNames lists the campaign levels in play order.
var builtinNames = []string{
	"level1.map",
	"level2.map",
	"level3.map",
	"level4.map",
	"level5.map",
}

// LevelSource is a named raw map: the lines of one .map file.
type LevelSource struct {
	Name  string
	Lines []string
}

// BuiltinLevels returns the embedded campaign maps in play order.
func BuiltinLevels() []LevelSource {
	sources := make([]LevelSource, 0, len(builtinNames))
	for _, name := range builtinNames {
		data, err := builtinFS.ReadFile("levels/" + name)
		if err != nil {
			// embed contents are fixed at build time
			continue
		}
		sources = append(sources, LevelSource{Name: name, Lines: splitLines(string(data))})
	}
	return sources
}

// LevelCount returns the number of built-in campaign levels.
func LevelCount() int {
	return len(builtinNames)
}

// splitLines breaks raw map file contents into rows.
func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
