package tiltmaze

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Loader reads external level packs: every .map file in a directory,
// ordered by filename.
type Loader struct {
	Root string
}

// NewLoader creates a loader for the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll returns all .map files under Root, sorted by name.
// A missing or unreadable directory is reported and yields no levels; an
// unreadable file is reported and yields an empty level. Level problems
// never abort the game.
func (l *Loader) LoadAll() []LevelSource {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		log.Warn("cannot read levels directory", "dir", l.Root, "error", err)
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".map") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	sources := make([]LevelSource, 0, len(names))
	for _, name := range names {
		sources = append(sources, l.loadFile(filepath.Join(l.Root, name), name))
	}
	return sources
}

// loadFile reads one map file; failures produce an empty level.
func (l *Loader) loadFile(path, name string) LevelSource {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to open level", "file", path, "error", err)
		return LevelSource{Name: name}
	}
	return LevelSource{Name: name, Lines: splitLines(string(data))}
}
