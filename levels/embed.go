package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Cell values used in level layers.
const (
	CellEmpty    = 0
	CellSolid    = 1
	CellPlatform = 3
)

// Level is a row-major tile grid. Row 0 is the top of the level.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
	SpawnX    int         `json:"spawn_x,omitempty"`
	SpawnY    int         `json:"spawn_y,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// HasPhysics reports whether tiles on layer idx collide. Levels without
// layer metadata treat every layer as solid.
func (l *Level) HasPhysics(idx int) bool {
	if l == nil || idx < 0 || idx >= len(l.Layers) {
		return false
	}
	if len(l.LayerMeta) == 0 {
		return true
	}
	if idx >= len(l.LayerMeta) {
		return false
	}
	return l.LayerMeta[idx].Physics
}

// Cell returns the value at (x, y) on layer idx, or CellEmpty when out of range.
func (l *Level) Cell(idx, x, y int) int {
	if l == nil || idx < 0 || idx >= len(l.Layers) {
		return CellEmpty
	}
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return CellEmpty
	}
	layer := l.Layers[idx]
	i := y*l.Width + x
	if i >= len(layer) {
		return CellEmpty
	}
	return layer[i]
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, cleanLevelPath(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return parseLevel(data)
}

// LoadLevel reads a level from disk, falling back to the embedded copy.
func LoadLevel(name string) (*Level, error) {
	if data, err := os.ReadFile(name); err == nil {
		return parseLevel(data)
	}
	return LoadLevelFromFS(name)
}

func parseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("layer %d has %d cells, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}
	return &lvl, nil
}

func cleanLevelPath(name string) string {
	s := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
