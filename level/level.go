// Package level loads grid maps from YAML
//
// A level file names its successor and draws the grid as rows of glyphs:
//
//	#  wall        .  floor      @  player start
//	+  gate        >  exit       *  win trigger
//
// Enemy and item glyphs are declared per file in the enemies and items maps.
// Space is void and produces nothing.
package level

import (
	"errors"
	"strings"

	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/vmath"
)

const (
	GlyphWall   = '#'
	GlyphFloor  = '.'
	GlyphVoid   = ' '
	GlyphPlayer = '@'
	GlyphGate   = '+'
	GlyphExit   = '>'
	GlyphWin    = '*'
)

var (
	ErrNoPlayer        = errors.New("level has no player start")
	ErrManyPlayers     = errors.New("level has more than one player start")
	ErrUnknownGlyph    = errors.New("unknown glyph")
	ErrReservedGlyph   = errors.New("glyph is reserved")
	ErrUnknownItem     = errors.New("unknown item kind")
	ErrUnknownFacing   = errors.New("unknown facing")
	ErrEmptyMap        = errors.New("level map is empty")
	ErrLevelNotFound   = errors.New("level not found")
	ErrExitWithoutNext = errors.New("exit trigger without next level")
)

// Cell addresses a grid square, column grows east and row grows south
type Cell struct {
	Col int
	Row int
}

// World returns the cell center in world space
func (c Cell) World(cellLength float64) vmath.Vec3F {
	return vmath.Vec3F{X: float64(c.Col) * cellLength, Z: float64(c.Row) * cellLength}
}

// CellAt returns the cell containing a world position
func CellAt(p vmath.Vec3F, cellLength float64) Cell {
	return Cell{Col: int(roundHalf(p.X / cellLength)), Row: int(roundHalf(p.Z / cellLength))}
}

func roundHalf(f float64) float64 {
	if f < 0 {
		return -float64(int(-f + 0.5))
	}
	return float64(int(f + 0.5))
}

// EnemyDef is an enemy glyph declaration with defaults applied
type EnemyDef struct {
	Name    string
	Health  int
	Attack  int
	Defence int
}

// ItemDef is an item glyph declaration
type ItemDef struct {
	Kind  string `yaml:"kind"`
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// EnemySpawn places an enemy
type EnemySpawn struct {
	Cell  Cell
	Glyph rune
	Def   EnemyDef
}

// ItemSpawn places an item
type ItemSpawn struct {
	Cell  Cell
	Glyph rune
	Item  component.Item
}

// TriggerSpawn places a trigger zone
type TriggerSpawn struct {
	Cell   Cell
	Action component.TriggerAction
	Next   string
}

// Level is a parsed map ready for spawning
type Level struct {
	Name string
	Next string
	// Yaw is the player's starting heading in degrees
	Yaw float64

	Rows   []string
	Width  int
	Height int

	Player   Cell
	Walls    []Cell
	Gates    []Cell
	Enemies  []EnemySpawn
	Items    []ItemSpawn
	Triggers []TriggerSpawn
}

// FacingYaw maps a compass name to yaw degrees
func FacingYaw(facing string) (float64, bool) {
	switch strings.ToLower(facing) {
	case "", "south":
		return 0, true
	case "east":
		return 90, true
	case "north":
		return 180, true
	case "west":
		return 270, true
	}
	return 0, false
}
