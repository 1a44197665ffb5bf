package level

import (
	"errors"
	"testing"

	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/parameter"
)

const sample = `
name: test
next: after
facing: east
map:
  - "#####"
  - "#@g.#"
  - "#k+>#"
  - "#####"
enemies:
  g: {name: goblin, health: 5}
items:
  k: {kind: key}
`

func TestParseSample(t *testing.T) {
	lvl, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if lvl.Yaw != 90 {
		t.Errorf("Expected yaw 90 for east, got %v", lvl.Yaw)
	}
	if lvl.Player != (Cell{Col: 1, Row: 1}) {
		t.Errorf("Expected player at 1,1, got %+v", lvl.Player)
	}
	if lvl.Width != 5 || lvl.Height != 4 {
		t.Errorf("Expected 5x4, got %dx%d", lvl.Width, lvl.Height)
	}
	if len(lvl.Walls) != 14 {
		t.Errorf("Expected 14 walls, got %d", len(lvl.Walls))
	}
	if len(lvl.Enemies) != 1 || lvl.Enemies[0].Def.Health != 5 || lvl.Enemies[0].Def.Attack == 0 {
		t.Errorf("Unexpected enemies: %+v", lvl.Enemies)
	}
	if len(lvl.Items) != 1 || lvl.Items[0].Item.Kind != component.ItemKey || lvl.Items[0].Item.Name != "key" {
		t.Errorf("Unexpected items: %+v", lvl.Items)
	}
	if len(lvl.Gates) != 1 || lvl.Gates[0] != (Cell{Col: 2, Row: 2}) {
		t.Errorf("Unexpected gates: %+v", lvl.Gates)
	}
	if len(lvl.Triggers) != 1 || lvl.Triggers[0].Next != "after" || lvl.Triggers[0].Action != component.TriggerExit {
		t.Errorf("Unexpected triggers: %+v", lvl.Triggers)
	}
}

func TestEnemyDefenceDefaults(t *testing.T) {
	lvl, err := Parse([]byte(`
map:
  - "@gz"
enemies:
  g: {name: goblin}
  z: {name: zombie, defence: 0}
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defence := map[rune]int{}
	for _, en := range lvl.Enemies {
		defence[en.Glyph] = en.Def.Defence
	}
	if defence['g'] != parameter.EnemyDefaultDefence {
		t.Errorf("Expected omitted defence to default to %d, got %d", parameter.EnemyDefaultDefence, defence['g'])
	}
	if defence['z'] != 0 {
		t.Errorf("Expected explicit zero defence kept, got %d", defence['z'])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no player", "map: [\"#.#\"]", ErrNoPlayer},
		{"two players", "map: [\"@@\"]", ErrManyPlayers},
		{"unknown glyph", "map: [\"@x\"]", ErrUnknownGlyph},
		{"empty", "name: x", ErrEmptyMap},
		{"facing", "facing: up\nmap: [\"@\"]", ErrUnknownFacing},
		{"exit without next", "map: [\"@>\"]", ErrExitWithoutNext},
		{"reserved", "map: [\"@\"]\nenemies:\n  \"#\": {name: wall}", ErrReservedGlyph},
		{"bad item", "map: [\"@\"]\nitems:\n  k: {kind: sword}", ErrUnknownItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBuiltinLevelsLoad(t *testing.T) {
	src := Builtin()
	names, err := src.Names()
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("Expected builtin levels")
	}
	for _, name := range names {
		lvl, err := src.Load(name)
		if err != nil {
			t.Errorf("Load(%s) failed: %v", name, err)
			continue
		}
		if lvl.Next != "" {
			if _, err := src.Load(lvl.Next); err != nil {
				t.Errorf("Level %s names missing successor %s", name, lvl.Next)
			}
		}
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Builtin().Load("nowhere")
	if !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Expected ErrLevelNotFound, got %v", err)
	}
}

func TestCellWorldRoundTrip(t *testing.T) {
	c := Cell{Col: 3, Row: 7}
	if got := CellAt(c.World(254), 254); got != c {
		t.Errorf("Expected %+v, got %+v", c, got)
	}
}
