package level

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/parameter"
)

// file is the on-disk YAML shape
type file struct {
	Name    string              `yaml:"name"`
	Next    string              `yaml:"next"`
	Facing  string              `yaml:"facing"`
	Map     []string            `yaml:"map"`
	Enemies map[string]enemyDoc `yaml:"enemies"`
	Items   map[string]ItemDef  `yaml:"items"`
}

// enemyDoc is the on-disk enemy declaration
// Defence is a pointer so an explicit zero survives defaulting
type enemyDoc struct {
	Name    string `yaml:"name"`
	Health  int    `yaml:"health"`
	Attack  int    `yaml:"attack"`
	Defence *int   `yaml:"defence"`
}

// Parse decodes and validates a level document
func Parse(data []byte) (*Level, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, oops.In("level").Wrapf(err, "decode yaml")
	}
	return build(&f)
}

func build(f *file) (*Level, error) {
	errb := oops.In("level").With("level", f.Name)

	if len(f.Map) == 0 {
		return nil, errb.Wrap(ErrEmptyMap)
	}

	yaw, ok := FacingYaw(f.Facing)
	if !ok {
		return nil, errb.With("facing", f.Facing).Wrap(ErrUnknownFacing)
	}

	enemies := make(map[rune]EnemyDef, len(f.Enemies))
	for key, def := range f.Enemies {
		r, err := declGlyph(key)
		if err != nil {
			return nil, errb.With("glyph", key).Wrap(err)
		}
		enemies[r] = withEnemyDefaults(def)
	}

	items := make(map[rune]component.Item, len(f.Items))
	for key, def := range f.Items {
		r, err := declGlyph(key)
		if err != nil {
			return nil, errb.With("glyph", key).Wrap(err)
		}
		kind, ok := component.ParseItemKind(def.Kind)
		if !ok {
			return nil, errb.With("glyph", key, "kind", def.Kind).Wrap(ErrUnknownItem)
		}
		name := def.Name
		if name == "" {
			name = kind.String()
		}
		items[r] = component.Item{Kind: kind, Name: name, Value: def.Value}
	}

	lvl := &Level{
		Name:   f.Name,
		Next:   f.Next,
		Yaw:    yaw,
		Rows:   f.Map,
		Height: len(f.Map),
	}
	players := 0

	for row, line := range f.Map {
		col := 0
		for _, r := range line {
			c := Cell{Col: col, Row: row}
			switch r {
			case GlyphVoid, GlyphFloor:
			case GlyphWall:
				lvl.Walls = append(lvl.Walls, c)
			case GlyphPlayer:
				lvl.Player = c
				players++
			case GlyphGate:
				lvl.Gates = append(lvl.Gates, c)
			case GlyphExit:
				if f.Next == "" {
					return nil, errb.With("row", row, "col", col).Wrap(ErrExitWithoutNext)
				}
				lvl.Triggers = append(lvl.Triggers, TriggerSpawn{Cell: c, Action: component.TriggerExit, Next: f.Next})
			case GlyphWin:
				lvl.Triggers = append(lvl.Triggers, TriggerSpawn{Cell: c, Action: component.TriggerWin})
			default:
				if def, ok := enemies[r]; ok {
					lvl.Enemies = append(lvl.Enemies, EnemySpawn{Cell: c, Glyph: r, Def: def})
				} else if it, ok := items[r]; ok {
					lvl.Items = append(lvl.Items, ItemSpawn{Cell: c, Glyph: r, Item: it})
				} else {
					return nil, errb.With("row", row, "col", col, "glyph", string(r)).Wrap(ErrUnknownGlyph)
				}
			}
			col++
		}
		if col > lvl.Width {
			lvl.Width = col
		}
	}

	switch {
	case players == 0:
		return nil, errb.Wrap(ErrNoPlayer)
	case players > 1:
		return nil, errb.With("count", players).Wrap(ErrManyPlayers)
	}
	return lvl, nil
}

// declGlyph validates a single-rune glyph declaration
func declGlyph(key string) (rune, error) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, ErrUnknownGlyph
	}
	r, _ := utf8.DecodeRuneInString(key)
	if strings.ContainsRune("#. @+>*", r) {
		return 0, ErrReservedGlyph
	}
	return r, nil
}

func withEnemyDefaults(doc enemyDoc) EnemyDef {
	d := EnemyDef{
		Name:    doc.Name,
		Health:  doc.Health,
		Attack:  doc.Attack,
		Defence: parameter.EnemyDefaultDefence,
	}
	if d.Name == "" {
		d.Name = "enemy"
	}
	if d.Health <= 0 {
		d.Health = parameter.EnemyDefaultHealth
	}
	if d.Attack <= 0 {
		d.Attack = parameter.EnemyDefaultAttack
	}
	if doc.Defence != nil {
		d.Defence = max(0, *doc.Defence)
	}
	return d
}
