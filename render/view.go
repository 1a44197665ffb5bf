package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/level"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// Map origin on screen, row 0 is reserved for the phase banner
const (
	mapLeft = 1
	mapTop  = 2
)

type glyph struct {
	r     rune
	style tcell.Style
	layer int
}

// View draws a world onto a tcell screen
type View struct {
	screen tcell.Screen
	world  *engine.World
}

func NewView(screen tcell.Screen, world *engine.World) *View {
	return &View{screen: screen, world: world}
}

// Draw renders one frame
func (v *View) Draw() {
	v.screen.Clear()

	bottom := v.drawMap()
	bottom = v.drawHUD(bottom + 1)
	v.drawText(mapLeft, bottom+1, Help, styleLog)
	v.drawMessages(bottom + 3)
	v.drawBanner()

	v.screen.Show()
}

// drawMap plots every actor into its grid cell and returns the last map row used
func (v *View) drawMap() int {
	cellLen := v.world.Resources.Config.CellLength
	cells := make(map[level.Cell]glyph)
	minCol, minRow := math.MaxInt, math.MaxInt
	maxCol, maxRow := math.MinInt, math.MinInt

	for _, e := range v.world.Components.Actor.GetAllEntities() {
		actor, _ := v.world.Components.Actor.GetComponent(e)
		pos, _ := v.world.PositionOf(e)
		at := level.CellAt(pos, cellLen)

		minCol, maxCol = min(minCol, at.Col), max(maxCol, at.Col)
		minRow, maxRow = min(minRow, at.Row), max(maxRow, at.Row)

		g := glyph{r: actor.Glyph, style: kindStyle(actor.Kind), layer: layer(actor.Kind)}
		if actor.Kind == core.KindPlayer {
			g.r = v.playerGlyph(e)
			if v.world.Resources.Turn.InCombat {
				g.style = styleCombat
			}
		}
		if prev, ok := cells[at]; ok && prev.layer > g.layer {
			continue
		}
		cells[at] = g
	}
	if minCol > maxCol {
		return mapTop
	}

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			x, y := mapLeft+col-minCol, mapTop+row-minRow
			if g, ok := cells[level.Cell{Col: col, Row: row}]; ok {
				v.screen.SetContent(x, y, g.r, nil, g.style)
				continue
			}
			v.screen.SetContent(x, y, level.GlyphFloor, nil, styleFloor)
		}
	}
	return mapTop + maxRow - minRow
}

// playerGlyph points an arrow along the player's facing
func (v *View) playerGlyph(e core.Entity) rune {
	c, ok := v.world.Components.Character.GetComponent(e)
	if !ok {
		return level.GlyphPlayer
	}
	switch c.Facing() {
	case vmath.DirNorth:
		return '^'
	case vmath.DirSouth:
		return 'v'
	case vmath.DirEast:
		return '>'
	case vmath.DirWest:
		return '<'
	}
	return level.GlyphPlayer
}

// drawHUD prints vitals and run state, returns the last row used
func (v *View) drawHUD(row int) int {
	res := v.world.Resources
	hp, maxHP := 0, 0
	for _, e := range v.world.Components.Character.GetAllEntities() {
		if v.world.KindOf(e) == core.KindPlayer {
			c, _ := v.world.Components.Character.GetComponent(e)
			hp, maxHP = c.Health, c.MaxHealth
			break
		}
	}

	line := fmt.Sprintf("HP %d/%d  Turn %d  Gold %d  Kills %d  Level %s",
		hp, maxHP, res.Turn.Turn, res.Session.Gold, res.Session.Kills, res.Session.Level)
	v.drawText(mapLeft, row, line, styleHUD)

	status := ""
	switch {
	case res.Turn.InCombat && res.Turn.Dodged:
		status = " FREE TO MOVE "
	case res.Turn.InCombat:
		status = " COMBAT "
	case res.Turn.Owner == core.SideEnemy:
		status = " ENEMY TURN "
	}
	if status != "" {
		v.drawText(mapLeft+len(line)+2, row, status, styleCombat)
	}
	return row
}

func (v *View) drawMessages(row int) {
	lines := v.world.Resources.Messages.Lines()
	start := max(0, len(lines)-parameter.MessageLogSize)
	for i, line := range lines[start:] {
		style := styleLog
		if start+i == len(lines)-1 {
			style = styleLatest
		}
		v.drawText(mapLeft, row+i, line, style)
	}
}

// drawBanner shows the session phase when play is suspended
func (v *View) drawBanner() {
	var text string
	switch v.world.Resources.Session.Phase {
	case engine.PhasePaused:
		text = "PAUSED"
	case engine.PhaseLevelComplete:
		text = "DESCENDING"
	case engine.PhaseWon:
		text = "YOU ESCAPED THE DUNGEON"
	case engine.PhaseLost:
		text = "YOU DIED"
	default:
		return
	}
	w, _ := v.screen.Size()
	x := max(0, (w-len(text)-2)/2)
	v.drawText(x, 0, " "+text+" ", styleBanner)
}

// drawText writes a single line clipped to the screen width
func (v *View) drawText(x, y int, text string, style tcell.Style) {
	w, h := v.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			v.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
