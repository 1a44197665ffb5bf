package level

import (
	"math/rand/v2"
	"strings"

	"github.com/samber/oops"

	"github.com/lixenwraith/gridcrawler/parameter"
)

// GenConfig describes a procedurally generated maze level
type GenConfig struct {
	Name          string
	Width, Height int

	// Braiding is the chance in [0, 1] that a dead end is opened into a loop
	Braiding float64
	Seed     uint64

	Enemies int
	Potions int
	// Gated places a locked gate on the route to the exit and its key off the route
	Gated bool
	// Next names the level the exit leads to, empty makes the exit a win trigger
	Next string
}

type point struct {
	x, y int
}

var (
	steps = [4]point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	jumps = [4]point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
)

// maze is a wall grid, true is wall
type maze struct {
	rows, cols int
	wall       [][]bool
	rng        *rand.Rand
}

// Generate carves a maze with a recursive backtracker, braids dead ends and populates it
// The player starts in the top-left room and the exit sits in the bottom-right room
func Generate(cfg GenConfig) (*Level, error) {
	m := newMaze(oddAtLeast(cfg.Width, 5), oddAtLeast(cfg.Height, 5), cfg.Seed)
	start := point{1, 1}
	end := point{m.cols - 2, m.rows - 2}

	m.carve(start)
	if cfg.Braiding > 0 {
		m.braid(cfg.Braiding)
	}

	route := m.solve(start, end, point{-1, -1})
	if route == nil {
		return nil, oops.In("level").With("seed", cfg.Seed).Errorf("generated maze has no route")
	}

	glyphs := make(map[point]rune)
	glyphs[start] = GlyphPlayer
	if cfg.Next == "" {
		glyphs[end] = GlyphWin
	} else {
		glyphs[end] = GlyphExit
	}

	items := map[string]ItemDef{}
	if cfg.Gated && len(route) > 4 {
		gate := route[len(route)/2]
		if key, ok := m.farthest(start, gate, glyphs); ok {
			glyphs[gate] = GlyphGate
			glyphs[key] = 'k'
			items["k"] = ItemDef{Kind: "key", Name: "rusty key"}
		}
	}

	free := m.free(glyphs, start)
	m.rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	for range cfg.Potions {
		if len(free) == 0 {
			break
		}
		glyphs[free[0]] = 'p'
		free = free[1:]
		items["p"] = ItemDef{Kind: "potion", Name: "red potion", Value: 10}
	}
	enemies := map[string]enemyDoc{}
	for range cfg.Enemies {
		if len(free) == 0 {
			break
		}
		glyphs[free[0]] = 'g'
		free = free[1:]
		enemies["g"] = enemyDoc{Name: "goblin"}
	}

	name := cfg.Name
	if name == "" {
		name = "maze"
	}
	return build(&file{
		Name:    name,
		Next:    cfg.Next,
		Map:     m.render(glyphs),
		Enemies: enemies,
		Items:   items,
	})
}

func newMaze(cols, rows int, seed uint64) *maze {
	wall := make([][]bool, rows)
	for y := range wall {
		wall[y] = make([]bool, cols)
		for x := range wall[y] {
			wall[y][x] = true
		}
	}
	return &maze{
		rows: rows,
		cols: cols,
		wall: wall,
		rng:  rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)),
	}
}

func oddAtLeast(n, floor int) int {
	n = max(n, floor)
	if n%2 == 0 {
		n--
	}
	return n
}

func (m *maze) inside(p point) bool {
	return p.x > 0 && p.x < m.cols-1 && p.y > 0 && p.y < m.rows-1
}

func (m *maze) open(p point) bool {
	return p.x >= 0 && p.x < m.cols && p.y >= 0 && p.y < m.rows && !m.wall[p.y][p.x]
}

// carve opens a uniform spanning tree of rooms on odd coordinates
func (m *maze) carve(start point) {
	stack := []point{start}
	m.wall[start.y][start.x] = false

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]point, 0, 4)
		for _, d := range jumps {
			next := point{curr.x + d.x, curr.y + d.y}
			if m.inside(next) && m.wall[next.y][next.x] {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[m.rng.IntN(len(candidates))]
		m.wall[curr.y+d.y/2][curr.x+d.x/2] = false
		next := point{curr.x + d.x, curr.y + d.y}
		m.wall[next.y][next.x] = false
		stack = append(stack, next)
	}
}

// braid opens walls behind dead ends to form loops, never leaving 2x2 open squares or lone pillars
func (m *maze) braid(chance float64) {
	for y := 1; y < m.rows-1; y += 2 {
		for x := 1; x < m.cols-1; x += 2 {
			p := point{x, y}
			if !m.open(p) || m.exits(p) != 1 || m.rng.Float64() >= chance {
				continue
			}
			candidates := make([]point, 0, 4)
			for _, d := range jumps {
				next := point{x + d.x, y + d.y}
				w := point{x + d.x/2, y + d.y/2}
				if m.open(next) && !m.open(w) && m.safeToOpen(w) {
					candidates = append(candidates, w)
				}
			}
			if len(candidates) > 0 {
				w := candidates[m.rng.IntN(len(candidates))]
				m.wall[w.y][w.x] = false
			}
		}
	}
}

func (m *maze) exits(p point) int {
	n := 0
	for _, d := range steps {
		if m.open(point{p.x + d.x, p.y + d.y}) {
			n++
		}
	}
	return n
}

// safeToOpen rejects openings that create a 2x2 plaza or isolate a neighbouring wall
func (m *maze) safeToOpen(w point) bool {
	o := func(dx, dy int) bool { return m.open(point{w.x + dx, w.y + dy}) }
	switch {
	case o(-1, -1) && o(0, -1) && o(-1, 0),
		o(0, -1) && o(1, -1) && o(1, 0),
		o(-1, 0) && o(-1, 1) && o(0, 1),
		o(1, 0) && o(0, 1) && o(1, 1):
		return false
	}

	for _, d := range steps {
		n := point{w.x + d.x, w.y + d.y}
		if n.x < 0 || n.x >= m.cols || n.y < 0 || n.y >= m.rows || m.open(n) {
			continue
		}
		walls := 0
		for _, d2 := range steps {
			nn := point{n.x + d2.x, n.y + d2.y}
			if nn == w {
				continue
			}
			if nn.x >= 0 && nn.x < m.cols && nn.y >= 0 && nn.y < m.rows && !m.open(nn) {
				walls++
			}
		}
		if walls == 0 {
			return false
		}
	}
	return true
}

// solve returns the shortest open route from start to end avoiding block, nil when unreachable
func (m *maze) solve(start, end, block point) []point {
	from := map[point]point{start: start}
	queue := []point{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == end {
			var route []point
			for curr != start {
				route = append(route, curr)
				curr = from[curr]
			}
			route = append(route, start)
			for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
				route[i], route[j] = route[j], route[i]
			}
			return route
		}
		for _, d := range steps {
			next := point{curr.x + d.x, curr.y + d.y}
			if _, seen := from[next]; seen || next == block || !m.open(next) {
				continue
			}
			from[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

// farthest returns the open cell reachable from start without crossing block that is farthest from start
func (m *maze) farthest(start, block point, taken map[point]rune) (point, bool) {
	dist := map[point]int{start: 0}
	queue := []point{start}
	best, bestDist := point{}, 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if _, used := taken[curr]; !used && dist[curr] > bestDist {
			best, bestDist = curr, dist[curr]
		}
		for _, d := range steps {
			next := point{curr.x + d.x, curr.y + d.y}
			if _, seen := dist[next]; seen || next == block || !m.open(next) {
				continue
			}
			dist[next] = dist[curr] + 1
			queue = append(queue, next)
		}
	}
	return best, bestDist > 0
}

// free lists open cells outside the start's awareness radius that hold nothing yet
func (m *maze) free(taken map[point]rune, start point) []point {
	var cells []point
	for y := 1; y < m.rows-1; y++ {
		for x := 1; x < m.cols-1; x++ {
			p := point{x, y}
			if !m.open(p) {
				continue
			}
			if _, used := taken[p]; used {
				continue
			}
			if abs(p.x-start.x)+abs(p.y-start.y) <= parameter.AwarenessCells {
				continue
			}
			cells = append(cells, p)
		}
	}
	return cells
}

func (m *maze) render(glyphs map[point]rune) []string {
	rows := make([]string, m.rows)
	var b strings.Builder
	for y := range m.rows {
		b.Reset()
		for x := range m.cols {
			p := point{x, y}
			switch r, ok := glyphs[p]; {
			case ok:
				b.WriteRune(r)
			case m.wall[y][x]:
				b.WriteRune(GlyphWall)
			default:
				b.WriteRune(GlyphFloor)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
