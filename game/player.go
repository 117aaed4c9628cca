package game

import (
	"slices"

	"github.com/lixenwraith/maze-explorer/maze"
	"github.com/lixenwraith/maze-explorer/navigation"
)

// Player tracks position and trace on a fixed grid. Reaching the end cell
// latches GoalReached and computes both reference paths exactly once.
type Player struct {
	grid        *maze.Grid
	pos         maze.Point
	history     []maze.Point
	goalReached bool

	bfs navigation.Result
	dfs navigation.Result
}

// NewPlayer places a player on the grid's start cell
func NewPlayer(g *maze.Grid) *Player {
	return &Player{
		grid:    g,
		pos:     g.Start(),
		history: []maze.Point{g.Start()},
	}
}

// AttemptMove steps one cell along d. Walls, out-of-bounds targets and any
// move after the goal leave the state untouched. Returns true if the
// position changed.
func (p *Player) AttemptMove(d maze.Direction) bool {
	if p.goalReached {
		return false
	}

	target := p.pos.Add(d)
	if !p.grid.IsOpen(target) {
		return false
	}

	p.pos = target
	if len(p.history) == 0 || p.history[len(p.history)-1] != target {
		p.history = append(p.history, target)
	}

	if target == p.grid.End() {
		p.goalReached = true
		p.bfs = navigation.Run(p.grid, navigation.NearestFirst)
		p.dfs = navigation.Run(p.grid, navigation.DeepestFirst)
	}
	return true
}

func (p *Player) Position() maze.Point { return p.pos }
func (p *Player) GoalReached() bool    { return p.goalReached }

// History returns a copy of the visited trace, start first
func (p *Player) History() []maze.Point {
	return slices.Clone(p.history)
}

// Moves is the edge count of the player's trace
func (p *Player) Moves() int {
	if len(p.history) == 0 {
		return 0
	}
	return len(p.history) - 1
}

// BFSResult is empty until the goal is reached
func (p *Player) BFSResult() navigation.Result { return p.bfs }

// DFSResult is empty until the goal is reached
func (p *Player) DFSResult() navigation.Result { return p.dfs }
