package navigation

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/maze-explorer/maze"
)

// Mode selects the frontier discipline of Search
type Mode uint8

const (
	NearestFirst Mode = iota // FIFO frontier, shortest path by edge count
	DeepestFirst             // LIFO frontier, some valid path
)

func (m Mode) String() string {
	switch m {
	case NearestFirst:
		return "BFS"
	case DeepestFirst:
		return "DFS"
	default:
		return "unknown"
	}
}

// Graph is the passability view Search needs; *maze.Grid satisfies it
type Graph interface {
	IsOpen(p maze.Point) bool
}

// Result is a start-to-end path; empty when no path exists
type Result struct {
	Path   []maze.Point
	Length int // Edge count, 0 for empty or single-cell paths
}

func (r Result) Empty() bool {
	return len(r.Path) == 0
}

// Cells returns the path as a membership set
func (r Result) Cells() map[maze.Point]bool {
	cells := make(map[maze.Point]bool, len(r.Path))
	for _, p := range r.Path {
		cells[p] = true
	}
	return cells
}

func newResult(path []maze.Point) Result {
	r := Result{Path: path}
	if len(path) > 1 {
		r.Length = len(path) - 1
	}
	return r
}

// Run searches the grid's own start and end
func Run(g *maze.Grid, mode Mode) Result {
	return Search(g, g.Start(), g.End(), mode)
}

// Search walks from start toward end, removing frontier cells per mode and
// expanding neighbours in maze.Directions order. Out-of-bounds handling is
// left to g.IsOpen. Returns an empty Result when end is never reached.
func Search(g Graph, start, end maze.Point, mode Mode) Result {
	if !g.IsOpen(start) {
		return Result{}
	}

	visited := mapset.New[maze.Point]()
	visited.Put(start)
	cameFrom := map[maze.Point]maze.Point{}
	frontier := []maze.Point{start}

	for len(frontier) > 0 {
		var curr maze.Point
		if mode == DeepestFirst {
			curr = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		} else {
			curr = frontier[0]
			frontier = frontier[1:]
		}

		if curr == end {
			return newResult(reconstruct(cameFrom, start, end))
		}

		for _, d := range maze.Directions {
			next := curr.Add(d)
			if !g.IsOpen(next) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			cameFrom[next] = curr
			frontier = append(frontier, next)
		}
	}
	return Result{}
}

// reconstruct follows parent links from end back to start, then reverses
func reconstruct(cameFrom map[maze.Point]maze.Point, start, end maze.Point) []maze.Point {
	path := []maze.Point{end}
	for curr := end; curr != start; {
		curr = cameFrom[curr]
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
