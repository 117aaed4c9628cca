package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Cell types
const (
	Wall    = true
	Passage = false
)

var ErrInvalidLayout = errors.New("invalid grid layout")

// Point is a grid coordinate, row-major and 0-indexed
type Point struct {
	Row, Col int
}

func (p Point) Add(d Direction) Point {
	return Point{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Step moves n cells along d
func (p Point) Step(d Direction, n int) Point {
	return Point{Row: p.Row + d.DRow*n, Col: p.Col + d.DCol*n}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is an orthogonal unit offset
type Direction struct {
	DRow, DCol int
}

var (
	Right = Direction{0, 1}
	Left  = Direction{0, -1}
	Down  = Direction{1, 0}
	Up    = Direction{-1, 0}
)

// Directions is the fixed enumeration order used by generation and search
var Directions = [4]Direction{Right, Left, Down, Up}

// Grid is an N×N wall/passage map with fixed start and end cells.
// It is immutable once returned by Generate or NewGrid.
type Grid struct {
	size  int
	cells [][]bool
	start Point
	end   Point
}

// newWallGrid allocates a grid filled with walls
func newWallGrid(size int, start, end Point) *Grid {
	cells := make([][]bool, size)
	for r := range cells {
		cells[r] = make([]bool, size)
		for c := range cells[r] {
			cells[r][c] = Wall
		}
	}
	return &Grid{size: size, cells: cells, start: start, end: end}
}

// NewGrid builds a grid from an ASCII layout where '#' is a wall and any other
// byte is a passage. Rows must form a square.
func NewGrid(rows []string, start, end Point) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}
	g := newWallGrid(n, start, end)
	for r, line := range rows {
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidLayout, r, len(line), n)
		}
		for c := 0; c < n; c++ {
			g.cells[r][c] = line[c] == '#'
		}
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start %v or end %v out of bounds", ErrInvalidLayout, start, end)
	}
	return g, nil
}

func (g *Grid) Size() int    { return g.size }
func (g *Grid) Start() Point { return g.start }
func (g *Grid) End() Point   { return g.end }

// InBounds reports whether p lies in [0, size) on both axes
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// IsOpen returns false for walls and out-of-bounds coordinates
func (g *Grid) IsOpen(p Point) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Passage
}

// OpenCells lists all passages in row-major order
func (g *Grid) OpenCells() []Point {
	var open []Point
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] == Passage {
				open = append(open, Point{r, c})
			}
		}
	}
	return open
}

// String renders the grid as '#' walls, 'S' start, 'E' end and spaces
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			p := Point{r, c}
			switch {
			case p == g.start:
				sb.WriteByte('S')
			case p == g.end:
				sb.WriteByte('E')
			case g.cells[r][c] == Wall:
				sb.WriteByte('#')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// set is only used during generation
func (g *Grid) set(p Point, v bool) {
	g.cells[p.Row][p.Col] = v
}

// interior reports whether p lies strictly inside the border
func (g *Grid) interior(p Point) bool {
	return p.Row > 0 && p.Row < g.size-1 && p.Col > 0 && p.Col < g.size-1
}
