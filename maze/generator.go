package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
)

const (
	DefaultSize       = 30
	DefaultBraidRatio = 0.08
	MinSize           = 5
)

var (
	ErrInvalidSize       = errors.New("invalid maze size")
	ErrInvalidBraidRatio = errors.New("invalid braid ratio")
	ErrDisconnected      = errors.New("maze has unreachable passages")
)

type Config struct {
	// Side length. Odd sizes align the room lattice with the border;
	// even sizes are accepted and rely on the end connector.
	Size int

	// Fraction of Size² interior walls to knock out after the spanning tree
	// is built, 0.0 (perfect maze) to 1.0.
	BraidRatio float64

	Seed int64      // Optional (0 = Random)
	Rand *rand.Rand // Optional, overrides Seed
}

// NewRand returns a seeded source, time-based when seed is 0
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate creates a braided maze with start (1,1) and end (N-2,N-2)
func Generate(cfg Config) (*Grid, error) {
	if cfg.Size < MinSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, cfg.Size, MinSize)
	}
	if math.IsNaN(cfg.BraidRatio) || cfg.BraidRatio < 0 || cfg.BraidRatio > 1 {
		return nil, fmt.Errorf("%w: %v (want 0.0 - 1.0)", ErrInvalidBraidRatio, cfg.BraidRatio)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}

	n := cfg.Size
	g := newWallGrid(n, Point{1, 1}, Point{n - 2, n - 2})

	// Spanning tree over the odd lattice
	recursiveBacktracker(g, rng)

	if cfg.BraidRatio > 0 {
		applyBraiding(g, int(float64(n*n)*cfg.BraidRatio), rng)
	}

	g.set(g.start, Passage)
	connectEnd(g, rng)

	if err := Verify(g); err != nil {
		return nil, err
	}
	return g, nil
}

// --- Core Algorithms ---

func recursiveBacktracker(g *Grid, rng *rand.Rand) {
	stack := []Point{g.start}
	g.set(g.start, Passage)

	candidates := make([]Direction, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range Directions {
			next := curr.Step(d, 2)
			if g.interior(next) && g.cells[next.Row][next.Col] == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		g.set(curr.Add(d), Passage)
		next := curr.Step(d, 2)
		g.set(next, Passage)
		stack = append(stack, next)
	}
}

// applyBraiding opens up to quota interior walls in shuffled order.
// A wall only opens when it already touches a passage, so every opened cell
// joins the connected region instead of becoming an unreachable pocket.
func applyBraiding(g *Grid, quota int, rng *rand.Rand) {
	if quota <= 0 {
		return
	}

	walls := make([]Point, 0, g.size*g.size)
	for r := 1; r < g.size-1; r++ {
		for c := 1; c < g.size-1; c++ {
			if g.cells[r][c] == Wall {
				walls = append(walls, Point{r, c})
			}
		}
	}

	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	opened := 0
	for _, w := range walls {
		if opened >= quota {
			return
		}
		if !touchesPassage(g, w) {
			continue
		}
		g.set(w, Passage)
		opened++
	}
}

// connectEnd opens the end cell and, when it has no open neighbour, its left
// or top neighbour picked at random. Both candidates border (N-3,N-3) on even
// sizes, which is always a lattice room.
func connectEnd(g *Grid, rng *rand.Rand) {
	g.set(g.end, Passage)
	if touchesPassage(g, g.end) {
		return
	}
	if rng.Intn(2) == 0 {
		g.set(g.end.Add(Left), Passage)
	} else {
		g.set(g.end.Add(Up), Passage)
	}
}

func touchesPassage(g *Grid, p Point) bool {
	for _, d := range Directions {
		if g.IsOpen(p.Add(d)) {
			return true
		}
	}
	return false
}

// --- Connectivity ---

// Reachable flood-fills open cells from p. Empty if p is not open.
func Reachable(g *Grid, from Point) mapset.Set[Point] {
	seen := mapset.New[Point]()
	if !g.IsOpen(from) {
		return seen
	}
	seen.Put(from)
	queue := []Point{from}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			next := curr.Add(d)
			if g.IsOpen(next) && !seen.Has(next) {
				seen.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return seen
}

// Verify checks the border is solid, start and end are open, and every
// passage is reachable from start
func Verify(g *Grid) error {
	for i := 0; i < g.size; i++ {
		for _, p := range [4]Point{{0, i}, {g.size - 1, i}, {i, 0}, {i, g.size - 1}} {
			if g.IsOpen(p) {
				return fmt.Errorf("%w: border cell %v is open", ErrDisconnected, p)
			}
		}
	}
	if !g.IsOpen(g.start) || !g.IsOpen(g.end) {
		return fmt.Errorf("%w: start %v or end %v is a wall", ErrDisconnected, g.start, g.end)
	}

	seen := Reachable(g, g.start)
	if !seen.Has(g.end) {
		return fmt.Errorf("%w: end %v unreachable from start %v", ErrDisconnected, g.end, g.start)
	}
	if open := g.OpenCells(); seen.Size() != len(open) {
		return fmt.Errorf("%w: %d of %d passages reachable", ErrDisconnected, seen.Size(), len(open))
	}
	return nil
}
