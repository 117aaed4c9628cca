package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-explorer/maze"
	"github.com/lixenwraith/maze-explorer/navigation"
)

// One route from S to E along the top (8 moves) and a dead-end branch down
// the left column
var branchLayout = []string{
	"#######",
	"#S    #",
	"# ### #",
	"# #E  #",
	"# #####",
	"#     #",
	"#######",
}

func branchGrid(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.NewGrid(branchLayout, maze.Point{Row: 1, Col: 1}, maze.Point{Row: 3, Col: 3})
	require.NoError(t, err)
	return g
}

func moveAll(p *Player, dirs ...maze.Direction) {
	for _, d := range dirs {
		p.AttemptMove(d)
	}
}

func TestPlayer_Initial(t *testing.T) {
	g := branchGrid(t)
	p := NewPlayer(g)

	assert.Equal(t, g.Start(), p.Position())
	assert.Equal(t, []maze.Point{g.Start()}, p.History())
	assert.False(t, p.GoalReached())
	assert.Zero(t, p.Moves())
	assert.True(t, p.BFSResult().Empty())
	assert.True(t, p.DFSResult().Empty())
	assert.Equal(t, Score{}, ScoreOf(p))
}

func TestPlayer_BlockedMovesAreNoOps(t *testing.T) {
	g := branchGrid(t)
	p := NewPlayer(g)

	for _, d := range []maze.Direction{maze.Up, maze.Left} {
		before := p.History()
		assert.False(t, p.AttemptMove(d))
		assert.Equal(t, g.Start(), p.Position())
		assert.Equal(t, before, p.History())
	}

	// Out of bounds from a hand-made grid with an open edge
	edge, err := maze.NewGrid([]string{
		"# #",
		"# #",
		"###",
	}, maze.Point{Row: 0, Col: 1}, maze.Point{Row: 1, Col: 1})
	require.NoError(t, err)
	q := NewPlayer(edge)
	assert.False(t, q.AttemptMove(maze.Up))
	assert.Equal(t, maze.Point{Row: 0, Col: 1}, q.Position())
	assert.Len(t, q.History(), 1)
}

func TestPlayer_HistoryTracksMoves(t *testing.T) {
	g := branchGrid(t)
	p := NewPlayer(g)

	assert.True(t, p.AttemptMove(maze.Right))
	assert.False(t, p.AttemptMove(maze.Up))
	assert.False(t, p.AttemptMove(maze.Up))
	assert.True(t, p.AttemptMove(maze.Left))

	assert.Equal(t, []maze.Point{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}, p.History())
	assert.Equal(t, 2, p.Moves())

	// The returned slice is a copy
	h := p.History()
	h[0] = maze.Point{Row: 9, Col: 9}
	assert.Equal(t, maze.Point{Row: 1, Col: 1}, p.History()[0])
}

func TestPlayer_GoalComputesReferencePaths(t *testing.T) {
	g := branchGrid(t)
	p := NewPlayer(g)

	// Try the dead-end branch first, then take the top corridor
	moveAll(p, maze.Down, maze.Down, maze.Up, maze.Up)
	assert.False(t, p.GoalReached())
	assert.True(t, p.BFSResult().Empty())

	moveAll(p, maze.Right, maze.Right, maze.Right, maze.Right, maze.Down, maze.Down, maze.Left)
	assert.False(t, p.GoalReached())
	assert.True(t, p.AttemptMove(maze.Left))
	require.True(t, p.GoalReached())
	assert.Equal(t, g.End(), p.Position())

	assert.Equal(t, 8, p.BFSResult().Length)
	assert.Equal(t, g.Start(), p.BFSResult().Path[0])
	assert.Equal(t, g.End(), p.DFSResult().Path[len(p.DFSResult().Path)-1])
	assert.Equal(t, navigation.Run(g, navigation.DeepestFirst), p.DFSResult())
	assert.Equal(t, 12, p.Moves())

	sc := ScoreOf(p)
	assert.Equal(t, Score{Optimal: 8, Player: 12, Alternative: 8, Extra: 4}, sc)
	assert.Equal(t, "4 EXTRA MOVES", sc.Verdict())
}

func TestPlayer_GoalIsFinal(t *testing.T) {
	g := branchGrid(t)
	p := NewPlayer(g)
	moveAll(p, maze.Right, maze.Right, maze.Right, maze.Right, maze.Down, maze.Down, maze.Left, maze.Left)
	require.True(t, p.GoalReached())

	pos, hist := p.Position(), p.History()
	bfs, dfs := p.BFSResult(), p.DFSResult()

	for _, d := range maze.Directions {
		assert.False(t, p.AttemptMove(d))
	}

	assert.True(t, p.GoalReached())
	assert.Equal(t, pos, p.Position())
	assert.Equal(t, hist, p.History())
	assert.Equal(t, bfs, p.BFSResult())
	assert.Equal(t, dfs, p.DFSResult())

	sc := ScoreOf(p)
	assert.True(t, sc.Perfect())
	assert.Equal(t, "PERFECT!", sc.Verdict())
}

func TestPlayer_RandomWalkOnGeneratedMaze(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, err := maze.Generate(maze.Config{Size: 15, BraidRatio: 0.1, Rand: rng})
	require.NoError(t, err)
	p := NewPlayer(g)

	for i := 0; i < 500000 && !p.GoalReached(); i++ {
		p.AttemptMove(maze.Directions[rng.Intn(4)])
	}
	require.True(t, p.GoalReached(), "random walk never reached the goal")

	h := p.History()
	assert.Equal(t, p.Position(), h[len(h)-1])
	for j := 1; j < len(h); j++ {
		require.NotEqual(t, h[j-1], h[j], "duplicate consecutive entry at %d", j)
	}
	assert.LessOrEqual(t, p.BFSResult().Length, p.Moves())
	assert.LessOrEqual(t, p.BFSResult().Length, p.DFSResult().Length)
}

func TestSession_Lifecycle(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s, err := NewSession(maze.Config{Size: 11, Rand: rand.New(rand.NewSource(5))}, start)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Same(t, s.Grid, s.Player.grid)
	assert.Equal(t, 3*time.Second, s.Elapsed(start.Add(3*time.Second)))
	assert.Zero(t, s.SinceFinish(start.Add(time.Hour)))

	// Walk the optimal path
	path := navigation.Run(s.Grid, navigation.NearestFirst).Path
	now := start
	for i := 1; i < len(path); i++ {
		now = now.Add(time.Second)
		d := maze.Direction{DRow: path[i].Row - path[i-1].Row, DCol: path[i].Col - path[i-1].Col}
		require.True(t, s.Move(d, now))
	}

	require.True(t, s.Player.GoalReached())
	assert.Equal(t, now, s.FinishedAt)
	assert.Equal(t, time.Duration(len(path)-1)*time.Second, s.Elapsed(now.Add(time.Minute)))
	assert.Equal(t, time.Minute, s.SinceFinish(now.Add(time.Minute)))
	assert.True(t, s.Score().Perfect())

	assert.False(t, s.Move(maze.Left, now.Add(time.Hour)))
	assert.Equal(t, now, s.FinishedAt)
}

func TestSession_InvalidConfig(t *testing.T) {
	_, err := NewSession(maze.Config{Size: 3}, time.Now())
	assert.ErrorIs(t, err, maze.ErrInvalidSize)
}
