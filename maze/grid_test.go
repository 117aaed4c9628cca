package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_RoundTrip(t *testing.T) {
	layout := []string{
		"#####",
		"#S  #",
		"### #",
		"#  E#",
		"#####",
	}
	g, err := NewGrid(layout, Point{1, 1}, Point{3, 3})
	require.NoError(t, err)

	assert.Equal(t, 5, g.Size())
	assert.True(t, g.IsOpen(Point{1, 2}))
	assert.False(t, g.IsOpen(Point{2, 2}))
	assert.False(t, g.IsOpen(Point{-1, 0}))
	assert.False(t, g.IsOpen(Point{0, 5}))
	assert.False(t, g.InBounds(Point{5, 0}))

	want := ""
	for _, row := range layout {
		want += row + "\n"
	}
	assert.Equal(t, want, g.String())
}

func TestNewGrid_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		start Point
		end   Point
	}{
		{"empty", nil, Point{0, 0}, Point{0, 0}},
		{"ragged", []string{"###", "# ", "###"}, Point{1, 1}, Point{1, 1}},
		{"not square", []string{"####", "#  #", "####"}, Point{1, 1}, Point{1, 2}},
		{"start outside", []string{"###", "# #", "###"}, Point{3, 1}, Point{1, 1}},
		{"end outside", []string{"###", "# #", "###"}, Point{1, 1}, Point{1, -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.rows, tc.start, tc.end)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestPointStep(t *testing.T) {
	p := Point{3, 3}
	assert.Equal(t, Point{3, 4}, p.Add(Right))
	assert.Equal(t, Point{1, 3}, p.Step(Up, 2))
	assert.Equal(t, Point{3, 1}, p.Step(Left, 2))
	assert.Equal(t, "(3,3)", p.String())
}
