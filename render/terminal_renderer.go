package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-explorer/game"
	"github.com/lixenwraith/maze-explorer/maze"
)

const (
	// Terminal cells are roughly twice as tall as wide
	CellWidth = 2

	DashboardGap    = 2
	DashboardWidth  = 28
	DashboardHeight = 18 // Tallest layout: the three result panels
	panelPadding    = 1
)

// TerminalRenderer draws a session onto a tcell screen
type TerminalRenderer struct {
	screen  tcell.Screen
	SoundOn bool
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RequiredSize is the terminal size needed for a maze of the given side
func RequiredSize(mazeSize int) (width, height int) {
	return mazeSize*CellWidth + DashboardGap + DashboardWidth, max(mazeSize, DashboardHeight)
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(s *game.Session, now time.Time) {
	r.screen.Clear()

	w, h := r.screen.Size()
	needW, needH := RequiredSize(s.Grid.Size())
	if w < needW || h < needH {
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, w, h)
		r.drawText(0, 0, msg, tcell.StyleDefault)
		r.screen.Show()
		return
	}

	r.drawGrid(s.Grid, s.SinceFinish(now))

	if s.Player.GoalReached() {
		// Alternative under trace under optimal
		r.drawPath(s.Player.DFSResult().Path, RgbDFSPath, '·')
		r.drawPath(s.Player.History(), RgbPlayerPath, '•')
		r.drawPath(s.Player.BFSResult().Path, RgbOptimalPath, '●')
	}

	r.drawActor(s.Player.Position())
	r.drawDashboard(s, now)

	r.screen.Show()
}

// drawGrid paints walls, passages and the start/end squares
func (r *TerminalRenderer) drawGrid(g *maze.Grid, sinceWin time.Duration) {
	floor := tcell.StyleDefault.Background(FloorColor(sinceWin))
	wall := tcell.StyleDefault.Foreground(RgbWall).Background(RgbWall)

	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			p := maze.Point{Row: row, Col: col}
			switch {
			case p == g.Start():
				r.fillCell(p, ' ', floor.Background(RgbStart))
			case p == g.End():
				r.fillCell(p, ' ', floor.Background(RgbEnd))
			case g.IsOpen(p):
				r.fillCell(p, ' ', floor)
			default:
				r.fillCell(p, '█', wall)
			}
		}
	}
}

// drawPath overlays a glyph on each path cell, keeping the cell background
func (r *TerminalRenderer) drawPath(path []maze.Point, color tcell.Color, glyph rune) {
	for _, p := range path {
		x := p.Col * CellWidth
		_, _, style, _ := r.screen.GetContent(x, p.Row)
		r.screen.SetContent(x, p.Row, glyph, nil, style.Foreground(color))
	}
}

func (r *TerminalRenderer) drawActor(p maze.Point) {
	x := p.Col * CellWidth
	_, _, style, _ := r.screen.GetContent(x, p.Row)
	style = style.Foreground(RgbActor).Bold(true)
	r.screen.SetContent(x, p.Row, '@', nil, style)
}

func (r *TerminalRenderer) fillCell(p maze.Point, glyph rune, style tcell.Style) {
	x := p.Col * CellWidth
	for i := 0; i < CellWidth; i++ {
		r.screen.SetContent(x+i, p.Row, glyph, nil, style)
	}
}

// drawDashboard draws the status and score panels right of the maze
func (r *TerminalRenderer) drawDashboard(s *game.Session, now time.Time) {
	left := s.Grid.Size()*CellWidth + DashboardGap
	_, h := r.screen.Size()

	bg := tcell.StyleDefault.Background(RgbDashboardBg)
	for y := 0; y < h; y++ {
		for x := left; x < left+DashboardWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	panel := tcell.StyleDefault.Background(RgbPanel).Foreground(RgbDashboardText)
	header := panel.Foreground(RgbHeader).Bold(true)
	y := panelPadding

	if !s.Player.GoalReached() {
		lines := []styledLine{
			{"STATUS", header},
			{"Controls: ARROW keys", panel},
			{"Goal: Blue Square", panel},
			{fmt.Sprintf("Moves: %d", s.Player.Moves()), panel},
			{fmt.Sprintf("Time: %.1fs", s.Elapsed(now).Seconds()), panel},
			{"Sound: " + onOff(r.SoundOn) + " (Ctrl+S)", panel},
		}
		r.drawPanel(left, y, lines)
		return
	}

	sc := s.Score()
	verdictStyle := panel.Foreground(RgbPlayerPath).Bold(true)
	if sc.Perfect() {
		verdictStyle = panel.Foreground(RgbStart).Bold(true)
	}

	y = r.drawPanel(left, y, []styledLine{
		{"GOAL REACHED!", header},
		{"Press SPACE to exit", panel},
		{fmt.Sprintf("Time: %.1fs", s.Elapsed(now).Seconds()), panel},
	})
	y = r.drawPanel(left, y+panelPadding, []styledLine{
		{"VERDICT:", panel.Bold(true)},
		{sc.Verdict(), verdictStyle},
	})
	r.drawPanel(left, y+panelPadding, []styledLine{
		{"SCORE BREAKDOWN", header},
		{r.scoreRow("Optimal (BFS):", sc.Optimal), panel.Foreground(RgbOptimalPath)},
		{r.scoreRow("Your Path:", sc.Player), panel.Foreground(RgbPlayerPath)},
		{r.scoreRow("DFS Path:", sc.Alternative), panel.Foreground(RgbDFSPath)},
	})
}

type styledLine struct {
	text  string
	style tcell.Style
}

// drawPanel fills a panel box with one line per entry and returns the row
// below it
func (r *TerminalRenderer) drawPanel(left, top int, lines []styledLine) int {
	panel := tcell.StyleDefault.Background(RgbPanel)
	x0 := left + panelPadding
	x1 := left + DashboardWidth - panelPadding
	bottom := top + len(lines) + 2

	for y := top; y < bottom; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, panel)
		}
	}
	for i, l := range lines {
		r.drawText(x0+1, top+1+i, l.text, l.style)
	}
	return bottom
}

// scoreRow right-aligns the value inside the panel
func (r *TerminalRenderer) scoreRow(label string, value int) string {
	inner := DashboardWidth - 2*panelPadding - 2
	return fmt.Sprintf("%-*s%*d", inner-6, label, 6, value)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	n := 0
	for _, ch := range text {
		r.screen.SetContent(x+n, y, ch, nil, style)
		n++
	}
	return n
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
