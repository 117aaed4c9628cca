package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the maze and dashboard
var (
	RgbFloor = tcell.NewRGBColor(245, 245, 245) // Off-white passage
	RgbWall  = tcell.NewRGBColor(40, 40, 40)    // Charcoal
	RgbStart = tcell.NewRGBColor(100, 200, 100) // Soft green
	RgbEnd   = tcell.NewRGBColor(100, 150, 255) // Soft blue
	RgbActor = tcell.NewRGBColor(255, 100, 100) // Player marker

	RgbPlayerPath  = tcell.NewRGBColor(255, 180, 0) // Amber trace
	RgbOptimalPath = tcell.NewRGBColor(255, 0, 0)   // Red, drawn on top
	RgbDFSPath     = tcell.NewRGBColor(150, 50, 150)

	RgbDashboardBg   = tcell.NewRGBColor(60, 60, 60)
	RgbPanel         = tcell.NewRGBColor(90, 90, 90)
	RgbDashboardText = tcell.NewRGBColor(255, 255, 255)
	RgbHeader        = tcell.NewRGBColor(255, 180, 0)
)

// FloorColor pulses the passage brightness after the goal is reached.
// sinceWin <= 0 returns the static floor color.
func FloorColor(sinceWin time.Duration) tcell.Color {
	if sinceWin <= 0 {
		return RgbFloor
	}
	t := sinceWin.Seconds() * 2
	raw := 245 + 10*(1+math.Sin(t*3))
	v := int32(math.Max(0, math.Min(255, raw)))
	return tcell.NewRGBColor(v, v, v)
}
