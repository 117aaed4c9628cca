package input

import "github.com/lixenwraith/maze-explorer/maze"

// Cadence rate-limits movement to one step per delay ticks.
// Terminals report no key releases, so each press (including auto-repeat)
// latches a single pending step that the next eligible tick consumes.
type Cadence struct {
	delay   int
	timer   int
	pending bool
	dir     maze.Direction
}

// NewCadence allows the first step on the first tick after a press
func NewCadence(delay int) *Cadence {
	if delay < 1 {
		delay = 1
	}
	return &Cadence{delay: delay, timer: delay}
}

// Press latches d, replacing any step not yet taken
func (c *Cadence) Press(d maze.Direction) {
	c.dir = d
	c.pending = true
}

// Tick advances one frame and returns the step to take, if any
func (c *Cadence) Tick() (maze.Direction, bool) {
	if c.timer < c.delay {
		c.timer++
	}
	if c.timer < c.delay || !c.pending {
		return maze.Direction{}, false
	}
	c.timer = 0
	c.pending = false
	return c.dir, true
}

// Reset drops any pending step
func (c *Cadence) Reset() {
	c.pending = false
}
