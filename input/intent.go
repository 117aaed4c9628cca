package input

import "github.com/lixenwraith/maze-explorer/maze"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // ESC, Ctrl+C, Ctrl+Q
	IntentConfirm     // Space, leaves the game once the goal is reached
	IntentToggleSound // Ctrl+S
	IntentResize      // Terminal resize event

	// Player movement
	IntentMove // Arrows, h/j/k/l, w/a/s/d
)

// Intent is a resolved key press
type Intent struct {
	Type      IntentType
	Direction maze.Direction // Valid for IntentMove
}
