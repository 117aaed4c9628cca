package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-explorer/maze"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, ESC)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

func move(d maze.Direction) Intent {
	return Intent{Type: IntentMove, Direction: d}
}

// DefaultKeyTable binds arrows plus vi and WASD movement
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleSound},
			tcell.KeyUp:     move(maze.Up),
			tcell.KeyDown:   move(maze.Down),
			tcell.KeyLeft:   move(maze.Left),
			tcell.KeyRight:  move(maze.Right),
		},
		Runes: map[rune]Intent{
			' ': {Type: IntentConfirm},
			'k': move(maze.Up),
			'j': move(maze.Down),
			'h': move(maze.Left),
			'l': move(maze.Right),
			'w': move(maze.Up),
			's': move(maze.Down),
			'a': move(maze.Left),
			'd': move(maze.Right),
		},
	}
}

// Resolve maps a key code and rune to an intent. r is only consulted for
// tcell.KeyRune.
func (kt *KeyTable) Resolve(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		if in, ok := kt.Runes[r]; ok {
			return in
		}
		return Intent{}
	}
	if in, ok := kt.SpecialKeys[key]; ok {
		return in
	}
	return Intent{}
}

// Translate converts a tcell event into an intent
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.Resolve(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
