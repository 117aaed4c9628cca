package game

import "fmt"

// Score compares the player's trace with the reference paths, in edges
type Score struct {
	Optimal     int // Breadth-first path length
	Player      int
	Alternative int // Depth-first path length
	Extra       int // Player - Optimal
}

func (s Score) Perfect() bool {
	return s.Extra == 0
}

// Verdict is the dashboard headline
func (s Score) Verdict() string {
	if s.Perfect() {
		return "PERFECT!"
	}
	return fmt.Sprintf("%d EXTRA MOVES", s.Extra)
}

// ScoreOf is zero until the player reaches the goal
func ScoreOf(p *Player) Score {
	if !p.GoalReached() {
		return Score{}
	}
	optimal := p.BFSResult().Length
	return Score{
		Optimal:     optimal,
		Player:      p.Moves(),
		Alternative: p.DFSResult().Length,
		Extra:       p.Moves() - optimal,
	}
}
