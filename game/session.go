package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/maze-explorer/maze"
)

// Session owns everything one play-through needs. It is created once and
// handed to the input and render loop; nothing here is global.
type Session struct {
	ID     uuid.UUID
	Grid   *maze.Grid
	Player *Player

	StartedAt  time.Time
	FinishedAt time.Time // Zero until Finish
}

// NewSession generates the maze and places the player on start.
// now is the caller's clock so the core never reads time itself.
func NewSession(cfg maze.Config, now time.Time) (*Session, error) {
	g, err := maze.Generate(cfg)
	if err != nil {
		return nil, fmt.Errorf("generate maze: %w", err)
	}

	s := &Session{
		ID:        uuid.New(),
		Grid:      g,
		Player:    NewPlayer(g),
		StartedAt: now,
	}
	log.Printf("[SESSION] %s started: size=%d braid=%.2f", s.ID, g.Size(), cfg.BraidRatio)
	return s, nil
}

// Move forwards to the player and stamps FinishedAt on the goal transition
func (s *Session) Move(d maze.Direction, now time.Time) bool {
	wasDone := s.Player.GoalReached()
	moved := s.Player.AttemptMove(d)
	if !wasDone && s.Player.GoalReached() {
		s.FinishedAt = now
		sc := s.Score()
		log.Printf("[SESSION] %s goal reached: player=%d optimal=%d dfs=%d elapsed=%s",
			s.ID, sc.Player, sc.Optimal, sc.Alternative, s.Elapsed(now).Round(time.Millisecond))
	}
	return moved
}

// Elapsed is the play time so far, frozen once the goal is reached
func (s *Session) Elapsed(now time.Time) time.Duration {
	if !s.FinishedAt.IsZero() {
		return s.FinishedAt.Sub(s.StartedAt)
	}
	return now.Sub(s.StartedAt)
}

// SinceFinish is how long ago the goal was reached, 0 before that
func (s *Session) SinceFinish(now time.Time) time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return now.Sub(s.FinishedAt)
}

func (s *Session) Score() Score {
	return ScoreOf(s.Player)
}
