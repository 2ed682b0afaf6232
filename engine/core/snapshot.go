package core

import (
	"time"

	"github.com/1siamBot/snake-engine/engine/maplib"
)

// SegmentView is one drawable body segment
type SegmentView struct {
	Cell maplib.Cell // discrete position
	X, Y float64     // interpolated position in cells
	Head bool
}

// Snapshot is a read-only copy of everything a renderer needs
type Snapshot struct {
	SessionID    string
	TileCount    int
	State        GameState
	Segments     []SegmentView
	Food         maplib.Cell
	Obstacles    []Obstacle
	Direction    maplib.Direction
	Score        int
	Level        int
	TickInterval time.Duration
	Steps        uint64
	FinalScore   int
	Cause        Cause
}

// Over reports whether the snapshot shows a finished game
func (s Snapshot) Over() bool {
	return s.State == StateGameOver
}

// Head returns the head segment; ok is false before the first game
func (s Snapshot) Head() (SegmentView, bool) {
	if len(s.Segments) == 0 {
		return SegmentView{}, false
	}
	return s.Segments[0], true
}

func snapshotOf(s *Session, state GameState, level int) Snapshot {
	snap := Snapshot{
		SessionID:    s.ID,
		TileCount:    s.Board.TileCount,
		State:        state,
		Segments:     make([]SegmentView, len(s.Snake)),
		Food:         s.Food,
		Obstacles:    append([]Obstacle(nil), s.Obstacles...),
		Direction:    s.Direction,
		Score:        s.Score,
		Level:        level,
		TickInterval: s.TickInterval,
		Steps:        s.Steps,
		Cause:        s.Cause,
	}
	for i, c := range s.Snake {
		v := SegmentView{Cell: c, X: float64(c.X), Y: float64(c.Y), Head: i == 0}
		if i < len(s.Smooth) {
			v.X, v.Y = s.Smooth[i].X, s.Smooth[i].Y
		}
		snap.Segments[i] = v
	}
	if state == StateGameOver {
		snap.FinalScore = s.Score
	}
	return snap
}
