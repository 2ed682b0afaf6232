package core

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/1siamBot/snake-engine/engine/maplib"
)

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cell", func(c *Config) { c.CellSize = 0 }},
		{"tiny board", func(c *Config) { c.CanvasSize = 20 }},
		{"start outside", func(c *Config) { c.Start = maplib.Cell{X: 20, Y: 0} }},
		{"bad direction", func(c *Config) { c.StartDirection = maplib.Direction(7) }},
		{"floor above base", func(c *Config) { c.MinTick = 300 * time.Millisecond }},
		{"zero floor", func(c *Config) { c.MinTick = 0 }},
		{"negative decrement", func(c *Config) { c.TickDecrement = -time.Millisecond }},
		{"no reward", func(c *Config) { c.FoodReward = 0 }},
		{"no difficulty step", func(c *Config) { c.DifficultyStep = 0 }},
		{"negative cap", func(c *Config) { c.ObstacleCap = -1 }},
		{"animation speed", func(c *Config) { c.AnimationSpeed = 1.5 }},
		{"spawn attempts", func(c *Config) { c.MaxSpawnAttempts = 0 }},
		{"catch-up steps", func(c *Config) { c.CatchUp, c.MaxCatchUpSteps = true, 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestCommandEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	in := []Command{
		{Tick: 0, Type: CmdStart},
		{Tick: 17, Type: CmdSetDirection, Dir: maplib.Up},
		{Tick: 1 << 40, Type: CmdEnd},
	}
	for i := range in {
		if err := in[i].Encode(&buf); err != nil {
			t.Fatal(err)
		}
	}
	if buf.Len() != 3*10 {
		t.Errorf("encoded %d bytes, want 30", buf.Len())
	}
	for i := range in {
		var out Command
		if err := out.Decode(&buf); err != nil {
			t.Fatal(err)
		}
		if out != in[i] {
			t.Errorf("command %d = %+v, want %+v", i, out, in[i])
		}
	}
	var extra Command
	if err := extra.Decode(&buf); !errors.Is(err, io.EOF) {
		t.Errorf("decode past end = %v", err)
	}
}

func TestCommandDecodePartialRecord(t *testing.T) {
	full := []byte{5, 0, 0, 0, 0, 0, 0, 0, byte(CmdSetDirection), byte(maplib.Up)}
	tests := []struct {
		name string
		n    int
		want error
	}{
		{"empty", 0, io.EOF},
		{"inside tick", 4, io.ErrUnexpectedEOF},
		{"tick only", 8, io.ErrUnexpectedEOF},
		{"missing direction", 9, io.ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Command
			if err := c.Decode(bytes.NewReader(full[:tt.n])); err != tt.want {
				t.Errorf("Decode = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCommandDecodeUnknownType(t *testing.T) {
	raw := []byte{1, 0, 0, 0, 0, 0, 0, 0, 99, 0}
	var c Command
	if err := c.Decode(bytes.NewReader(raw)); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Decode = %v", err)
	}
}

func TestSessionPrependPopTail(t *testing.T) {
	s := NewSession("s", DefaultConfig())
	s.Prepend(maplib.Cell{X: 6, Y: 5})
	s.Prepend(maplib.Cell{X: 7, Y: 5})
	if s.Len() != 3 || len(s.Smooth) != 3 {
		t.Fatalf("snake %d smooth %d", s.Len(), len(s.Smooth))
	}
	s.PopTail()
	s.PopTail()
	s.PopTail()
	if s.Len() != 1 || len(s.Smooth) != 1 {
		t.Errorf("snake shrank to %d/%d", s.Len(), len(s.Smooth))
	}
	if s.Head() != (maplib.Cell{X: 7, Y: 5}) {
		t.Errorf("head = %v", s.Head())
	}
}

func TestSessionOccupancy(t *testing.T) {
	s := NewSession("s", DefaultConfig())
	s.Food = maplib.Cell{X: 1, Y: 1}
	s.Obstacles = []Obstacle{{Cell: maplib.Cell{X: 2, Y: 2}, Kind: KindSpike}}

	tests := []struct {
		c                     maplib.Cell
		occupied, near, snake bool
	}{
		{maplib.Cell{X: 1, Y: 1}, true, false, false},
		{maplib.Cell{X: 2, Y: 2}, true, false, false},
		{maplib.Cell{X: 5, Y: 5}, false, true, true},
		{maplib.Cell{X: 6, Y: 6}, false, true, false},
		{maplib.Cell{X: 7, Y: 5}, false, false, false},
	}
	for _, tt := range tests {
		if got := s.IsOccupied(tt.c); got != tt.occupied {
			t.Errorf("IsOccupied(%v) = %v", tt.c, got)
		}
		if got := s.IsNearSnake(tt.c); got != tt.near {
			t.Errorf("IsNearSnake(%v) = %v", tt.c, got)
		}
		if got := s.OnSnake(tt.c); got != tt.snake {
			t.Errorf("OnSnake(%v) = %v", tt.c, got)
		}
	}
	if o, ok := s.ObstacleAt(maplib.Cell{X: 2, Y: 2}); !ok || !o.Kind.Lethal() {
		t.Errorf("ObstacleAt = %+v, %v", o, ok)
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(400), b.Intn(400); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if ResolveSeed(0) == 0 {
		t.Error("seed 0 not resolved")
	}
	if ResolveSeed(9) != 9 {
		t.Error("explicit seed changed")
	}
}
