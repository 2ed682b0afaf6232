package replay

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
)

const (
	magic   = "SNKR"
	version = 1
)

var (
	ErrBadHeader = errors.New("not a snake replay")
	ErrCorrupt   = errors.New("corrupt replay")
)

// Header pins every setting that influences the simulation
type Header struct {
	Magic   [4]byte
	Version uint8
	Seed    uint64

	CanvasSize     int32
	CellSize       int32
	BaseTick       int64 // nanoseconds
	MinTick        int64
	TickDecrement  int64
	FoodReward     int32
	ObstacleCap    int32
	DifficultyStep int32
	AnimationBits  uint64 // math.Float64bits of AnimationSpeed
	StartX, StartY int32
	StartDirection uint8
	SpawnAttempts  int32
	FoodAvoids     uint8
}

// NewHeader captures cfg. The seed must already be resolved.
func NewHeader(cfg core.Config) Header {
	h := Header{
		Version:        version,
		Seed:           cfg.Seed,
		CanvasSize:     int32(cfg.CanvasSize),
		CellSize:       int32(cfg.CellSize),
		BaseTick:       int64(cfg.BaseTick),
		MinTick:        int64(cfg.MinTick),
		TickDecrement:  int64(cfg.TickDecrement),
		FoodReward:     int32(cfg.FoodReward),
		ObstacleCap:    int32(cfg.ObstacleCap),
		DifficultyStep: int32(cfg.DifficultyStep),
		AnimationBits:  math.Float64bits(cfg.AnimationSpeed),
		StartX:         int32(cfg.Start.X),
		StartY:         int32(cfg.Start.Y),
		StartDirection: uint8(cfg.StartDirection),
		SpawnAttempts:  int32(cfg.MaxSpawnAttempts),
	}
	copy(h.Magic[:], magic)
	if cfg.FoodAvoidsOccupied {
		h.FoodAvoids = 1
	}
	return h
}

// Config rebuilds the recorded configuration. Frame pacing settings are
// not recorded since playback steps without a clock.
func (h Header) Config() core.Config {
	cfg := core.DefaultConfig()
	cfg.Seed = h.Seed
	cfg.CanvasSize = int(h.CanvasSize)
	cfg.CellSize = int(h.CellSize)
	cfg.BaseTick = time.Duration(h.BaseTick)
	cfg.MinTick = time.Duration(h.MinTick)
	cfg.TickDecrement = time.Duration(h.TickDecrement)
	cfg.FoodReward = int(h.FoodReward)
	cfg.ObstacleCap = int(h.ObstacleCap)
	cfg.DifficultyStep = int(h.DifficultyStep)
	cfg.AnimationSpeed = math.Float64frombits(h.AnimationBits)
	cfg.Start = maplib.Cell{X: int(h.StartX), Y: int(h.StartY)}
	cfg.StartDirection = maplib.Direction(h.StartDirection)
	cfg.MaxSpawnAttempts = int(h.SpawnAttempts)
	cfg.FoodAvoidsOccupied = h.FoodAvoids != 0
	return cfg
}

func (h *Header) Encode(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, h)
}

func (h *Header) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if string(h.Magic[:]) != magic {
		return fmt.Errorf("%w: magic %q", ErrBadHeader, h.Magic[:])
	}
	if h.Version != version {
		return fmt.Errorf("%w: version %d", ErrBadHeader, h.Version)
	}
	return nil
}
