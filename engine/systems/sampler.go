package systems

import (
	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
)

// sampler draws uniform random cells until one satisfies a predicate.
// After attempts misses it scans the board row by row, so it always
// terminates; ok is false only when no cell qualifies.
type sampler struct {
	rng      core.Rand
	attempts int
}

func (sp sampler) random(b maplib.Board) maplib.Cell {
	x := sp.rng.Intn(b.TileCount)
	y := sp.rng.Intn(b.TileCount)
	return maplib.Cell{X: x, Y: y}
}

func (sp sampler) find(b maplib.Board, accept func(maplib.Cell) bool) (maplib.Cell, bool) {
	for i := 0; i < sp.attempts; i++ {
		if c := sp.random(b); accept(c) {
			return c, true
		}
	}
	for i := 0; i < b.Area(); i++ {
		if c := b.CellAt(i); accept(c) {
			return c, true
		}
	}
	return maplib.Cell{}, false
}
