package pathfind

import "github.com/1siamBot/snake-engine/engine/maplib"

const unreachable = -1

// DistanceField stores the step count from every cell to a source cell
type DistanceField struct {
	Board maplib.Board
	Dist  []int // unreachable for cells that cannot be reached
}

// NewDistanceField runs a breadth-first pass from src over passable cells.
// src itself need not be passable.
func NewDistanceField(ng *NavGrid, src maplib.Cell) *DistanceField {
	df := &DistanceField{
		Board: ng.Board,
		Dist:  make([]int, ng.Board.Area()),
	}
	for i := range df.Dist {
		df.Dist[i] = unreachable
	}
	si := ng.Board.Index(src)
	if si < 0 {
		return df
	}
	df.Dist[si] = 0

	queue := []maplib.Cell{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curDist := df.Dist[ng.Board.Index(cur)]
		for _, d := range maplib.Directions {
			next := cur.Add(d)
			if !ng.Passable(next) {
				continue
			}
			idx := ng.Board.Index(next)
			if df.Dist[idx] != unreachable {
				continue
			}
			df.Dist[idx] = curDist + 1
			queue = append(queue, next)
		}
	}
	return df
}

// Distance returns the step count to c and whether c is reachable
func (df *DistanceField) Distance(c maplib.Cell) (int, bool) {
	i := df.Board.Index(c)
	if i < 0 || df.Dist[i] == unreachable {
		return 0, false
	}
	return df.Dist[i], true
}

// Reachable counts the cells reachable from the source, source included
func (df *DistanceField) Reachable() int {
	n := 0
	for _, d := range df.Dist {
		if d != unreachable {
			n++
		}
	}
	return n
}
