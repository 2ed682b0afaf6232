package pathfind

import (
	"container/heap"

	"github.com/1siamBot/snake-engine/engine/maplib"
)

// FindPath finds a 4-connected path from start to goal using A*. The start
// cell itself need not be passable. The result begins with start and ends
// with goal; nil means no path.
func FindPath(ng *NavGrid, start, goal maplib.Cell) []maplib.Cell {
	if !ng.Passable(goal) {
		return nil
	}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &node{c: start, g: 0, f: heuristic(start, goal)})

	came := make(map[maplib.Cell]maplib.Cell)
	gScore := map[maplib.Cell]float64{start: 0}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if cur.c == goal {
			return reconstructPath(came, goal)
		}
		if cur.g > gScore[cur.c] {
			continue // stale entry
		}

		for _, d := range maplib.Directions {
			next := cur.c.Add(d)
			if !ng.Passable(next) {
				continue
			}
			tentG := gScore[cur.c] + ng.Cost(next)
			if old, ok := gScore[next]; ok && tentG >= old {
				continue
			}
			gScore[next] = tentG
			came[next] = cur.c
			heap.Push(open, &node{c: next, g: tentG, f: tentG + heuristic(next, goal)})
		}
	}
	return nil
}

// FirstMove returns the direction of the first step of path
func FirstMove(path []maplib.Cell) (maplib.Direction, bool) {
	if len(path) < 2 {
		return 0, false
	}
	for _, d := range maplib.Directions {
		if path[0].Add(d) == path[1] {
			return d, true
		}
	}
	return 0, false
}

func heuristic(a, b maplib.Cell) float64 {
	return float64(maplib.Manhattan(a, b))
}

func reconstructPath(came map[maplib.Cell]maplib.Cell, goal maplib.Cell) []maplib.Cell {
	path := []maplib.Cell{goal}
	cur := goal
	for {
		prev, ok := came[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// --- Priority queue ---

type node struct {
	c    maplib.Cell
	g, f float64
}

type nodeHeap []*node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
