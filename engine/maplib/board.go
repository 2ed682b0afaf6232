package maplib

// Cell is a discrete board coordinate
type Cell struct {
	X, Y int
}

// Add returns the cell one unit away in direction d
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Chebyshev returns max(|dx|, |dy|) between two cells
func Chebyshev(a, b Cell) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Manhattan returns |dx| + |dy| between two cells
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Direction is the heading of the snake
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

// Directions lists every heading in a stable order
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit step of the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d <= Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseDirection maps "up", "down", "left", "right" to a Direction
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return Right, false
}

// Board is the square playfield, TileCount cells on each side
type Board struct {
	TileCount int
}

// NewBoard derives the tile count from a canvas size in pixels and a cell size
func NewBoard(canvasSize, cellSize int) Board {
	if cellSize <= 0 {
		return Board{}
	}
	return Board{TileCount: canvasSize / cellSize}
}

// InBounds checks if a cell lies on the board
func (b Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < b.TileCount && c.Y < b.TileCount
}

// Area returns the number of cells on the board
func (b Board) Area() int {
	return b.TileCount * b.TileCount
}

// CellAt returns the cell for a row-major index
func (b Board) CellAt(i int) Cell {
	return Cell{X: i % b.TileCount, Y: i / b.TileCount}
}

// Index returns the row-major index of a cell, or -1 when out of bounds
func (b Board) Index(c Cell) int {
	if !b.InBounds(c) {
		return -1
	}
	return c.Y*b.TileCount + c.X
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
