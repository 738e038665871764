package game

// Cell is a board position in grid coordinates.
type Cell struct {
	X, Y int
}

// InBounds reports whether the cell lies on the board.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// Direction is a unit vector; only the four cardinals are valid.
type Direction struct {
	DX, DY int
}

var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	return Direction{-d.DX, -d.DY}
}

// IsCardinal reports whether d is one of the four unit vectors.
func (d Direction) IsCardinal() bool {
	return d == DirUp || d == DirDown || d == DirLeft || d == DirRight
}

// Add returns the cell one step from c along d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}
