package model

// CellState is the binary state of a single cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "ALIVE"
	}
	return "DEAD"
}

// Cell is a grid position and its state. Coordinates are fixed at creation.
type Cell struct {
	x, y  int32
	state CellState
}

// NewCell creates a cell at (x, y) with the given state
func NewCell(x, y int32, state CellState) Cell {
	return Cell{x: x, y: y, state: state}
}

func (c Cell) X() int32 { return c.x }

func (c Cell) Y() int32 { return c.y }

func (c Cell) State() CellState { return c.state }

func (c Cell) IsAlive() bool { return c.state == Alive }
