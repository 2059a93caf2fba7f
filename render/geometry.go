package render

import (
	"image/color"

	"github.com/sheikhrachel/gol-engine/model"
)

// Rect is a screen rectangle in pixels
type Rect struct {
	X, Y, W, H float64
}

// CellRect places a cell on screen given the pixel size of one cell
func CellRect(c model.Cell, cellW, cellH float64) Rect {
	return Rect{
		X: float64(c.X()) * cellW,
		Y: float64(c.Y()) * cellH,
		W: cellW,
		H: cellH,
	}
}

// Palette holds the fill colors for each cell state
type Palette struct {
	Dead  color.Color
	Alive color.Color
}

// DefaultPalette draws dead cells light and live cells dark
var DefaultPalette = Palette{Dead: color.White, Alive: color.Black}

// Fill returns the color for a state
func (p Palette) Fill(state model.CellState) color.Color {
	if state == model.Alive {
		return p.Alive
	}
	return p.Dead
}
