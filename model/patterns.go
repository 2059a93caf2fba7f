package model

// Point is an offset from a pattern's top-left corner
type Point struct {
	X, Y int32
}

// Pattern is a set of live cells relative to an origin
type Pattern []Point

var (
	// Blinker is a horizontal period-2 oscillator
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}
	// Block is a 2x2 still life
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	// Glider travels one cell down and right every 4 generations
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
)

// Place sets the pattern's cells alive with its origin at (x, y). Parts beyond the edges are dropped.
func (w *World) Place(x, y int32, p Pattern) {
	for _, pt := range p {
		w.SetCell(x+pt.X, y+pt.Y, Alive)
	}
}

// SeedPatterns places a glider and a blinker when the world is large enough to hold them
func (w *World) SeedPatterns() {
	width, height := w.Dimensions()
	if width < 10 || height < 10 {
		return
	}

	w.Place(5, 5, Glider)
	if width >= 20 && height >= 15 {
		w.Place(int32(width)-8, 5, Glider)
	}

	w.Place(int32(width/4), int32(height/4), Blinker)
	if width >= 30 {
		w.Place(int32(3*width/4), int32(3*height/4), Blinker)
	}
}

// InjectRandomLife sets count cells alive at positions drawn from src
func (w *World) InjectRandomLife(count int, src RandomSource) {
	width, height := w.Dimensions()
	for range count {
		x := int32(src.Float64() * float64(width))
		y := int32(src.Float64() * float64(height))
		w.SetCell(x, y, Alive)
	}
}
