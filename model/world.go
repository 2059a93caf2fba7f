package model

import (
	"crypto/md5"
	"fmt"
	"iter"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/rules"
)

// RandomSource supplies the draws used by a RandomUniform policy. *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// World is a dense, hard-edged grid of cells advanced one generation at a time
type World struct {
	cells      [][]Cell // rows outer, columns inner
	generation uint64

	workers int
	pool    *SnapshotPool
}

// Option configures a World at construction
type Option func(*worldOptions)

type worldOptions struct {
	src     RandomSource
	workers int
	pool    *SnapshotPool
}

// WithRandomSource sets the source used by a RandomUniform policy
func WithRandomSource(src RandomSource) Option {
	return func(o *worldOptions) { o.src = src }
}

// WithWorkers splits each tick into n row bands computed concurrently. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *worldOptions) { o.workers = n }
}

// WithSnapshotPool sets the pool that tick snapshots are drawn from
func WithSnapshotPool(pool *SnapshotPool) Option {
	return func(o *worldOptions) { o.pool = pool }
}

// NewWorld builds a width x height world filled according to init
func NewWorld(width, height uint32, init InitPolicy, opts ...Option) (*World, error) {
	if width == 0 || height == 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewWorld] %dx%d", width, height)
	}
	if init.kind == randomUniform && (init.p < 0 || init.p > 1 || math.IsNaN(init.p)) {
		return nil, errors.Wrapf(ErrInvalidProbability, "[NewWorld] p=%v", init.p)
	}

	o := worldOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil && init.kind == randomUniform {
		o.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.pool == nil {
		o.pool = defaultSnapshotPool
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = NewCell(int32(x), int32(y), init.draw(o.src))
		}
	}

	return &World{
		cells:   cells,
		workers: max(1, o.workers),
		pool:    o.pool,
	}, nil
}

// Dimensions returns (width, height) as stored in the grid
func (w *World) Dimensions() (uint32, uint32) {
	return uint32(len(w.cells[0])), uint32(len(w.cells))
}

// Generation returns the number of ticks applied since construction
func (w *World) Generation() uint64 {
	return w.generation
}

func (w *World) inBounds(x, y int32) bool {
	return y >= 0 && int(y) < len(w.cells) && x >= 0 && int(x) < len(w.cells[y])
}

// GetCell returns a copy of the cell at (x, y), or false when out of range
func (w *World) GetCell(x, y int32) (Cell, bool) {
	if !w.inBounds(x, y) {
		return Cell{}, false
	}
	return w.cells[y][x], true
}

// SetCell sets the state at (x, y). Out-of-range writes are ignored.
func (w *World) SetCell(x, y int32, state CellState) {
	if w.inBounds(x, y) {
		w.cells[y][x].state = state
	}
}

// NeighborCount counts live cells in the Moore neighborhood of (x, y).
// Positions beyond the edges do not exist; there is no wraparound.
func (w *World) NeighborCount(x, y int32) uint32 {
	var count uint32
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if c, ok := w.GetCell(x+dx, y+dy); ok && c.IsAlive() {
				count++
			}
		}
	}
	return count
}

// Tick advances the world by one generation. Every next state is computed
// from a snapshot of the current generation before any cell is written.
func (w *World) Tick() {
	width, height := len(w.cells[0]), len(w.cells)

	snap := w.pool.Get(width, height)
	defer w.pool.Put(snap)
	snap.Capture(w.cells)

	if w.workers <= 1 || height < 2 {
		w.applyRows(snap, 0, height)
	} else {
		w.applyParallel(snap)
	}

	w.generation++
}

func (w *World) applyRows(snap *Snapshot, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		row := w.cells[y]
		for x := range row {
			if rules.Next(snap.alive[y][x], snap.CountNeighbors(x, y)) {
				row[x].state = Alive
			} else {
				row[x].state = Dead
			}
		}
	}
}

// applyParallel splits the rows into bands. Bands only read the snapshot and
// only write their own rows.
func (w *World) applyParallel(snap *Snapshot) {
	var (
		eg            errgroup.Group
		height        = len(w.cells)
		numWorkers    = min(w.workers, height)
		rowsPerWorker = (height + numWorkers - 1) / numWorkers
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			w.applyRows(snap, startRow, endRow)
			return nil
		})
	}

	// bands never fail
	_ = eg.Wait()
}

// All yields a copy of every cell in row-major order
func (w *World) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, row := range w.cells {
			for _, c := range row {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Population returns the number of live cells
func (w *World) Population() (count int) {
	for c := range w.All() {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the cell states
func (w *World) Hash() string {
	h := md5.New()
	for c := range w.All() {
		h.Write([]byte{byte(c.state)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
