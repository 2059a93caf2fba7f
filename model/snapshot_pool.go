package model

import "sync"

var defaultSnapshotPool = NewSnapshotPool()

// Snapshot is a read-only copy of one generation's live cells
type Snapshot struct {
	width  int
	height int
	alive  [][]bool
}

// Reset resizes the snapshot, reusing rows where the width already matches
func (s *Snapshot) Reset(width, height int) {
	s.width = width
	s.height = height

	if len(s.alive) != height {
		s.alive = make([][]bool, height)
	}
	for i := range s.alive {
		if len(s.alive[i]) != width {
			s.alive[i] = make([]bool, width)
		}
	}
}

// Capture copies the states of cells into the snapshot
func (s *Snapshot) Capture(cells [][]Cell) {
	for y := range s.height {
		for x := range s.width {
			s.alive[y][x] = cells[y][x].IsAlive()
		}
	}
}

// CountNeighbors counts live neighbors of (x, y), clamping the window to the grid edges
func (s *Snapshot) CountNeighbors(x, y int) uint32 {
	var count uint32

	minX := max(0, x-1)
	maxX := min(s.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(s.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if s.alive[ny][nx] {
				count++
			}
		}
	}

	return count
}

// SnapshotPool recycles snapshot buffers between ticks
type SnapshotPool struct {
	pool sync.Pool
}

func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Snapshot{}
			},
		},
	}
}

// Get retrieves a snapshot sized to width x height
func (p *SnapshotPool) Get(width, height int) *Snapshot {
	s := p.pool.Get().(*Snapshot)
	s.Reset(width, height)
	return s
}

// Put returns a snapshot to the pool
func (p *SnapshotPool) Put(s *Snapshot) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
