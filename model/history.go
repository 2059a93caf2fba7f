package model

const defaultHistorySize = 5

// History keeps the hashes of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps up to size hashes. Sizes below 3 are raised to 3.
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: max(3, size)}
}

// Record adds the world's current hash, dropping the oldest beyond the limit
func (h *History) Record(w *World) {
	h.hashes = append(h.hashes, w.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded hashes
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether the world matches one of the last three recorded
// generations, which catches still lifes and period 2 and 3 oscillators
func (h *History) IsStagnant(w *World) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := w.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
