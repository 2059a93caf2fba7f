package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	// TotalGenerations sums the generations reported across restarts
	TotalGenerations uint64
	Restarts         int
	StartTime        time.Time

	lastGeneration uint64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one frame. generation is the current world's generation and
// restarted marks a frame that begins a fresh world.
func (s *Stats) Update(generation uint64, population int, duration time.Duration, restarted bool) {
	if restarted {
		s.Restarts++
		s.AveragePopulation = float64(population)
	} else {
		if generation > s.lastGeneration {
			s.TotalGenerations += generation - s.lastGeneration
		}
		// exponential moving average, weighted toward history
		if s.AveragePopulation == 0 {
			s.AveragePopulation = float64(population)
		} else {
			s.AveragePopulation = 0.9*s.AveragePopulation + 0.1*float64(population)
		}
	}
	s.lastGeneration = generation

	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
}
