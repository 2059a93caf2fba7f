package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/sheikhrachel/gol-engine/driver"
	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

// worldFactory builds fresh worlds from the configuration
func worldFactory(config utils.Config) (driver.Factory, error) {
	policy, err := config.Policy()
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.New(rand.NewSource(seed))
	pool := model.NewSnapshotPool()

	return func() (*model.World, error) {
		w, err := model.NewWorld(config.Width, config.Height, policy,
			model.WithRandomSource(src),
			model.WithWorkers(config.Workers),
			model.WithSnapshotPool(pool),
		)
		if err != nil {
			return nil, err
		}
		if config.SeedPatterns {
			w.SeedPatterns()
		}
		return w, nil
	}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, world *model.World) {
	width, height := world.Dimensions()
	policy, _ := config.Policy()
	fmt.Printf("Policy: %v | Workers: %d | Auto restart: %v\n", policy, max(1, config.Workers), config.AutoRestart)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n", width, height, world.Population())
	fmt.Println("Press r + Enter to regenerate, Ctrl+C to exit")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(world *model.World, status driver.Status, stats *utils.Stats) {
	width, height := world.Dimensions()
	density := float64(status.Population) / float64(uint64(width)*uint64(height)) * 100

	state := "Active"
	if status.Stagnant {
		state = "Stagnant"
	}
	if status.Population == 0 {
		state = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		status.Generation, status.Population, density, state)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Restarts: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Restarts, time.Since(stats.StartTime).Seconds())
	if status.Restarted != "" {
		fmt.Printf("Restarted: %s\n", status.Restarted)
	}
	if status.Injected > 0 {
		fmt.Printf("Injected %d cells to break stagnation\n", status.Injected)
	}
	fmt.Println()
}

// produceTriggers sends a tick every frame and forwards key requests until ctx is done
func produceTriggers(
	ctx context.Context,
	frameRate time.Duration,
	keys <-chan driver.Trigger,
	triggers chan<- driver.Trigger,
) error {
	defer close(triggers)

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	for {
		var next driver.Trigger
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			next = driver.TriggerTick
		case next = <-keys:
		}

		select {
		case <-ctx.Done():
			return nil
		case triggers <- next:
		}
	}
}

// readKeys turns input lines into triggers. "r" regenerates; other lines are ignored.
func readKeys(in io.Reader, keys chan<- driver.Trigger) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "r") {
			keys <- driver.TriggerRegenerate
		}
	}
}
