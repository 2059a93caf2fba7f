package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/driver"
	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/render"
	"github.com/sheikhrachel/gol-engine/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("Ignoring %s: %v\n", configFile, err)
		} else {
			fmt.Println("Using default configuration (config.json not found)")
		}
		config = utils.DefaultConfig()
	}

	factory, err := worldFactory(config)
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	host, err := driver.NewHost(factory, driver.RestartPolicy{
		AutoRestart:         config.AutoRestart,
		StagnationThreshold: config.StagnationThreshold,
		RefreshInterval:     config.RefreshInterval,
		InjectionCount:      config.InjectionCount,
		MaxGenerations:      config.MaxGenerations,
	})
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}

	displayGameInfo(config, host.World())
	time.Sleep(2 * time.Second)

	// Handle Ctrl+C gracefully
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	runCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	var (
		renderer      = &render.TerminalRenderer{}
		stats         = utils.NewStats()
		lastFrameTime = time.Now()
		keys          = make(chan driver.Trigger)
		triggers      = make(chan driver.Trigger)
	)

	// stdin reads cannot be cancelled, so the reader stays outside the group
	go readKeys(os.Stdin, keys)

	eg, ctx := errgroup.WithContext(runCtx)
	eg.Go(func() error {
		return produceTriggers(ctx, config.FrameRate, keys, triggers)
	})
	eg.Go(func() error {
		// the producer only stops once the host is done
		defer cancel()
		return host.Run(ctx, triggers, func(world *model.World, status driver.Status) {
			stats.Update(status.Generation, status.Population, time.Since(lastFrameTime), status.Restarted != "")
			lastFrameTime = time.Now()

			renderer.Clear()
			displayGameStatus(world, status, stats)
			if err := renderer.Display(world); err != nil {
				fmt.Println("Error rendering:", err)
			}
		})
	})

	err = eg.Wait()
	switch {
	case sigCtx.Err() != nil:
		fmt.Println("\n🛑 Shutting down gracefully...")
	case err != nil && !errors.Is(err, context.Canceled):
		fmt.Printf("\nStopped: %v\n", err)
		os.Exit(1)
	default:
		fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
	}

	fmt.Printf("Final stats: %d ticks, %d restarts in %.1f seconds\n",
		host.Ticks(), stats.Restarts, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
