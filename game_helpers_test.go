package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/gol-engine/driver"
	"github.com/sheikhrachel/gol-engine/utils"
)

func TestWorldFactory(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 40, 20
	config.InitPolicy = utils.PolicyDead
	config.SeedPatterns = true

	factory, err := worldFactory(config)
	if err != nil {
		t.Fatal(err)
	}

	first, err := factory()
	if err != nil {
		t.Fatal(err)
	}
	second, err := factory()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("factory returned the same world twice")
	}
	if first.Hash() != second.Hash() {
		t.Error("dead worlds with seeded patterns differ")
	}
	if w, h := first.Dimensions(); w != 40 || h != 20 {
		t.Errorf("Dimensions() = (%d, %d), want (40, 20)", w, h)
	}

	config.InitPolicy = "nope"
	if _, err = worldFactory(config); err == nil {
		t.Error("unknown policy accepted")
	}
}

func TestWorldFactorySeeded(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 99

	a, err := worldFactory(config)
	if err != nil {
		t.Fatal(err)
	}
	b, err := worldFactory(config)
	if err != nil {
		t.Fatal(err)
	}

	wa, err := a()
	if err != nil {
		t.Fatal(err)
	}
	wb, err := b()
	if err != nil {
		t.Fatal(err)
	}
	if wa.Hash() != wb.Hash() {
		t.Error("factories with the same seed built different worlds")
	}
}

func TestProduceTriggers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := make(chan driver.Trigger, 1)
	triggers := make(chan driver.Trigger)
	done := make(chan error, 1)
	go func() { done <- produceTriggers(ctx, time.Millisecond, keys, triggers) }()

	if got := <-triggers; got != driver.TriggerTick {
		t.Errorf("first trigger = %v, want tick", got)
	}

	keys <- driver.TriggerRegenerate
	for got := range triggers {
		if got == driver.TriggerRegenerate {
			break
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("produceTriggers returned %v", err)
	}
	if _, ok := <-triggers; ok {
		t.Error("triggers not closed after cancel")
	}
}

func TestReadKeys(t *testing.T) {
	keys := make(chan driver.Trigger, 4)
	readKeys(strings.NewReader("x\nR\n  r \n\n"), keys)
	close(keys)

	var got int
	for k := range keys {
		if k != driver.TriggerRegenerate {
			t.Errorf("key trigger = %v, want regenerate", k)
		}
		got++
	}
	if got != 2 {
		t.Errorf("got %d regenerate triggers, want 2", got)
	}
}
