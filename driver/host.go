// Package driver advances a world in response to external triggers such as
// timer ticks and regenerate requests. It owns the current world and replaces
// it wholesale on regeneration.
package driver

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

// Trigger is a request from the host environment
type Trigger uint8

const (
	TriggerTick Trigger = iota + 1
	TriggerRegenerate
)

func (t Trigger) String() string {
	switch t {
	case TriggerTick:
		return "tick"
	case TriggerRegenerate:
		return "regenerate"
	default:
		return "unknown"
	}
}

var ErrUnknownTrigger = errors.New("unknown trigger")

// Factory builds a fresh world
type Factory func() (*model.World, error)

// RestartPolicy controls what happens to a world after each tick
type RestartPolicy struct {
	AutoRestart         bool
	StagnationThreshold int
	// RefreshInterval regenerates a world after this many of its own generations. Zero disables it.
	RefreshInterval uint64
	// InjectionCount live cells are added while a world has been stagnant for at
	// least 2 ticks but fewer than StagnationThreshold
	InjectionCount int
	// MaxGenerations ends the run once this many ticks were applied across all
	// worlds. Zero means no limit.
	MaxGenerations uint64
	// Random places injected cells. Nil means a clock-seeded source.
	Random model.RandomSource
}

// Status describes the world after a trigger was applied
type Status struct {
	Generation uint64
	Population int
	Stagnant   bool
	// Injected is the number of cells added to break stagnation
	Injected int
	// Restarted names the reason the world was regenerated, if it was
	Restarted string
	// Done is set once MaxGenerations is reached
	Done bool
}

// Host owns the current world and applies triggers to it
type Host struct {
	factory Factory
	policy  RestartPolicy
	world   *model.World
	history *model.History

	stagnantCount int
	ticks         uint64
}

// NewHost builds the first world from factory
func NewHost(factory Factory, policy RestartPolicy) (*Host, error) {
	if policy.Random == nil {
		policy.Random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	h := &Host{
		factory: factory,
		policy:  policy,
		history: model.NewHistory(0),
	}
	if err := h.regenerate(); err != nil {
		return nil, errors.Wrap(err, "[NewHost]")
	}
	return h, nil
}

// World returns the current world
func (h *Host) World() *model.World {
	return h.world
}

// Ticks returns the number of ticks applied across every world this host has owned
func (h *Host) Ticks() uint64 {
	return h.ticks
}

func (h *Host) regenerate() error {
	w, err := h.factory()
	if err != nil {
		return errors.Wrap(err, "failed to build world")
	}
	h.world = w
	h.history.Reset()
	h.stagnantCount = 0
	return nil
}

// Apply handles one trigger
func (h *Host) Apply(t Trigger) (Status, error) {
	var status Status

	switch t {
	case TriggerTick:
		h.world.Tick()
		h.ticks++
		status.Stagnant = h.history.IsStagnant(h.world)
		h.history.Record(h.world)
		if status.Stagnant {
			h.stagnantCount++
		} else {
			h.stagnantCount = 0
		}
		status.Population = h.world.Population()
		status.Generation = h.world.Generation()

		if h.policy.MaxGenerations > 0 && h.ticks >= h.policy.MaxGenerations {
			status.Done = true
			return status, nil
		}
		if reason := h.restartReason(status.Population); reason != "" {
			if err := h.regenerate(); err != nil {
				return status, errors.Wrapf(err, "[Apply] restart after %s", reason)
			}
			status.Restarted = reason
		} else if h.stagnantCount >= 2 && h.stagnantCount < h.policy.StagnationThreshold {
			h.world.InjectRandomLife(h.policy.InjectionCount, h.policy.Random)
			status.Injected = h.policy.InjectionCount
			status.Population = h.world.Population()
		}
	case TriggerRegenerate:
		if err := h.regenerate(); err != nil {
			return status, errors.Wrap(err, "[Apply] regenerate")
		}
		status.Restarted = t.String()
	default:
		return status, errors.Wrapf(ErrUnknownTrigger, "[Apply] %d", t)
	}

	if status.Restarted != "" {
		status.Generation = h.world.Generation()
		status.Population = h.world.Population()
		status.Stagnant = false
	}
	return status, nil
}

func (h *Host) restartReason(population int) string {
	if !h.policy.AutoRestart {
		return ""
	}
	if population == 0 {
		return "extinction"
	}
	if h.policy.StagnationThreshold > 0 && h.stagnantCount >= h.policy.StagnationThreshold {
		return "stagnation detected"
	}
	if h.policy.RefreshInterval > 0 && h.world.Generation()%h.policy.RefreshInterval == 0 {
		return "periodic refresh"
	}
	return ""
}

// Run applies triggers until ctx is done, the channel is closed or the
// generation limit is reached. onFrame, if set, is called after every trigger.
func (h *Host) Run(ctx context.Context, triggers <-chan Trigger, onFrame func(*model.World, Status)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t, ok := <-triggers:
			if !ok {
				return nil
			}
			status, err := h.Apply(t)
			if err != nil {
				return err
			}
			if onFrame != nil {
				onFrame(h.world, status)
			}
			if status.Done {
				return nil
			}
		}
	}
}
