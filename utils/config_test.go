package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"width": 12, "height": 8, "init_policy": "alive", "frame_rate": 1000000}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 12 || config.Height != 8 {
		t.Errorf("dimensions = %dx%d, want 12x8", config.Width, config.Height)
	}
	if config.FrameRate != time.Millisecond {
		t.Errorf("FrameRate = %v, want 1ms", config.FrameRate)
	}
	if config.InjectionCount != 3 || config.RefreshInterval != 200 {
		t.Errorf("injection_count/refresh_interval = %d/%d, want defaults 3/200",
			config.InjectionCount, config.RefreshInterval)
	}
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Errorf("StagnationThreshold = %d, want default", config.StagnationThreshold)
	}

	policy, err := config.Policy()
	if err != nil {
		t.Fatal(err)
	}
	if policy != model.AllAlive() {
		t.Errorf("Policy() = %v, want AllAlive", policy)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	if _, err := LoadConfig(writeConfig(t, `{"width":`)); err == nil {
		t.Error("malformed file loaded without error")
	}

	if _, err := LoadConfig(writeConfig(t, `{"widht": 12}`)); err == nil {
		t.Error("unknown key loaded without error")
	}

	for _, body := range []string{
		`{"width": 0}`,
		`{"height": 0}`,
		`{"init_policy": "glider"}`,
		`{"random_density": 2}`,
		`{"frame_rate": 0}`,
		`{"injection_count": -1}`,
		`{"stagnation_threshold": -2}`,
	} {
		if _, err := LoadConfig(writeConfig(t, body)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadConfig(%s) error = %v, want ErrInvalidConfig", body, err)
		}
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	policy, err := DefaultConfig().Policy()
	if err != nil {
		t.Fatal(err)
	}
	if policy != model.DefaultRandom() {
		t.Errorf("default policy = %v, want %v", policy, model.DefaultRandom())
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 500*time.Millisecond, false)
	if s.GenerationsPerSecond != 2 {
		t.Errorf("GenerationsPerSecond = %v, want 2", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 100 {
		t.Errorf("AveragePopulation = %v, want 100", s.AveragePopulation)
	}

	s.Update(2, 200, 0, false)
	if s.AveragePopulation != 110 {
		t.Errorf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Errorf("GenerationsPerSecond = %v, want the previous rate kept", s.GenerationsPerSecond)
	}

	// a restart starts a new world, so the population average starts over
	s.Update(0, 40, 250*time.Millisecond, true)
	if s.Restarts != 1 || s.AveragePopulation != 40 {
		t.Errorf("after restart: Restarts = %d, AveragePopulation = %v, want 1 and 40", s.Restarts, s.AveragePopulation)
	}
	if s.TotalGenerations != 2 {
		t.Errorf("TotalGenerations = %d, want 2", s.TotalGenerations)
	}
}
