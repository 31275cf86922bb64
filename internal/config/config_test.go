package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultRingshotConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRingshot(defaultRingshotYAML)
	if err != nil {
		t.Fatalf("embedded yaml should parse: %v", err)
	}

	def := DefaultRingshotConfig()
	if cfg.Physics != def.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.World != def.World {
		t.Errorf("world = %+v, expected %+v", cfg.World, def.World)
	}
	if cfg.Timing != def.Timing {
		t.Errorf("timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	if len(cfg.Sectors) != 15 {
		t.Fatalf("embedded sectors = %d, expected 15", len(cfg.Sectors))
	}
	if last := cfg.Sectors[14]; last.ID != 15 || last.RingsToWin != 8 || last.ObstacleSpeed != 0.12 {
		t.Errorf("last sector = %+v", last)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 0.8\ntiming:\n  win_delay_ms: 250\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRingshot(path)
	if err != nil {
		t.Fatalf("LoadRingshot() error = %v", err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Physics.MaxPower != 25 {
		t.Errorf("MaxPower = %v, expected default 25", cfg.Physics.MaxPower)
	}
	if cfg.Timing.WinDelayMs != 250 || cfg.Timing.LossDelayMs != 800 {
		t.Errorf("Timing = %+v", cfg.Timing)
	}
	if len(cfg.Sectors) != 0 {
		t.Errorf("Sectors = %d, expected none so built-ins apply", len(cfg.Sectors))
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRingshot(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics:\n  min_power: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRingshot(bad)
	if err == nil || !strings.Contains(err.Error(), "min_power") {
		t.Errorf("invalid power range should fail validation, got %v", err)
	}
}

func TestValidateSectors(t *testing.T) {
	tests := []struct {
		name    string
		sectors []SectorConfig
		wantErr bool
	}{
		{"none", nil, false},
		{"valid", []SectorConfig{{ID: 1, RingsToWin: 3, TargetRadius: 45}}, false},
		{"zero rings", []SectorConfig{{ID: 1, RingsToWin: 0, TargetRadius: 45}}, true},
		{"zero radius", []SectorConfig{{ID: 1, RingsToWin: 3}}, true},
		{"negative speed", []SectorConfig{{ID: 1, RingsToWin: 3, TargetRadius: 45, TargetSpeed: -1}}, true},
		{"duplicate id", []SectorConfig{
			{ID: 1, RingsToWin: 3, TargetRadius: 45},
			{ID: 1, RingsToWin: 4, TargetRadius: 40},
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRingshotConfig()
			cfg.Sectors = tc.sectors
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
