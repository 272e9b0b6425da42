package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Potential != "harmonic" {
		t.Errorf("expected potential harmonic, got %s", cfg.Potential)
	}
	if cfg.Dims() != 1 {
		t.Errorf("expected 1 dim, got %d", cfg.Dims())
	}
	if cfg.States <= 0 {
		t.Error("states should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("double_well", "tunnel")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["B"] != 4 {
		t.Errorf("expected B 4, got %f", cfg.Params["B"])
	}

	cfg.Params["B"] = 9
	cfg.N[0] = 3
	again := GetPreset("double_well", "tunnel")
	if again.Params["B"] != 4 || again.N[0] != 96 {
		t.Error("preset was mutated through a returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("harmonic", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "ground")
	if cfg != nil {
		t.Error("expected nil for nonexistent potential")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("harmonic")
	if len(presets) != 4 || presets[0] != "cross_kinetic" {
		t.Errorf("expected sorted harmonic presets, got %v", presets)
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent potential")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")
	cfg := GetPreset("harmonic", "cross_kinetic")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Dims() != 2 {
		t.Errorf("expected 2 dims, got %d", loaded.Dims())
	}
	if loaded.Domain[1][0] != -7 || loaded.Domain[1][1] != 7 {
		t.Errorf("domain not preserved: %v", loaded.Domain)
	}
	if len(loaded.KCross) != 1 || loaded.KCross[0] != 0.5 {
		t.Errorf("k_cross not preserved: %v", loaded.KCross)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "potential: morse\nparams: {D: 5}\nstates: 4\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Potential != "morse" || cfg.Params["D"] != 5 || cfg.States != 4 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Dims() != 0 {
		t.Errorf("expected grid left for the potential defaults, got %v", cfg.N)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("n: [oops\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{Potential: "quartic", N: []int{32}, States: 3})

	if cfg.Potential != "quartic" || cfg.N[0] != 32 || cfg.States != 3 {
		t.Errorf("merge did not apply: %+v", cfg)
	}
	if cfg.KDiag[0] != DefaultKDiag {
		t.Error("unset fields should keep their value")
	}
}
