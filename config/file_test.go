package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeOverridesOnlyGivenKeys(t *testing.T) {
	src := `
archer:
  max_charge_time: 1.5
  max_arrow_speed: 45
physics:
  gravity: -12
log:
  level: debug
`
	fc, err := Decode(strings.NewReader(src), Current())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if fc.Archer.MaxChargeTime != 1.5 || fc.Archer.MaxArrowSpeed != 45 {
		t.Errorf("overrides not applied: %+v", fc.Archer)
	}
	if fc.Archer.MinArrowSpeed != Archer.MinArrowSpeed {
		t.Errorf("min speed changed to %v", fc.Archer.MinArrowSpeed)
	}
	if fc.Archer.TrajectoryPoints != 5 {
		t.Errorf("trajectory points = %d, want default 5", fc.Archer.TrajectoryPoints)
	}
	if fc.Physics.Gravity != -12 || fc.Log.Level != "debug" {
		t.Errorf("physics/log not decoded: %+v %+v", fc.Physics, fc.Log)
	}
}

func TestDecodeEmptyKeepsBase(t *testing.T) {
	fc, err := Decode(strings.NewReader(""), Current())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if fc != Current() {
		t.Error("empty document should keep the base configuration")
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("archer:\n  max_charge: 3\n"), Current())
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestLoadFileAndApply(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	path := filepath.Join(t.TempDir(), "range.yaml")
	if err := os.WriteFile(path, []byte("arrow:\n  lifetime: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	Apply(fc)
	if Arrow.Lifetime != 8 {
		t.Errorf("lifetime = %v, want 8", Arrow.Lifetime)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	if problems := Current().Validate(); len(problems) != 0 {
		t.Errorf("defaults should be valid, got %v", problems)
	}

	fc := Current()
	fc.Archer.MinArrowSpeed = 50
	fc.Archer.MaxChargeTime = 0
	fc.Arrow.Lifetime = 0
	if problems := fc.Validate(); len(problems) != 3 {
		t.Errorf("expected 3 problems, got %v", problems)
	}
}

func TestArcherSettings(t *testing.T) {
	s := ArcherSettings()
	if s.MaxChargeTime != 2 || s.MinSpeed != 10 || s.MaxSpeed != 30 {
		t.Errorf("charge tuning not mapped: %+v", s)
	}
	if s.MinAngle != -60 || s.MaxAngle != 60 || s.RotationRate != 100 {
		t.Errorf("aim tuning not mapped: %+v", s)
	}
	if s.PreviewPoints != 5 || s.SampleInterval != 0.1 {
		t.Errorf("preview tuning not mapped: %+v", s)
	}
	if s.MuzzleOffset.X != Archer.MuzzleOffsetX || !s.ReleaseOnLostTrigger {
		t.Errorf("muzzle/trigger policy not mapped: %+v", s)
	}
}
