package archery

import "testing"

func TestNormalize(t *testing.T) {
	s := Settings{
		MaxChargeTime:  -1,
		MinSpeed:       30,
		MaxSpeed:       10,
		RotationRate:   -90,
		MinAngle:       45,
		MaxAngle:       -45,
		PreviewPoints:  -3,
		SampleInterval: -0.2,
	}
	n := s.Normalize()

	if n.MinSpeed != 10 || n.MaxSpeed != 30 {
		t.Errorf("speeds = %v..%v, want 10..30", n.MinSpeed, n.MaxSpeed)
	}
	if n.MinAngle != -45 || n.MaxAngle != 45 {
		t.Errorf("angles = %v..%v, want -45..45", n.MinAngle, n.MaxAngle)
	}
	if n.PreviewPoints != 0 {
		t.Errorf("preview points = %d, want 0", n.PreviewPoints)
	}
	if n.SampleInterval != 0.2 || n.RotationRate != 90 {
		t.Errorf("interval %v rate %v, want 0.2 and 90", n.SampleInterval, n.RotationRate)
	}
	if n.MaxChargeTime != -1 {
		t.Errorf("max charge time should be left to the ratio guard, got %v", n.MaxChargeTime)
	}
	if got := len(s.Problems()); got != 6 {
		t.Errorf("problems = %d, want 6: %v", got, s.Problems())
	}
	if got := len(DefaultSettings().Problems()); got != 0 {
		t.Errorf("defaults report problems: %v", DefaultSettings().Problems())
	}
}

func TestPhaseString(t *testing.T) {
	if Idle.String() != "idle" || Charging.String() != "charging" {
		t.Error("unexpected phase names")
	}
}
