package systems

import (
	"image/color"
	"testing"
)

func TestChargeColor(t *testing.T) {
	low := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	full := color.RGBA{R: 255, G: 0, B: 200, A: 255}

	tests := []struct {
		name  string
		ratio float64
		want  color.RGBA
	}{
		{"empty", 0, low},
		{"full", 1, full},
		{"half", 0.5, color.RGBA{R: 128, G: 50, B: 200, A: 255}},
		{"below range", -1, low},
		{"above range", 2, full},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChargeColor(low, full, tt.ratio); got != tt.want {
				t.Errorf("ChargeColor(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}
