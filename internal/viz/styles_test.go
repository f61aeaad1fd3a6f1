package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		width  int
		want   string
	}{
		{"empty", nil, 4, "────"},
		{"ramp", []float64{0, 1, 2, 3, 4, 5, 6, 7}, 8, "▁▂▃▄▅▆▇█"},
		{"flat", []float64{3, 3, 3}, 3, "▁▁▁"},
		{"downsampled", []float64{0, 0, 7, 7}, 2, "▁█"},
		{"non-finite", []float64{0, math.NaN(), 7}, 3, "▁ █"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sparkline(tt.values, tt.width); got != tt.want {
				t.Errorf("Sparkline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	sep := Separator(20)
	if !strings.Contains(sep, "◆") {
		t.Errorf("separator missing diamond: %q", sep)
	}
	if Separator(2) == "" {
		t.Error("narrow separator should still render")
	}
}
