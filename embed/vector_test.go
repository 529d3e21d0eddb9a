package embed

import (
	"math"
	"testing"
)

func TestNormalizeVector(t *testing.T) {
	tests := []struct {
		name string
		in   []float32
		want []float32
	}{
		{"empty vector", []float32{}, []float32{}},
		{"zero vector", []float32{0, 0, 0}, []float32{0, 0, 0}},
		{"already unit", []float32{1, 0, 0}, []float32{1, 0, 0}},
		{"3-4-5 triangle", []float32{3, 4}, []float32{0.6, 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeVector(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeVector() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(float64(got[i]-tt.want[i])) > 1e-6 {
					t.Errorf("NormalizeVector()[%d] = %f, want %f", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeVector_UnitLength(t *testing.T) {
	got := NormalizeVector([]float32{0.3, -1.7, 2.4, 0.01})

	var sum float64
	for _, v := range got {
		sum += float64(v) * float64(v)
	}
	if math.Abs(math.Sqrt(sum)-1.0) > 1e-5 {
		t.Errorf("normalized magnitude = %f, want 1.0", math.Sqrt(sum))
	}
}
