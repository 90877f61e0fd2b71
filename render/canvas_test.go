package render

import (
	"image/color"
	"testing"
)

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name string
		a    float64
		want uint8
	}{
		{"opaque", 1, 255},
		{"half", 0.5, 128},
		{"zero", 0, 0},
		{"clamped high", 2, 255},
		{"clamped low", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, tt.a)
			if got.A != tt.want {
				t.Errorf("WithAlpha(%v).A = %d, want %d", tt.a, got.A, tt.want)
			}
		})
	}
}

func TestLerpColorEndpoints(t *testing.T) {
	a := color.RGBA{R: 13, G: 27, B: 42, A: 255}
	b := color.RGBA{A: 255}
	if got := LerpColor(a, b, 0); got != a {
		t.Errorf("LerpColor(t=0) = %v, want %v", got, a)
	}
	if got := LerpColor(a, b, 1); got != b {
		t.Errorf("LerpColor(t=1) = %v, want %v", got, b)
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(nil) {
		t.Error("nil canvas should be zero")
	}
	if !IsZero(NewRecorder(0, 100)) {
		t.Error("zero-width canvas should be zero")
	}
	if IsZero(NewRecorder(10, 10)) {
		t.Error("10x10 canvas should not be zero")
	}
}

func TestRecorderLayers(t *testing.T) {
	r := NewRecorder(100, 50)
	l := r.NewLayer(100, 50)
	l.FillRect(0, 0, 1, 1, color.RGBA{})
	r.Blit(l)

	if len(r.Layers) != 1 || len(r.Layers[0].Ops) != 1 {
		t.Fatalf("layer ops not recorded on the layer")
	}
	if got := r.Ops[0].String(); got != "blit(layer0)" {
		t.Errorf("op = %q, want blit(layer0)", got)
	}
}
