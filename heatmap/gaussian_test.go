package heatmap

import (
	"math"
	"testing"

	"github.com/mvane/go-kpcodec"
)

func TestGenerateUnbiasedGaussianPeak(t *testing.T) {

	size := kpcodec.Size{W: 8, H: 8}

	// keypoint exactly on a cell centre, the peak cell value must be 1.0
	heatmaps, weights := GenerateUnbiasedGaussian(size,
		[]kpcodec.Point{{X: 3, Y: 5}}, []float32{1}, 2.0)

	if heatmaps.Channels != 1 || heatmaps.Height != 8 || heatmaps.Width != 8 {
		t.Fatalf("Heatmap shape wrong, got (%d,%d,%d)",
			heatmaps.Channels, heatmaps.Height, heatmaps.Width)
	}

	if got := heatmaps.At(0, 5, 3); math.Abs(float64(got)-1.0) > 1e-6 {
		t.Errorf("Expected peak value 1.0 at keypoint cell, got %f", got)
	}

	if weights[0] != 1 {
		t.Errorf("Expected weight 1 for visible in-bounds keypoint, got %f",
			weights[0])
	}

	// response must decay away from the keypoint
	if heatmaps.At(0, 5, 6) >= heatmaps.At(0, 5, 4) {
		t.Error("Response does not decay with distance from keypoint")
	}
}

func TestGenerateUnbiasedGaussianSubPixel(t *testing.T) {

	size := kpcodec.Size{W: 8, H: 8}

	// sub-pixel centre, no cell sits exactly on the keypoint so the peak
	// cell value is below 1.0 and the two straddling cells respond equally
	heatmaps, _ := GenerateUnbiasedGaussian(size,
		[]kpcodec.Point{{X: 2.5, Y: 4}}, []float32{1}, 2.0)

	left := heatmaps.At(0, 4, 2)
	right := heatmaps.At(0, 4, 3)

	if math.Abs(float64(left-right)) > 1e-6 {
		t.Errorf("Cells straddling a sub-pixel centre differ: %f vs %f",
			left, right)
	}

	if left >= 1.0 {
		t.Errorf("Expected peak below 1.0 for sub-pixel centre, got %f", left)
	}
}

func TestGenerateUnbiasedGaussianWeights(t *testing.T) {

	size := kpcodec.Size{W: 4, H: 4}

	tests := []struct {
		name       string
		keypoint   kpcodec.Point
		visible    float32
		wantWeight float32
		wantZero   bool
	}{
		{"visible in bounds", kpcodec.Point{X: 1, Y: 1}, 1, 1, false},
		{"invisible", kpcodec.Point{X: 1, Y: 1}, 0, 0, true},
		{"negative x", kpcodec.Point{X: -1, Y: 1}, 1, 0, true},
		{"x at width", kpcodec.Point{X: 4, Y: 1}, 1, 0, true},
		{"y at height", kpcodec.Point{X: 1, Y: 4}, 1, 0, true},
		{"negative y", kpcodec.Point{X: 1, Y: -0.5}, 1, 0, true},
	}

	for _, tc := range tests {

		heatmaps, weights := GenerateUnbiasedGaussian(size,
			[]kpcodec.Point{tc.keypoint}, []float32{tc.visible}, 1.5)

		if weights[0] != tc.wantWeight {
			t.Errorf("Test %q: expected weight %f, got %f",
				tc.name, tc.wantWeight, weights[0])
		}

		sum := float32(0)
		for _, v := range heatmaps.Channel(0) {
			sum += v
		}

		if tc.wantZero && sum != 0 {
			t.Errorf("Test %q: expected all-zero channel, got sum %f",
				tc.name, sum)
		}

		if !tc.wantZero && sum == 0 {
			t.Errorf("Test %q: expected non-zero response, got all zeros",
				tc.name)
		}
	}
}
