package render

import (
	"fmt"
	"image"
	"math"

	"github.com/mvane/go-kpcodec"
	"gocv.io/x/gocv"
)

// GrayscaleMap is used to not apply coloring to the output heatmap, but to
// leave it as grayscale
const GrayscaleMap = gocv.ColormapTypes(9999)

// HeatmapOverlay composites the combined keypoint heatmaps over the given
// image.  The heatmap channels are reduced by their per cell maximum,
// normalised, colored with the given colormap, resized to the image
// dimensions, then alpha blended with the image.
func HeatmapOverlay(img *gocv.Mat, heatmaps *kpcodec.Tensor,
	colormap gocv.ColormapTypes, alpha float64) error {

	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("alpha must be in range [0,1], got %f", alpha)
	}

	u8 := responseToU8(heatmaps)

	u8Mat, err := gocv.NewMatFromBytes(heatmaps.Height, heatmaps.Width,
		gocv.MatTypeCV8U, u8)

	if err != nil {
		return fmt.Errorf("failed to create heatmap mat: %v", err)
	}

	defer u8Mat.Close()

	colorMat := gocv.NewMat()
	defer colorMat.Close()

	if colormap == GrayscaleMap {
		gocv.CvtColor(u8Mat, &colorMat, gocv.ColorGrayToBGR)
	} else {
		gocv.ApplyColorMap(u8Mat, &colorMat, colormap)
	}

	resized := gocv.NewMat()
	defer resized.Close()

	gocv.Resize(colorMat, &resized, image.Pt(img.Cols(), img.Rows()), 0, 0,
		gocv.InterpolationCubic)

	gocv.AddWeighted(*img, 1-alpha, resized, alpha, 0, img)

	return nil
}

// responseToU8 reduces the heatmap channels by per cell maximum and
// converts the result to an 8-bit grayscale buffer.
//
// Heatmap responses are nominally in [0,1] but model outputs are not
// bounded, so the buffer is normalised by the observed min/max over the
// whole map.  Output layout is row-major grayscale: out[y*w + x].
func responseToU8(heatmaps *kpcodec.Tensor) []byte {

	h, w := heatmaps.Height, heatmaps.Width
	total := h * w

	combined := make([]float32, total)

	for c := 0; c < heatmaps.Channels; c++ {
		for i, v := range heatmaps.Channel(c) {
			if v > combined[i] {
				combined[i] = v
			}
		}
	}

	// find min/max ignoring NaN/Inf values so they don't poison the range
	minV := float32(math.Inf(1))
	maxV := float32(math.Inf(-1))

	for _, v := range combined {

		if !isFinite32(v) {
			continue
		}

		if v < minV {
			minV = v
		}

		if v > maxV {
			maxV = v
		}
	}

	out := make([]byte, total)

	den := maxV - minV
	if !isFinite32(minV) || !isFinite32(maxV) || den <= 0 {
		// all invalid or constant output, return a black image
		return out
	}

	for i, v := range combined {

		if !isFinite32(v) {
			v = minV
		}

		n := (v - minV) / den

		if n < 0 {
			n = 0
		}
		if n > 1 {
			n = 1
		}

		out[i] = byte(n * 255.0)
	}

	return out
}

// isFinite32 returns true if v is neither NaN nor +/-Inf
func isFinite32(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
