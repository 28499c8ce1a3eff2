// Package heatmap provides the Gaussian heatmap generation and peak search
// primitives used by the keypoint codecs.
package heatmap

import (
	"math"

	"github.com/mvane/go-kpcodec"
)

// GenerateUnbiasedGaussian generates one Gaussian response map per keypoint
// at the given heatmap size, along with the per keypoint target weights.
//
// The Gaussian is evaluated at the true sub-pixel keypoint centre over every
// cell rather than snapping the centre to the nearest cell first, so the
// peak cell value approaches but does not round to 1.0 unless the keypoint
// lies exactly on a cell.  Keypoint coordinates must already be in heatmap
// space.
//
// A keypoint's weight equals its visibility flag, forced to zero when the
// keypoint falls outside [0,W)x[0,H).  Keypoints with visibility below 0.5
// or out of bounds leave their channel all zero.
func GenerateUnbiasedGaussian(size kpcodec.Size, keypoints []kpcodec.Point,
	visible []float32, sigma float32) (*kpcodec.Tensor, []float32) {

	numKeyPoints := len(keypoints)
	w, h := size.W, size.H

	heatmaps := kpcodec.NewTensor(numKeyPoints, h, w)

	weights := make([]float32, numKeyPoints)
	copy(weights, visible)

	denom := 2 * float64(sigma) * float64(sigma)

	for k, pt := range keypoints {

		if visible[k] < 0.5 {
			continue
		}

		if pt.X < 0 || pt.Y < 0 || pt.X >= float32(w) || pt.Y >= float32(h) {
			// out of bounds keypoints contribute no supervision
			weights[k] = 0
			continue
		}

		plane := heatmaps.Channel(k)

		for y := 0; y < h; y++ {

			dy := float64(y) - float64(pt.Y)
			rowOffset := y * w

			for x := 0; x < w; x++ {
				dx := float64(x) - float64(pt.X)
				plane[rowOffset+x] = float32(math.Exp(-(dx*dx + dy*dy) / denom))
			}
		}
	}

	return heatmaps, weights
}
