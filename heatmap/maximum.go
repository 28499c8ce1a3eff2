package heatmap

import (
	"github.com/mvane/go-kpcodec"
)

// Maximum finds the peak cell of each heatmap channel and returns the peak
// locations as (col, row) pairs along with the peak values as confidence
// scores.
//
// A channel whose maximum value is less than or equal to zero has no usable
// peak, a flat or empty heatmap, and is reported with the sentinel location
// (-1, -1).  Callers must handle the sentinel before indexing with the
// returned coordinates.
func Maximum(heatmaps *kpcodec.Tensor) (locs [][2]int, scores []float32) {

	numKeyPoints := heatmaps.Channels

	locs = make([][2]int, numKeyPoints)
	scores = make([]float32, numKeyPoints)

	for k := 0; k < numKeyPoints; k++ {

		plane := heatmaps.Channel(k)

		maxIdx := 0
		maxVal := plane[0]

		for i, val := range plane {
			if val > maxVal {
				maxVal = val
				maxIdx = i
			}
		}

		scores[k] = maxVal

		if maxVal <= 0 {
			locs[k] = [2]int{-1, -1}
			continue
		}

		locs[k] = [2]int{maxIdx % heatmaps.Width, maxIdx / heatmaps.Width}
	}

	return locs, scores
}
