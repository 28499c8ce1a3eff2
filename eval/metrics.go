// Package eval provides accuracy metrics for decoded keypoints against
// ground truth annotations
package eval

import (
	"fmt"
	"math"

	"github.com/mvane/go-kpcodec"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distances returns the per keypoint euclidean distance between predicted
// and ground truth keypoints
func Distances(pred, truth []kpcodec.Point) ([]float64, error) {

	if len(pred) != len(truth) {
		return nil, fmt.Errorf("prediction has %d keypoints, ground truth has %d",
			len(pred), len(truth))
	}

	dists := make([]float64, len(pred))

	for k := range pred {
		dists[k] = math.Hypot(float64(pred[k].X-truth[k].X),
			float64(pred[k].Y-truth[k].Y))
	}

	return dists, nil
}

// NME returns the normalised mean error, the mean euclidean keypoint
// distance divided by the given normalisation factor.  For face alignment
// the factor is typically the inter ocular distance of the ground truth.
func NME(pred, truth []kpcodec.Point, normalize float64) (float64, error) {

	if normalize <= 0 {
		return 0, fmt.Errorf("normalization factor must be positive, got %f",
			normalize)
	}

	dists, err := Distances(pred, truth)

	if err != nil {
		return 0, err
	}

	return stat.Mean(dists, nil) / normalize, nil
}

// PCK returns the percentage of correct keypoints, the fraction of
// keypoints whose normalised distance falls within the given threshold
func PCK(pred, truth []kpcodec.Point, threshold, normalize float64) (float64, error) {

	if normalize <= 0 {
		return 0, fmt.Errorf("normalization factor must be positive, got %f",
			normalize)
	}

	dists, err := Distances(pred, truth)

	if err != nil {
		return 0, err
	}

	if len(dists) == 0 {
		return 0, fmt.Errorf("no keypoints to evaluate")
	}

	correct := 0

	for _, d := range dists {
		if d/normalize <= threshold {
			correct++
		}
	}

	return float64(correct) / float64(len(dists)), nil
}

// WorstError returns the largest euclidean keypoint distance and the index
// of the keypoint it occurred at
func WorstError(pred, truth []kpcodec.Point) (float64, int, error) {

	dists, err := Distances(pred, truth)

	if err != nil {
		return 0, 0, err
	}

	if len(dists) == 0 {
		return 0, 0, fmt.Errorf("no keypoints to evaluate")
	}

	idx := floats.MaxIdx(dists)

	return dists[idx], idx, nil
}

// InterOcular returns the distance between the two given keypoint indices,
// commonly the outer eye corners, used as the NME normalisation factor for
// face alignment
func InterOcular(truth []kpcodec.Point, leftEye, rightEye int) (float64, error) {

	if leftEye < 0 || leftEye >= len(truth) || rightEye < 0 || rightEye >= len(truth) {
		return 0, fmt.Errorf("eye indices (%d,%d) out of range for %d keypoints",
			leftEye, rightEye, len(truth))
	}

	d := math.Hypot(float64(truth[leftEye].X-truth[rightEye].X),
		float64(truth[leftEye].Y-truth[rightEye].Y))

	if d == 0 {
		return 0, fmt.Errorf("inter ocular distance is zero")
	}

	return d, nil
}
