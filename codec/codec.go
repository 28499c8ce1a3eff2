// Package codec converts between keypoint coordinates in input image space
// and the dense tensor targets a keypoint localisation model is trained on.
package codec

import (
	"github.com/mvane/go-kpcodec"
)

// Codec defines the interface for keypoint target encoders and decoders.
// Implementations are stateless beyond the configuration fixed at
// construction, so a single instance may be shared across goroutines
// provided each call uses its own input and output buffers.
type Codec interface {
	// Encode converts keypoints in input image space into training
	// targets.  The outer slice is the instance dimension and must have
	// length one.  A nil visible slice defaults to all keypoints visible.
	Encode(keypoints [][]kpcodec.Point, visible [][]float32) (*Encoded, error)

	// Decode converts model output tensors back into keypoints in input
	// image space with per keypoint confidence scores.  The returned
	// slices carry a leading instance dimension of length one, matching
	// the encode side convention.
	Decode(heatmaps, displacements *kpcodec.Tensor) ([][]kpcodec.Point, [][]float32, error)
}

// Encoded holds the training targets produced by a Codec for a single
// instance of K keypoints on an HxW heatmap grid
type Encoded struct {
	// Heatmaps are the per keypoint Gaussian response maps in shape (K,H,W)
	Heatmaps *kpcodec.Tensor
	// Weights are the per keypoint target weights in shape (K).  A weight
	// of zero marks a keypoint that must not contribute to the loss.
	Weights []float32
	// Displacements is the dense sub-pixel offset field in shape (2K,H,W).
	// Channel k holds the x offsets for keypoint k and channel K+k the
	// y offsets.
	Displacements *kpcodec.Tensor
}
