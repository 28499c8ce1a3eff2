package codec

import (
	"fmt"

	"github.com/mvane/go-kpcodec"
	"github.com/mvane/go-kpcodec/heatmap"
)

// HeatmapOffset encodes keypoints into Gaussian heatmaps paired with a
// dense sub-pixel displacement field, and decodes the pair back into
// keypoint coordinates.
//
// The heatmap alone localises a keypoint only to its peak cell, integer
// resolution in heatmap space.  The displacement field stores, for every
// cell, the exact vector from that cell to the keypoint's true scaled
// location, so decode can read the correction at the peak cell and recover
// the keypoint at sub-pixel precision before rescaling to input image
// space.
type HeatmapOffset struct {
	// Params are the codec configuration parameters
	Params HeatmapOffsetParams
	// scale factor mapping heatmap space to input image space per axis
	scaleX float32
	scaleY float32
	// flat (H,W) coordinate grids where xRange[row*W+col] = col and
	// yRange[row*W+col] = row, precomputed once and never mutated
	xRange []float32
	yRange []float32
}

// HeatmapOffsetParams defines the configuration parameters for the
// HeatmapOffset codec
type HeatmapOffsetParams struct {
	// InputSize is the input image size in (w, h)
	InputSize kpcodec.Size
	// HeatmapSize is the heatmap grid size in (W, H)
	HeatmapSize kpcodec.Size
	// Sigma is the standard deviation of the Gaussian response in heatmap
	// cells
	Sigma float32
}

// HeatmapOffsetWFLWParams returns an instance of HeatmapOffsetParams
// configured with default values for a 98 landmark face alignment model
// featuring:
// - Input Size: 256x256
// - Heatmap Size: 64x64
// - Sigma: 2.0
func HeatmapOffsetWFLWParams() HeatmapOffsetParams {
	return HeatmapOffsetParams{
		InputSize:   kpcodec.Size{W: 256, H: 256},
		HeatmapSize: kpcodec.Size{W: 64, H: 64},
		Sigma:       2.0,
	}
}

// NewHeatmapOffset returns an instance of the HeatmapOffset codec.  The
// scale factor and coordinate grids are precomputed here and reused,
// unmutated, by every encode and decode call.
func NewHeatmapOffset(p HeatmapOffsetParams) (*HeatmapOffset, error) {

	if p.InputSize.W <= 0 || p.InputSize.H <= 0 {
		return nil, fmt.Errorf("input size must be positive, got (%d,%d)",
			p.InputSize.W, p.InputSize.H)
	}

	if p.HeatmapSize.W <= 0 || p.HeatmapSize.H <= 0 {
		return nil, fmt.Errorf("heatmap size must be positive, got (%d,%d)",
			p.HeatmapSize.W, p.HeatmapSize.H)
	}

	if p.Sigma <= 0 {
		return nil, fmt.Errorf("sigma must be positive, got %f", p.Sigma)
	}

	c := &HeatmapOffset{
		Params: p,
		scaleX: float32(p.InputSize.W) / float32(p.HeatmapSize.W),
		scaleY: float32(p.InputSize.H) / float32(p.HeatmapSize.H),
	}

	w, h := p.HeatmapSize.W, p.HeatmapSize.H

	c.xRange = make([]float32, h*w)
	c.yRange = make([]float32, h*w)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.xRange[y*w+x] = float32(x)
			c.yRange[y*w+x] = float32(y)
		}
	}

	return c, nil
}

// ScaleFactor returns the per axis ratio between input image and heatmap
// resolution
func (c *HeatmapOffset) ScaleFactor() (x, y float32) {
	return c.scaleX, c.scaleY
}

// Encode converts a single instance of keypoints in input image space into
// Gaussian heatmaps in shape (K,H,W), per keypoint weights in shape (K),
// and the dense displacement field in shape (2K,H,W)
func (c *HeatmapOffset) Encode(keypoints [][]kpcodec.Point,
	visible [][]float32) (*Encoded, error) {

	if len(keypoints) != 1 {
		return nil, fmt.Errorf("codec only supports single instance keypoint "+
			"encoding, got %d instances", len(keypoints))
	}

	instance := keypoints[0]
	numKeyPoints := len(instance)

	if visible == nil {
		visible = [][]float32{make([]float32, numKeyPoints)}
		for k := range visible[0] {
			visible[0][k] = 1
		}
	}

	if len(visible) != 1 {
		return nil, fmt.Errorf("visibility must cover a single instance, "+
			"got %d instances", len(visible))
	}

	if len(visible[0]) != numKeyPoints {
		return nil, fmt.Errorf("visibility length %d does not match "+
			"keypoint count %d", len(visible[0]), numKeyPoints)
	}

	// convert keypoints from input image space to heatmap space
	scaled := make([]kpcodec.Point, numKeyPoints)

	for k, pt := range instance {
		scaled[k] = kpcodec.Point{
			X: pt.X / c.scaleX,
			Y: pt.Y / c.scaleY,
		}
	}

	heatmaps, weights := heatmap.GenerateUnbiasedGaussian(
		c.Params.HeatmapSize, scaled, visible[0], c.Params.Sigma)

	return &Encoded{
		Heatmaps:      heatmaps,
		Weights:       weights,
		Displacements: c.displacementField(scaled),
	}, nil
}

// displacementField computes the dense offset field for the given keypoints
// in heatmap space.  Every cell of every keypoint channel stores the exact
// signed distance from that cell to the keypoint, no locality cutoff is
// applied.  Cells far from the keypoint receive negligible heatmap response
// so their offsets carry little to no supervision weight, that weighting is
// the loss function's concern, not this field's.
func (c *HeatmapOffset) displacementField(scaled []kpcodec.Point) *kpcodec.Tensor {

	numKeyPoints := len(scaled)
	w, h := c.Params.HeatmapSize.W, c.Params.HeatmapSize.H

	field := kpcodec.NewTensor(2*numKeyPoints, h, w)

	for k, pt := range scaled {

		offsetX := field.Channel(k)
		offsetY := field.Channel(numKeyPoints + k)

		for i := range offsetX {
			offsetX[i] = pt.X - c.xRange[i]
			offsetY[i] = pt.Y - c.yRange[i]
		}
	}

	return field
}

// Decode converts heatmaps in shape (K,H,W) and a displacement field in
// shape (2K,H,W) back into keypoint coordinates in input image space.
// Defensive copies of both inputs are taken so caller buffers are never
// mutated.
//
// A channel whose peak search returns a negative coordinate, the sentinel
// for a flat or empty heatmap, is clamped to the origin cell.  The decoded
// keypoint for such a channel is a degraded result, its score will be at or
// near zero and callers should use the score to detect it.
func (c *HeatmapOffset) Decode(heatmaps,
	displacements *kpcodec.Tensor) ([][]kpcodec.Point, [][]float32, error) {

	numKeyPoints := heatmaps.Channels

	if displacements.Channels != 2*numKeyPoints {
		return nil, nil, fmt.Errorf("displacement field has %d channels, "+
			"expected %d for %d keypoint heatmaps",
			displacements.Channels, 2*numKeyPoints, numKeyPoints)
	}

	if displacements.Height != heatmaps.Height ||
		displacements.Width != heatmaps.Width {
		return nil, nil, fmt.Errorf("displacement field size (%d,%d) does not "+
			"match heatmap size (%d,%d)", displacements.Width,
			displacements.Height, heatmaps.Width, heatmaps.Height)
	}

	hm := heatmaps.Clone()
	disp := displacements.Clone()

	locs, scores := heatmap.Maximum(hm)

	decoded := make([]kpcodec.Point, numKeyPoints)

	for k := 0; k < numKeyPoints; k++ {

		x, y := locs[k][0], locs[k][1]

		if x < 0 || y < 0 {
			// no valid peak, clamp both axes to the origin cell
			x, y = 0, 0
		}

		// the offset is read at the integer peak cell in (channel, row, col)
		// order, channel k holds x offsets and channel K+k holds y offsets
		decoded[k] = kpcodec.Point{
			X: (float32(x) + disp.At(k, y, x)) * c.scaleX,
			Y: (float32(y) + disp.At(numKeyPoints+k, y, x)) * c.scaleY,
		}
	}

	return [][]kpcodec.Point{decoded}, [][]float32{scores}, nil
}
