package render

import (
	"math"
	"testing"

	"github.com/mvane/go-kpcodec"
)

var square = []kpcodec.Point{
	{X: 10, Y: 10},
	{X: 30, Y: 10},
	{X: 30, Y: 30},
	{X: 10, Y: 30},
}

func TestExpandDistance(t *testing.T) {

	// 20x20 square: area 400, perimeter 80, ratio 1.5 gives distance 7.5
	d := expandDistance(square, 1.5)

	if math.Abs(d-7.5) > 1e-9 {
		t.Errorf("Expected expand distance 7.5, got %f", d)
	}
}

func TestKeyPointRegionExpands(t *testing.T) {

	region, err := KeyPointRegion(square, 1.5)

	if err != nil {
		t.Fatalf("KeyPointRegion failed: %v", err)
	}

	// every corner of the original square must lie inside the expanded
	// region's bounding box with margin to spare
	minX, minY := region[0].X, region[0].Y
	maxX, maxY := minX, minY

	for _, pt := range region {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	if minX >= 10 || minY >= 10 || maxX <= 30 || maxY <= 30 {
		t.Errorf("Region did not expand beyond the source polygon, bounds (%d,%d)-(%d,%d)",
			minX, minY, maxX, maxY)
	}
}

func TestKeyPointRegionTooFewPoints(t *testing.T) {

	if _, err := KeyPointRegion(square[:2], 1.5); err == nil {
		t.Error("Expected error for fewer than 3 keypoints, got nil")
	}
}
