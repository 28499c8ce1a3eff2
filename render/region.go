package render

import (
	"fmt"
	"image"
	"math"

	clipper "github.com/ctessum/go.clipper"
	"github.com/mvane/go-kpcodec"
	"gocv.io/x/gocv"
)

// KeyPointRegion expands the closed polygon formed by the given keypoints
// outward and returns the expanded polygon.  The expansion distance is
// derived from the polygon's area and perimeter scaled by expandRatio, so
// larger regions grow by proportionally larger margins.  Used to turn a
// decoded landmark contour into a region mask covering the surrounding
// image area.
func KeyPointRegion(keyPoints []kpcodec.Point, expandRatio float64) ([]image.Point, error) {

	if len(keyPoints) < 3 {
		return nil, fmt.Errorf("region requires at least 3 keypoints, got %d",
			len(keyPoints))
	}

	distance := expandDistance(keyPoints, expandRatio)

	// convert the keypoints to a Clipper path
	var path clipper.Path

	for _, pt := range keyPoints {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(pt.X),
			Y: clipper.CInt(pt.Y),
		})
	}

	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtRound, clipper.EtClosedPolygon)

	solution := co.Execute(distance)

	var points []image.Point

	for _, sol := range solution {
		for _, pt := range sol {
			points = append(points, image.Point{X: int(pt.X), Y: int(pt.Y)})
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("polygon offset produced an empty region")
	}

	return points, nil
}

// DrawRegion fills the given polygon on the image
func DrawRegion(img *gocv.Mat, region []image.Point) {

	pts := gocv.NewPointsVectorFromPoints([][]image.Point{region})
	defer pts.Close()

	gocv.FillPoly(img, pts, Green)
}

// expandDistance returns the polygon offset distance, contour area scaled
// by the expand ratio over the perimeter
func expandDistance(pts []kpcodec.Point, expandRatio float64) float64 {

	n := len(pts)
	area := 0.0
	perimeter := 0.0

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += float64(pts[i].X)*float64(pts[j].Y) -
			float64(pts[i].Y)*float64(pts[j].X)
		perimeter += math.Hypot(float64(pts[i].X-pts[j].X),
			float64(pts[i].Y-pts[j].Y))
	}

	area = math.Abs(area / 2.0)

	if perimeter == 0 {
		return 0
	}

	return area * expandRatio / perimeter
}
