package render

import (
	"fmt"
	"image"

	"github.com/mvane/go-kpcodec"
	"gocv.io/x/gocv"
)

// KeyPoints renders the given keypoints onto the image as filled circles.
// Keypoint coordinates are in image space.
func KeyPoints(img *gocv.Mat, keyPoints []kpcodec.Point, radius int) {

	for i, pt := range keyPoints {
		gocv.Circle(img, image.Pt(int(pt.X), int(pt.Y)), radius,
			LandmarkColor(i), -1)
	}
}

// KeyPointScores renders keypoints with their confidence score drawn as a
// text label next to each marker.  Keypoints with a score below minScore
// are skipped.
func KeyPointScores(img *gocv.Mat, keyPoints []kpcodec.Point,
	scores []float32, minScore float32, radius int, font Font) {

	for i, pt := range keyPoints {

		if i < len(scores) && scores[i] < minScore {
			continue
		}

		gocv.Circle(img, image.Pt(int(pt.X), int(pt.Y)), radius,
			LandmarkColor(i), -1)

		if i < len(scores) {
			label := fmt.Sprintf("%.2f", scores[i])
			font.Text(img, label, image.Pt(int(pt.X)+radius+2, int(pt.Y)))
		}
	}
}
