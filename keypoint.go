package kpcodec

// Point is a single 2D keypoint coordinate.  Coordinates are in the
// coordinate space stated by the function consuming or producing them,
// either input image space or heatmap space.
type Point struct {
	X float32
	Y float32
}

// Size defines a width and height pair used for input image and heatmap
// dimensions
type Size struct {
	W int
	H int
}

// Pixels returns the total number of cells covered by the size
func (s Size) Pixels() int {
	return s.W * s.H
}
