package render

import (
	"gocv.io/x/gocv"
	"image"
	"image/color"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.35,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
	}
}

// Text draws the given label onto the image at the given position
func (f Font) Text(img *gocv.Mat, label string, at image.Point) {
	gocv.PutTextWithParams(img, label, at, f.Face, f.Scale, f.Color,
		f.Thickness, f.LineType, false)
}
