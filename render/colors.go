package render

import "image/color"

var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 50, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}

	// landmarkPalette are the colors cycled through when drawing keypoint
	// markers, chosen for contrast against both skin tones and backgrounds
	landmarkPalette = []color.RGBA{
		{R: 255, G: 128, B: 0, A: 255},
		{R: 230, G: 230, B: 0, A: 255},
		{R: 51, G: 153, B: 255, A: 255},
		{R: 255, G: 51, B: 255, A: 255},
		{R: 51, G: 255, B: 51, A: 255},
		{R: 255, G: 51, B: 51, A: 255},
		{R: 0, G: 212, B: 187, A: 255},
		{R: 153, G: 204, B: 255, A: 255},
		{R: 255, G: 153, B: 153, A: 255},
		{R: 128, G: 56, B: 255, A: 255},
	}
)

// LandmarkColor returns the marker color for the keypoint at the given
// index, cycling through the palette
func LandmarkColor(idx int) color.RGBA {
	return landmarkPalette[idx%len(landmarkPalette)]
}
