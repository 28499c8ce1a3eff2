package render

import (
	"image"
	"image/color"

	"github.com/mvane/go-kpcodec"
	xdraw "golang.org/x/image/draw"
)

// HeatmapImage converts the combined keypoint heatmaps into a standard
// library image without requiring OpenCV.  Response intensity maps from
// black through red to yellow.
func HeatmapImage(heatmaps *kpcodec.Tensor) *image.RGBA {

	u8 := responseToU8(heatmaps)

	img := image.NewRGBA(image.Rect(0, 0, heatmaps.Width, heatmaps.Height))

	for y := 0; y < heatmaps.Height; y++ {
		for x := 0; x < heatmaps.Width; x++ {
			img.SetRGBA(x, y, heatColor(u8[y*heatmaps.Width+x]))
		}
	}

	return img
}

// ScaleImage resizes the image to the given size using Catmull-Rom
// interpolation, used to upscale a heatmap image to input image resolution
func ScaleImage(img image.Image, size kpcodec.Size) *image.RGBA {

	dst := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	return dst
}

// heatColor maps an 8-bit intensity onto a black to red to yellow ramp
func heatColor(v byte) color.RGBA {

	if v < 128 {
		return color.RGBA{R: v * 2, A: 255}
	}

	return color.RGBA{R: 255, G: (v - 128) * 2, A: 255}
}
