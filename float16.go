package kpcodec

import (
	"fmt"

	"github.com/x448/float16"
)

var f16LookupTable [65536]float32

func init() {
	// precompute float16 lookup table for faster conversion to float32
	for i := range f16LookupTable {
		f16 := float16.Frombits(uint16(i))
		f16LookupTable[i] = f16.Float32()
	}
}

// TensorFromFloat16 converts a raw float16 tensor buffer, such as a half
// precision model output, into a float32 tensor with the given CHW
// dimensions
func TensorFromFloat16(buf []uint16, channels, height, width int) (*Tensor, error) {

	if len(buf) != channels*height*width {
		return nil, fmt.Errorf("buffer length %d does not match dimensions (%d,%d,%d)",
			len(buf), channels, height, width)
	}

	data := make([]float32, len(buf))

	for i, bits := range buf {
		data[i] = f16LookupTable[bits]
	}

	return &Tensor{
		Data:     data,
		Channels: channels,
		Height:   height,
		Width:    width,
	}, nil
}
