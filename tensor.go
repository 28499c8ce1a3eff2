package kpcodec

import (
	"fmt"
)

// Tensor is a dense float32 tensor in CHW (channel, height, width) layout
// backed by a single flat slice.  It is the interchange type between the
// codec, the heatmap primitives, and rendering.
type Tensor struct {
	// Data is the flat backing buffer of length Channels*Height*Width,
	// channel major then row major
	Data []float32
	// Channels is the number of 2D planes held
	Channels int
	// Height is the number of rows per plane
	Height int
	// Width is the number of columns per plane
	Width int
}

// NewTensor creates a zero filled tensor with the given CHW dimensions
func NewTensor(channels, height, width int) *Tensor {
	return &Tensor{
		Data:     make([]float32, channels*height*width),
		Channels: channels,
		Height:   height,
		Width:    width,
	}
}

// NewTensorFromData wraps an existing flat buffer as a tensor.  The buffer
// length must equal channels*height*width.
func NewTensorFromData(data []float32, channels, height, width int) (*Tensor, error) {

	if len(data) != channels*height*width {
		return nil, fmt.Errorf("buffer length %d does not match dimensions (%d,%d,%d)",
			len(data), channels, height, width)
	}

	return &Tensor{
		Data:     data,
		Channels: channels,
		Height:   height,
		Width:    width,
	}, nil
}

// At returns the value at channel c, row y, column x.  No bounds checking
// is performed beyond that of the backing slice.
func (t *Tensor) At(c, y, x int) float32 {
	return t.Data[c*t.Height*t.Width+y*t.Width+x]
}

// Set writes the value at channel c, row y, column x
func (t *Tensor) Set(c, y, x int, val float32) {
	t.Data[c*t.Height*t.Width+y*t.Width+x] = val
}

// Channel returns the flat plane of channel c as a sub-slice of the backing
// buffer.  The slice aliases the tensor, writes to it modify the tensor.
func (t *Tensor) Channel(c int) []float32 {
	planeSize := t.Height * t.Width
	return t.Data[c*planeSize : (c+1)*planeSize]
}

// Dims returns the tensor dimensions in CHW order
func (t *Tensor) Dims() (channels, height, width int) {
	return t.Channels, t.Height, t.Width
}

// Clone returns a deep copy of the tensor with its own backing buffer
func (t *Tensor) Clone() *Tensor {

	data := make([]float32, len(t.Data))
	copy(data, t.Data)

	return &Tensor{
		Data:     data,
		Channels: t.Channels,
		Height:   t.Height,
		Width:    t.Width,
	}
}
