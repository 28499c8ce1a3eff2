package kpcodec

import (
	"testing"

	"github.com/x448/float16"
)

func TestTensorAtSet(t *testing.T) {

	tensor := NewTensor(2, 3, 4)

	if len(tensor.Data) != 24 {
		t.Fatalf("Expected backing buffer length 24, got %d", len(tensor.Data))
	}

	tensor.Set(1, 2, 3, 7.5)

	if got := tensor.At(1, 2, 3); got != 7.5 {
		t.Errorf("Expected value 7.5 at (1,2,3), got %f", got)
	}

	// flat index of (c=1,y=2,x=3) in CHW layout
	if got := tensor.Data[1*12+2*4+3]; got != 7.5 {
		t.Errorf("Expected flat buffer value 7.5, got %f", got)
	}
}

func TestTensorChannelAliases(t *testing.T) {

	tensor := NewTensor(3, 2, 2)

	plane := tensor.Channel(1)
	plane[0] = 42

	if got := tensor.At(1, 0, 0); got != 42 {
		t.Errorf("Channel slice write not visible in tensor, got %f", got)
	}
}

func TestTensorClone(t *testing.T) {

	tensor := NewTensor(1, 2, 2)
	tensor.Set(0, 0, 0, 1)

	clone := tensor.Clone()
	clone.Set(0, 0, 0, 9)

	if got := tensor.At(0, 0, 0); got != 1 {
		t.Errorf("Clone write modified the original, got %f", got)
	}

	if clone.Channels != 1 || clone.Height != 2 || clone.Width != 2 {
		t.Errorf("Clone dimensions wrong, got (%d,%d,%d)",
			clone.Channels, clone.Height, clone.Width)
	}
}

func TestNewTensorFromDataShapeMismatch(t *testing.T) {

	_, err := NewTensorFromData(make([]float32, 10), 2, 3, 4)

	if err == nil {
		t.Error("Expected error for mismatched buffer length, got nil")
	}
}

func TestTensorFromFloat16(t *testing.T) {

	vals := []float32{0, 1, -2.5, 0.5}

	buf := make([]uint16, len(vals))

	for i, v := range vals {
		buf[i] = float16.Fromfloat32(v).Bits()
	}

	tensor, err := TensorFromFloat16(buf, 1, 2, 2)

	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}

	for i, want := range vals {
		if got := tensor.Data[i]; got != want {
			t.Errorf("Value %d converted to %f, expected %f", i, got, want)
		}
	}
}

func TestTensorFromFloat16ShapeMismatch(t *testing.T) {

	_, err := TensorFromFloat16(make([]uint16, 3), 1, 2, 2)

	if err == nil {
		t.Error("Expected error for mismatched buffer length, got nil")
	}
}
