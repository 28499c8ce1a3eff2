package codec

import (
	"testing"
)

func TestRegistry(t *testing.T) {

	reg := NewRegistry()

	c, err := NewHeatmapOffset(HeatmapOffsetWFLWParams())

	if err != nil {
		t.Fatalf("Constructor failed: %v", err)
	}

	if err := reg.Register("wflw", c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := reg.Get("wflw")

	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got != Codec(c) {
		t.Error("Get returned a different codec than was registered")
	}
}

func TestRegistryDuplicate(t *testing.T) {

	reg := NewRegistry()

	c, _ := NewHeatmapOffset(HeatmapOffsetWFLWParams())

	if err := reg.Register("face", c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := reg.Register("face", c); err == nil {
		t.Error("Expected error for duplicate registration, got nil")
	}
}

func TestRegistryUnknown(t *testing.T) {

	reg := NewRegistry()

	if _, err := reg.Get("missing"); err == nil {
		t.Error("Expected error for unknown codec, got nil")
	}
}

func TestRegistryNames(t *testing.T) {

	reg := NewRegistry()

	c, _ := NewHeatmapOffset(HeatmapOffsetWFLWParams())

	reg.Register("b", c)
	reg.Register("a", c)

	names := reg.Names()

	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Expected sorted names [a b], got %v", names)
	}
}
