package components

import (
	"fmt"

	"neoncity/internal/engine"
)

// Describer is implemented by components that expose read-only metadata to
// pointer picking and observers.
type Describer interface {
	Describe() []string
}

// BuildingInfo carries the rounded dimensions recorded at generation.
type BuildingInfo struct {
	engine.BaseComponent
	Height  int
	Width   int
	Depth   int
	Variant string
	CellX   float32
	CellZ   float32
}

func (b *BuildingInfo) Describe() []string {
	return []string{
		fmt.Sprintf("Height: %d m", b.Height),
		fmt.Sprintf("Width: %d m", b.Width),
		fmt.Sprintf("Depth: %d m", b.Depth),
	}
}

// VehicleInfo tags a vehicle root with its lane.
type VehicleInfo struct {
	engine.BaseComponent
	Lane  string
	Speed float32
}

func (v *VehicleInfo) Describe() []string {
	return []string{
		fmt.Sprintf("Lane: %s", v.Lane),
		fmt.Sprintf("Speed: %.0f u/s", v.Speed),
	}
}
