package city

import (
	"neoncity/internal/config"
	"neoncity/internal/engine"
)

// ClearanceParams bounds the junction square [-Radius, Radius]² on XZ.
// Boxes shorter than MinHeight are never removed.
type ClearanceParams struct {
	Radius    float32
	MinHeight float32
}

func ClearanceFrom(cfg config.Config) ClearanceParams {
	return ClearanceParams{Radius: cfg.JunctionRadius(), MinHeight: cfg.Clearance.MinHeight}
}

type ClearanceReport struct {
	Inspected int
	Short     int
	Removed   []*engine.GameObject
	ByKind    map[engine.NodeKind]int
}

// ClearJunction detaches every renderable leaf that is tall enough and
// overlaps the junction square, whatever its kind. Nodes are collected
// before any detach so the traversal never sees a mutated tree.
func ClearJunction(scene *engine.Scene, p ClearanceParams) ClearanceReport {
	report := ClearanceReport{ByKind: make(map[engine.NodeKind]int)}
	var doomed []*engine.GameObject

	for _, leaf := range scene.Leaves() {
		local := leaf.LocalBounds()
		if local.IsEmpty() {
			continue
		}
		report.Inspected++
		box := local.Transform(leaf.WorldMatrix())
		if box.Height() < p.MinHeight {
			report.Short++
			continue
		}
		if box.OverlapsSquareXZ(p.Radius) {
			doomed = append(doomed, leaf)
		}
	}

	for _, n := range doomed {
		if n.Detach() {
			report.Removed = append(report.Removed, n)
			report.ByKind[n.Kind]++
		}
	}
	return report
}
