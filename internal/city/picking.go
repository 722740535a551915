package city

import (
	"neoncity/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PickBuilding returns the nearest attached building hit by the ray.
func PickBuilding(buildings []*Building, origin, direction rl.Vector3, maxDistance float32) (*Building, physics.RayHit, bool) {
	var best *Building
	var bestHit physics.RayHit
	for _, b := range buildings {
		if !b.Attached() {
			continue
		}
		hit, ok := physics.RayAABB(origin, direction, b.Node.WorldBounds(), maxDistance)
		if !ok {
			continue
		}
		if best == nil || hit.Distance < bestHit.Distance {
			best, bestHit = b, hit
		}
	}
	return best, bestHit, best != nil
}
