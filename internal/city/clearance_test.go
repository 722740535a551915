package city

import (
	"math/rand"
	"testing"

	"neoncity/internal/assets"
	"neoncity/internal/components"
	"neoncity/internal/config"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func boxNode(name string, kind engine.NodeKind, pos, size rl.Vector3) *engine.GameObject {
	n := engine.NewNode(name, kind, pos)
	n.AddComponent(components.NewMeshRenderer(assets.MeshCube, size, nil))
	return n
}

func TestClearJunctionScenario(t *testing.T) {
	scene := engine.NewScene("Junction")
	params := ClearanceParams{Radius: 56, MinHeight: 2}

	tall := boxNode("Tower", engine.KindOther, rl.Vector3{Y: 10}, rl.Vector3{X: 4, Y: 20, Z: 4})
	decal := boxNode("Decal", engine.KindOther, rl.Vector3{Y: 0.025}, rl.Vector3{X: 10, Y: 0.05, Z: 10})
	far := boxNode("FarTower", engine.KindBuilding, rl.Vector3{X: 200, Y: 30, Z: 200}, rl.Vector3{X: 10, Y: 60, Z: 10})
	edge := boxNode("EdgeTower", engine.KindBuilding, rl.Vector3{X: 60, Y: 30, Z: 60}, rl.Vector3{X: 8, Y: 60, Z: 8})
	for _, n := range []*engine.GameObject{tall, decal, far, edge} {
		scene.AddGameObject(n)
	}

	report := ClearJunction(scene, params)

	if len(report.Removed) != 2 {
		t.Fatalf("Expected 2 removals, got %d", len(report.Removed))
	}
	if scene.Contains(tall) {
		t.Errorf("Expected the tall node at the junction to be removed")
	}
	if scene.Contains(edge) {
		t.Errorf("Expected a tower overlapping the square edge to be removed")
	}
	if !scene.Contains(decal) || !scene.Contains(far) {
		t.Errorf("Expected the flat decal and the far tower to survive")
	}
	if report.Inspected != 4 || report.Short != 1 {
		t.Errorf("Expected inspected=4 short=1, got %+v", report)
	}
}

func TestClearJunctionIgnoresKind(t *testing.T) {
	scene := engine.NewScene("Kinds")
	params := ClearanceParams{Radius: 56, MinHeight: 2}

	tallCar := boxNode("TallCar", engine.KindVehicle, rl.Vector3{Y: 10}, rl.Vector3{X: 4, Y: 20, Z: 4})
	car := boxNode("Car", engine.KindVehicle, rl.Vector3{Y: 0.55}, rl.Vector3{X: 3.8, Y: 1.1, Z: 2})
	raised := boxNode("RaisedRoad", engine.KindRoad, rl.Vector3{Y: 1.5}, rl.Vector3{X: 1400, Y: 3, Z: 40})
	road := engine.NewNode("Road", engine.KindRoad, rl.Vector3{Y: 0.01})
	road.AddComponent(components.NewMeshRenderer(assets.MeshPlane, rl.Vector3{X: 1400, Z: 40}, nil))
	sign := boxNode("Sign", engine.KindSign, rl.Vector3{Y: 12}, rl.Vector3{X: 24, Y: 20, Z: 0.2})
	island := boxNode("Island", engine.KindIsland, rl.Vector3{Y: 0.44}, rl.Vector3{X: 28, Y: 0.8, Z: 28})
	for _, n := range []*engine.GameObject{tallCar, car, raised, road, sign, island} {
		scene.AddGameObject(n)
	}

	report := ClearJunction(scene, params)

	for _, gone := range []*engine.GameObject{tallCar, raised, sign} {
		if scene.Contains(gone) {
			t.Errorf("Expected tall %s (%s) to be removed", gone.Name, gone.Kind)
		}
	}
	for _, kept := range []*engine.GameObject{car, road, island} {
		if !scene.Contains(kept) {
			t.Errorf("Expected flat %s (%s) to survive", kept.Name, kept.Kind)
		}
	}
	if report.ByKind[engine.KindVehicle] != 1 || report.ByKind[engine.KindRoad] != 1 || report.ByKind[engine.KindSign] != 1 {
		t.Errorf("Expected one removal each for Vehicle, Road and Sign, got %v", report.ByKind)
	}
	if report.Short != 3 {
		t.Errorf("Expected 3 short nodes, got %d", report.Short)
	}
}

func TestClearJunctionDetachesOnlyLeaves(t *testing.T) {
	scene := engine.NewScene("Composite")
	group := engine.NewNode("Block", engine.KindOther, rl.Vector3{})
	inside := boxNode("Inside", engine.KindOther, rl.Vector3{Y: 5}, rl.Vector3{X: 2, Y: 10, Z: 2})
	outside := boxNode("Outside", engine.KindOther, rl.Vector3{X: 100, Y: 5}, rl.Vector3{X: 2, Y: 10, Z: 2})
	group.AddChild(inside)
	group.AddChild(outside)
	scene.AddGameObject(group)

	ClearJunction(scene, ClearanceParams{Radius: 20, MinHeight: 2})

	if !scene.Contains(group) || !scene.Contains(outside) {
		t.Errorf("Expected the group and its far leaf to remain")
	}
	if scene.Contains(inside) {
		t.Errorf("Expected the junction leaf to be detached")
	}
	if len(group.Children) != 1 {
		t.Errorf("Expected 1 remaining child, got %d", len(group.Children))
	}
}

func TestClearJunctionUsesWorldBounds(t *testing.T) {
	scene := engine.NewScene("Nested")
	parent := engine.NewNode("Offset", engine.KindOther, rl.Vector3{X: -100})
	child := boxNode("Pulled", engine.KindOther, rl.Vector3{X: 100, Y: 5}, rl.Vector3{X: 2, Y: 10, Z: 2})
	parent.AddChild(child)
	scene.AddGameObject(parent)

	report := ClearJunction(scene, ClearanceParams{Radius: 10, MinHeight: 2})
	if len(report.Removed) != 1 || report.Removed[0] != child {
		t.Errorf("Expected the child at world origin to be removed, got %d removals", len(report.Removed))
	}
}

func TestGeneratedJunctionIsClear(t *testing.T) {
	cfg := config.Default()
	scene := engine.NewScene("City")
	city, err := Generate(scene, cfg, assets.NewPalette(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	params := ClearanceFrom(cfg)
	roundabout := scene.FindByName("Roundabout")

	// The roundabout is placed after clearance.
	scene.Traverse(func(n *engine.GameObject) bool {
		if n == roundabout {
			return false
		}
		if !n.IsLeaf() {
			return true
		}
		box := n.WorldBounds()
		if box.IsEmpty() || box.Height() < params.MinHeight {
			return true
		}
		if box.OverlapsSquareXZ(params.Radius) {
			t.Errorf("Expected %s to be cleared from the junction", n.Name)
		}
		return true
	})

	if len(city.Clearance.Removed) == 0 {
		t.Errorf("Expected the default layout to clear something")
	}
	if !scene.Contains(city.State.Sign.Node) {
		t.Errorf("Expected the sign to survive")
	}
	city.State.Traffic.Each(func(v *Vehicle) {
		if !scene.Contains(v.Node) {
			t.Errorf("Expected vehicle %s to survive", v.Node.Name)
		}
	})
}
