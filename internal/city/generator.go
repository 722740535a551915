package city

import (
	"fmt"
	"math/rand"

	"neoncity/internal/assets"
	"neoncity/internal/config"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const groundSize = 4000

// City is the result of one generation run.
type City struct {
	Config    config.Config
	Scene     *engine.Scene
	State     *SceneState
	Buildings []*Building
	Corridors []CorridorGeometry
	Grid      GridReport
	Lamps     int
	DarkLamps int
	Clearance ClearanceReport
}

// Generate builds the whole diorama into scene. Steps run in a fixed order:
// ground, corridors, traffic, buildings, lamps, junction clearance, then the
// roundabout so the island and sign are never cleared.
func Generate(scene *engine.Scene, cfg config.Config, palette *assets.Palette, rng *rand.Rand) (*City, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	b := NewBuilder(cfg, palette, rng)
	c := &City{Config: cfg, Scene: scene}

	ground := b.mesh("Ground", engine.KindGround, rl.Vector3{},
		assets.MeshPlane, rl.Vector3{X: groundSize, Z: groundSize}, assets.MatGround)
	scene.AddGameObject(ground)

	roads := group("Roads")
	markings := group("LaneMarkings")
	scene.AddGameObject(roads)
	scene.AddGameObject(markings)
	for _, axis := range []config.Axis{config.AxisX, config.AxisZ} {
		c.Corridors = append(c.Corridors, b.BuildCorridor(roads, markings, cfg.Corridor, cfg.Markings, axis, 0))
	}

	vehicles := group("Vehicles")
	scene.AddGameObject(vehicles)
	traffic := b.SpawnTraffic(vehicles)

	buildings := group("Buildings")
	scene.AddGameObject(buildings)
	c.Buildings, c.Grid = b.PlaceBuildings(buildings)

	lamps := group("StreetLamps")
	scene.AddGameObject(lamps)
	for _, axis := range []config.Axis{config.AxisX, config.AxisZ} {
		c.Lamps += b.PlaceLamps(lamps, axis, 0)
	}

	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	c.Clearance = ClearJunction(scene, ClearanceFrom(cfg))
	c.DarkLamps = PruneDarkLamps(lamps)

	roundabout := group("Roundabout")
	scene.AddGameObject(roundabout)
	sign := b.BuildRoundabout(roundabout)
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	c.State = NewSceneState(traffic, sign)
	return c, nil
}

// Standing returns the buildings still attached after clearance.
func (c *City) Standing() []*Building {
	out := make([]*Building, 0, len(c.Buildings))
	for _, b := range c.Buildings {
		if b.Attached() {
			out = append(out, b)
		}
	}
	return out
}
