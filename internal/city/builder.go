// Package city generates the diorama: two crossing road corridors, a
// building grid, street lamps, looping traffic and a roundabout sign. All
// randomness flows from the *rand.Rand handed to the Builder.
package city

import (
	"math/rand"

	"neoncity/internal/assets"
	"neoncity/internal/components"
	"neoncity/internal/config"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Builder holds the shared inputs of every generation step. The first
// material lookup failure is kept and reported by Err.
type Builder struct {
	Config  config.Config
	Palette *assets.Palette
	Rand    *rand.Rand
	err     error
}

func NewBuilder(cfg config.Config, palette *assets.Palette, rng *rand.Rand) *Builder {
	if palette == nil {
		palette = assets.NewPalette()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	return &Builder{Config: cfg, Palette: palette, Rand: rng}
}

func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) material(name string) *assets.Material {
	m, err := b.Palette.Lookup(name)
	if err != nil && b.err == nil {
		b.err = err
	}
	return m
}

// mesh creates a renderable node of the given kind.
func (b *Builder) mesh(name string, kind engine.NodeKind, pos rl.Vector3, meshType assets.MeshType, size rl.Vector3, matName string) *engine.GameObject {
	node := engine.NewNode(name, kind, pos)
	node.AddComponent(components.NewMeshRenderer(meshType, size, b.material(matName)))
	return node
}

// between draws uniformly from [lo, hi).
func (b *Builder) between(lo, hi float32) float32 {
	return lo + float32(b.Rand.Float64())*(hi-lo)
}

// centered draws uniformly from [-spread/2, spread/2).
func (b *Builder) centered(spread float32) float32 {
	return (float32(b.Rand.Float64()) - 0.5) * spread
}

func group(name string) *engine.GameObject {
	return engine.NewGameObject(name)
}
