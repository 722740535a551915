package engine

import (
	"sync/atomic"

	"neoncity/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Matrix composes scale, then rotation (X, Y, Z), then translation.
func (t Transform) Matrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rotX := rl.MatrixRotateX(t.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z * rl.Deg2rad)
	rot := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

type GameObject struct {
	UID        uint64
	Name       string
	Kind       NodeKind
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

// NewNode creates a tagged node at a local position.
func NewNode(name string, kind NodeKind, pos rl.Vector3) *GameObject {
	g := NewGameObject(name)
	g.Kind = kind
	g.Transform.Position = pos
	return g
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
	for _, child := range g.Children {
		child.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
	for _, child := range g.Children {
		child.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsLeaf reports whether the node has no children.
func (g *GameObject) IsLeaf() bool {
	return len(g.Children) == 0
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	} else if child.Scene != nil {
		child.Scene.RemoveGameObject(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
	if g.Scene != nil {
		g.Scene.register(child)
	}
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			if g.Scene != nil {
				g.Scene.unregister(child)
			}
			return
		}
	}
}

// Detach removes the node from its parent, or from the scene roots when it
// has no parent. It reports whether anything was removed.
func (g *GameObject) Detach() bool {
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
		return true
	}
	if g.Scene != nil {
		return g.Scene.RemoveGameObject(g)
	}
	return false
}

// Walk visits g and every descendant depth-first. Returning false from fn
// skips the node's children.
func (g *GameObject) Walk(fn func(*GameObject) bool) {
	if !fn(g) {
		return
	}
	for _, child := range g.Children {
		child.Walk(fn)
	}
}

// WorldMatrix is the local transform chained through every ancestor.
func (g *GameObject) WorldMatrix() rl.Matrix {
	local := g.Transform.Matrix()
	if g.Parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, g.Parent.WorldMatrix())
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	return rl.Vector3Transform(g.Transform.Position, g.Parent.WorldMatrix())
}

// LocalBounds is the union of every Bounded component on this node alone.
func (g *GameObject) LocalBounds() physics.AABB {
	box := physics.EmptyAABB()
	for _, c := range g.components {
		if b, ok := c.(Bounded); ok {
			box = box.Union(b.LocalBounds())
		}
	}
	return box
}

// WorldBounds is the world-space box of this node's own geometry.
func (g *GameObject) WorldBounds() physics.AABB {
	return g.LocalBounds().Transform(g.WorldMatrix())
}

// SubtreeBounds is the world-space box of the node and all its descendants.
func (g *GameObject) SubtreeBounds() physics.AABB {
	box := physics.EmptyAABB()
	g.Walk(func(n *GameObject) bool {
		box = box.Union(n.WorldBounds())
		return true
	})
	return box
}
