package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject // roots
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject adds g as a root. Its whole subtree becomes reachable by UID.
func (s *Scene) AddGameObject(g *GameObject) {
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	s.GameObjects = append(s.GameObjects, g)
	s.register(g)
}

// RemoveGameObject removes a root and its subtree. It reports whether g was a root.
func (s *Scene) RemoveGameObject(g *GameObject) bool {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			s.unregister(g)
			return true
		}
	}
	return false
}

func (s *Scene) register(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Walk(func(n *GameObject) bool {
		n.Scene = s
		s.uidMap[n.UID] = n
		return true
	})
}

func (s *Scene) unregister(g *GameObject) {
	g.Walk(func(n *GameObject) bool {
		n.Scene = nil
		delete(s.uidMap, n.UID)
		return true
	})
}

// Contains reports whether g is currently attached somewhere in the scene.
func (s *Scene) Contains(g *GameObject) bool {
	return s.uidMap[g.UID] == g
}

func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	s.Traverse(func(g *GameObject) bool {
		if found != nil {
			return false
		}
		if g.Name == name {
			found = g
			return false
		}
		return true
	})
	return found
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	s.Traverse(func(g *GameObject) bool {
		if g.HasTag(tag) {
			result = append(result, g)
		}
		return true
	})
	return result
}

// Traverse walks every node depth-first from the roots.
func (s *Scene) Traverse(fn func(*GameObject) bool) {
	for _, g := range s.GameObjects {
		g.Walk(fn)
	}
}

// Leaves returns every attached node without children.
func (s *Scene) Leaves() []*GameObject {
	var leaves []*GameObject
	s.Traverse(func(g *GameObject) bool {
		if g.IsLeaf() {
			leaves = append(leaves, g)
		}
		return true
	})
	return leaves
}

// Count returns the number of attached nodes.
func (s *Scene) Count() int {
	return len(s.uidMap)
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
