package assets

import (
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Logical material names requested by the city generator.
const (
	MatGround    = "ground"
	MatRoad      = "road"
	MatSidewalk  = "sidewalk"
	MatDash      = "lane-dash"
	MatEdge      = "lane-edge"
	MatGlassBlue = "glass-blue"
	MatGlassPink = "glass-pink"
	MatRoof      = "roof-plain"
	MatCabin     = "car-cabin"
	MatHeadlight = "car-headlight"
	MatPole      = "lamp-pole"
	MatLampCyan  = "lamp-cyan"
	MatIsland    = "island"
	MatRing      = "island-ring"
	MatSign      = "sign-board"
)

// Material defines surface properties for rendering
type Material struct {
	Name      string
	Color     rl.Color
	Emissive  rl.Color
	Glow      float32 // emissive intensity
	Metallic  float32
	Roughness float32
	Opacity   float32
}

// Shade is the flat colour drawn for the material: base colour lifted by
// its emissive term, since the scene is drawn unlit.
func (m *Material) Shade() rl.Color {
	g := m.Glow
	if g > 1 {
		g = 1
	}
	lift := func(base, em uint8) uint8 {
		v := float32(base) + float32(em)*g
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	alpha := uint8(255)
	if m.Opacity > 0 && m.Opacity < 1 {
		alpha = uint8(m.Opacity * 255)
	}
	return rl.Color{
		R: lift(m.Color.R, m.Emissive.R),
		G: lift(m.Color.G, m.Emissive.G),
		B: lift(m.Color.B, m.Emissive.B),
		A: alpha,
	}
}

// Palette resolves logical material names.
type Palette struct {
	materials map[string]*Material
}

func NewPalette() *Palette {
	p := &Palette{materials: make(map[string]*Material)}
	for _, m := range defaultMaterials() {
		p.Register(m)
	}
	return p
}

func (p *Palette) Register(m *Material) {
	p.materials[m.Name] = m
}

func (p *Palette) Lookup(name string) (*Material, error) {
	if m, ok := p.materials[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("assets: unknown material %q", name)
}

// Names lists registered materials in sorted order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.materials))
	for n := range p.materials {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func defaultMaterials() []*Material {
	return []*Material{
		{Name: MatGround, Color: hex(0x050508), Roughness: 0.95},
		{Name: MatRoad, Color: hex(0x202020), Metallic: 0.08, Roughness: 0.75},
		{Name: MatSidewalk, Color: hex(0x222222), Roughness: 0.9},
		{Name: MatDash, Color: hex(0xffffff), Emissive: hex(0xffffff), Glow: 0.7, Roughness: 0.4},
		{Name: MatEdge, Color: hex(0xffffff), Emissive: hex(0xffffff), Glow: 0.25, Roughness: 0.5},
		{Name: MatGlassBlue, Color: hex(0x88ccff), Emissive: hex(0x9bdcff), Glow: 0.9, Roughness: 0.08, Opacity: 0.9},
		{Name: MatGlassPink, Color: hex(0xff99cc), Emissive: hex(0xff77c7), Glow: 0.9, Roughness: 0.08, Opacity: 0.9},
		{Name: MatRoof, Color: hex(0x020617), Metallic: 0.3, Roughness: 0.85},
		{Name: MatCabin, Color: hex(0x111827), Metallic: 0.9, Roughness: 0.25},
		{Name: MatHeadlight, Color: hex(0x000000), Emissive: hex(0xf8fafc), Glow: 2.5, Opacity: 0.9},
		{Name: MatPole, Color: hex(0x050815)},
		{Name: MatLampCyan, Color: hex(0x38bdf8), Emissive: hex(0x38bdf8), Glow: 2, Metallic: 0.8, Roughness: 0.25},
		{Name: MatIsland, Color: hex(0x111827), Emissive: hex(0x0f172a), Glow: 0.4, Metallic: 0.3, Roughness: 0.6},
		{Name: MatRing, Color: hex(0xf97316), Emissive: hex(0xffedd5), Glow: 1.7, Metallic: 0.4, Roughness: 0.25},
		{Name: MatSign, Color: hex(0x1e1b4b), Emissive: hex(0xec4899), Glow: 0.25, Metallic: 0.9, Roughness: 0.25},
	}
}

// CarPaint builds an emissive-tinted body material for a vehicle colour.
func CarPaint(c rl.Color) *Material {
	return &Material{
		Name:      fmt.Sprintf("car-paint-%02x%02x%02x", c.R, c.G, c.B),
		Color:     c,
		Emissive:  c,
		Glow:      0.15,
		Metallic:  0.6,
		Roughness: 0.35,
	}
}

func hex(v uint32) rl.Color {
	return rl.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// MeshType selects the generated primitive for a geometry.
type MeshType int

const (
	MeshCube MeshType = iota
	MeshPlane
	MeshCylinder
	MeshTorus
)

// MeshKey sizes a primitive. Size is the full extent along each local
// axis; cylinders and tori use X as the outer diameter.
type MeshKey struct {
	Type MeshType
	Size rl.Vector3
}

// Transform maps the shared unit mesh onto the key's size, centred on the
// origin. Cylinders are generated from y=0 up and are shifted down first.
func (k MeshKey) Transform() rl.Matrix {
	s := k.Size
	switch k.Type {
	case MeshPlane:
		return rl.MatrixScale(s.X, 1, s.Z)
	case MeshCylinder:
		return rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), rl.MatrixScale(s.X, s.Y, s.Z))
	}
	return rl.MatrixScale(s.X, s.Y, s.Z)
}

var manager *Manager

// Manager owns GPU models. One unit model is uploaded per primitive type on
// first use, so generation can run before a window exists.
type Manager struct {
	models map[MeshType]rl.Model
}

func Init() {
	manager = &Manager{
		models: make(map[MeshType]rl.Model),
	}
}

// Model returns the cached unit model for t, generating it on first use.
// Tori have no model and report false. Requires an active GL context.
func Model(t MeshType) (rl.Model, bool) {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[t]; exists {
		return model, true
	}

	var mesh rl.Mesh
	switch t {
	case MeshCube:
		mesh = rl.GenMeshCube(1, 1, 1)
	case MeshPlane:
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	case MeshCylinder:
		mesh = rl.GenMeshCylinder(0.5, 1, 48)
	default:
		return rl.Model{}, false
	}
	model := rl.LoadModelFromMesh(mesh)
	manager.models[t] = model
	return model, true
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	manager.models = make(map[MeshType]rl.Model)
}
