package geometry

import "sync"

// Material is a shared shading descriptor. All LOD levels of a geometry
// reference one material.
type Material struct {
	Diffuse   Color
	Specular  Color
	Shininess float32
}

// ShapeKind selects the cached primitive.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeCylinder
)

// LODLevel is one tessellation of a shape. MinScreenSize is the on-screen
// size in pixels above which the renderer should use this level; levels are
// ordered densest first.
type LODLevel struct {
	Mesh          *Mesh
	MinScreenSize float32
}

// Geometry is a multi-resolution renderable shape. Levels share Material.
type Geometry struct {
	Levels   [3]LODLevel
	Material *Material
}

// Tessellation densities and LOD switch thresholds for the three levels.
var lodLevels = [3]struct {
	segments      int
	minScreenSize float32
}{
	{segments: 24, minScreenSize: 48},
	{segments: 12, minScreenSize: 16},
	{segments: 6, minScreenSize: 0},
}

type geometryKey struct {
	kind  ShapeKind
	size  float32
	color uint32
}

// Cache memoizes materials by quantized color and geometries by
// (shape, size, quantized color). Entries are built lazily, never evicted,
// and shared read-only by every caller: the key space is a handful of
// elements times a handful of styles, bounded regardless of molecule size.
//
// The cache is safe for concurrent use, so a background pre-warm pass may
// run off the render goroutine. Same key always yields the same pointer.
type Cache struct {
	mu         sync.Mutex
	materials  map[uint32]*Material
	geometries map[geometryKey]*Geometry
}

// NewCache creates an empty cache. One cache per process is the intended
// lifecycle; construct it at startup and hand it to the rendering layer.
func NewCache() *Cache {
	return &Cache{
		materials:  make(map[uint32]*Material),
		geometries: make(map[geometryKey]*Geometry),
	}
}

// Material returns the shared material for a color, building it on first
// use.
func (c *Cache) Material(color Color) *Material {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.material(color)
}

// material must be called with the lock held.
func (c *Cache) material(color Color) *Material {
	key := color.Quantize()
	if m, ok := c.materials[key]; ok {
		return m
	}
	m := &Material{
		Diffuse:   color,
		Specular:  Color{R: 1, G: 1, B: 1, A: 1},
		Shininess: 32,
	}
	c.materials[key] = m
	return m
}

// Sphere returns the multi-resolution sphere for (radius, color).
func (c *Cache) Sphere(radius float64, color Color) *Geometry {
	return c.geometry(ShapeSphere, radius, color)
}

// Cylinder returns the multi-resolution unit-height cylinder for
// (radius, color). Per-bond length is applied by scaling at placement time.
func (c *Cache) Cylinder(radius float64, color Color) *Geometry {
	return c.geometry(ShapeCylinder, radius, color)
}

func (c *Cache) geometry(kind ShapeKind, size float64, color Color) *Geometry {
	key := geometryKey{kind: kind, size: float32(size), color: color.Quantize()}

	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.geometries[key]; ok {
		return g
	}

	g := &Geometry{Material: c.material(color)}
	for i, lod := range lodLevels {
		var mesh *Mesh
		switch kind {
		case ShapeSphere:
			mesh = sphereMesh(size, lod.segments, lod.segments/2+1)
		case ShapeCylinder:
			mesh = cylinderMesh(size, lod.segments)
		}
		g.Levels[i] = LODLevel{Mesh: mesh, MinScreenSize: lod.minScreenSize}
	}
	c.geometries[key] = g
	return g
}

// Clear empties both maps. There is no implicit eviction; this is the only
// way entries are released.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.materials = make(map[uint32]*Material)
	c.geometries = make(map[geometryKey]*Geometry)
}

// Len reports the number of cached geometries and materials.
func (c *Cache) Len() (geometries, materials int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.geometries), len(c.materials)
}
