package geometry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = Color{R: 1, A: 1}

func TestCache_SphereIdempotence(t *testing.T) {
	c := NewCache()

	g1 := c.Sphere(0.5, red)
	g2 := c.Sphere(0.5, red)

	assert.Same(t, g1, g2, "identical key must return the same descriptor")

	g3 := c.Sphere(0.6, red)
	assert.NotSame(t, g1, g3, "different radius is a different entry")
}

func TestCache_MaterialQuantization(t *testing.T) {
	c := NewCache()

	m1 := c.Material(Color{R: 0.5, G: 0.25, B: 0.125, A: 1})
	// Differences below 1/255 quantize to the same key.
	m2 := c.Material(Color{R: 0.5001, G: 0.25, B: 0.125, A: 1})
	assert.Same(t, m1, m2)

	m3 := c.Material(Color{R: 0.6, G: 0.25, B: 0.125, A: 1})
	assert.NotSame(t, m1, m3)
}

func TestCache_GeometrySharesMaterial(t *testing.T) {
	c := NewCache()

	g := c.Sphere(0.5, red)
	m := c.Material(red)

	assert.Same(t, m, g.Material, "geometry and material caches share one descriptor per color")
	for _, level := range g.Levels {
		require.NotNil(t, level.Mesh)
	}
}

func TestCache_LODLevelOrdering(t *testing.T) {
	c := NewCache()

	for _, g := range []*Geometry{c.Sphere(1.0, red), c.Cylinder(0.2, red)} {
		assert.Greater(t, g.Levels[0].Mesh.TriangleCount(), g.Levels[1].Mesh.TriangleCount())
		assert.Greater(t, g.Levels[1].Mesh.TriangleCount(), g.Levels[2].Mesh.TriangleCount())

		assert.Greater(t, g.Levels[0].MinScreenSize, g.Levels[1].MinScreenSize)
		assert.Greater(t, g.Levels[1].MinScreenSize, g.Levels[2].MinScreenSize)
		assert.Equal(t, float32(0), g.Levels[2].MinScreenSize, "lowest level covers any screen size")
	}
}

func TestCache_CylinderUnitHeight(t *testing.T) {
	c := NewCache()

	g := c.Cylinder(0.15, red)
	for _, level := range g.Levels {
		minY, maxY := float32(0), float32(0)
		verts := level.Mesh.Vertices
		for i := 0; i+5 < len(verts); i += 6 {
			y := verts[i+1]
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
		assert.Equal(t, float32(-0.5), minY)
		assert.Equal(t, float32(0.5), maxY)
	}
}

func TestCache_Clear(t *testing.T) {
	c := NewCache()

	g1 := c.Sphere(0.5, red)
	c.Clear()

	geoms, mats := c.Len()
	assert.Zero(t, geoms)
	assert.Zero(t, mats)

	g2 := c.Sphere(0.5, red)
	assert.NotSame(t, g1, g2, "clear releases entries; next request rebuilds")
}

func TestCache_ConcurrentIdempotence(t *testing.T) {
	c := NewCache()

	const goroutines = 16
	results := make([]*Geometry, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func() {
			defer wg.Done()
			results[i] = c.Sphere(0.5, red)
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i], "concurrent requests must share one descriptor")
	}
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), Color{R: 1, G: 1, B: 1, A: 1}.Quantize())
	assert.Equal(t, uint32(0x00000000), Color{}.Quantize())
	assert.Equal(t, uint32(0xFF0000FF), Color{R: 1, A: 1}.Quantize())
	// Out-of-range components clamp.
	assert.Equal(t, uint32(0xFF0000FF), Color{R: 2, B: -1, A: 1.5}.Quantize())
}
