package geometry

import "math"

// Mesh is a triangle mesh ready for upload to the renderer. Vertices are
// interleaved position (x, y, z) and normal (nx, ny, nz).
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// sphereMesh builds a UV sphere of the given radius with the given number
// of longitude and latitude segments.
func sphereMesh(radius float64, lonSegs, latSegs int) *Mesh {
	m := &Mesh{}

	for lat := 0; lat <= latSegs; lat++ {
		theta := math.Pi * float64(lat) / float64(latSegs)
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		for lon := 0; lon <= lonSegs; lon++ {
			phi := 2 * math.Pi * float64(lon) / float64(lonSegs)
			nx := math.Cos(phi) * sinT
			ny := cosT
			nz := math.Sin(phi) * sinT
			m.Vertices = append(m.Vertices,
				float32(radius*nx), float32(radius*ny), float32(radius*nz),
				float32(nx), float32(ny), float32(nz))
		}
	}

	stride := uint32(lonSegs + 1)
	for lat := 0; lat < latSegs; lat++ {
		for lon := 0; lon < lonSegs; lon++ {
			a := uint32(lat)*stride + uint32(lon)
			b := a + stride
			m.Indices = append(m.Indices,
				a, b, a+1,
				a+1, b, b+1)
		}
	}
	return m
}

// cylinderMesh builds an open-ended cylinder of the given radius and unit
// height, centered on the origin along Y. The unit height is deliberate:
// a bond of any length reuses one cached mesh via a non-uniform scale at
// placement time.
func cylinderMesh(radius float64, radialSegs int) *Mesh {
	m := &Mesh{}

	for i := 0; i <= radialSegs; i++ {
		phi := 2 * math.Pi * float64(i) / float64(radialSegs)
		nx, nz := math.Cos(phi), math.Sin(phi)
		x, z := float32(radius*nx), float32(radius*nz)
		m.Vertices = append(m.Vertices,
			x, -0.5, z, float32(nx), 0, float32(nz),
			x, 0.5, z, float32(nx), 0, float32(nz))
	}

	for i := 0; i < radialSegs; i++ {
		a := uint32(2 * i)
		m.Indices = append(m.Indices,
			a, a+2, a+1,
			a+1, a+2, a+3)
	}
	return m
}
