// Package geometry builds and memoizes the renderable primitives of the
// viewer: materials keyed by color, and multi-resolution sphere and
// cylinder meshes keyed by shape, size and color.
package geometry

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Quantize packs the color into 32 bits, 8 per channel. Colors that
// quantize identically are visually indistinguishable and share cached
// materials and meshes.
func (c Color) Quantize() uint32 {
	return uint32(channel(c.R))<<24 |
		uint32(channel(c.G))<<16 |
		uint32(channel(c.B))<<8 |
		uint32(channel(c.A))
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
