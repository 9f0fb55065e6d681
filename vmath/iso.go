package vmath

import "math"

// IsoGrid describes a 2:1 isometric tile grid
// GroundOffset shifts the grid origin along world Y
type IsoGrid struct {
	TileSize     float64
	GroundOffset float64
}

// ToGrid converts world coordinates to fractional isometric grid indices
func (g IsoGrid) ToGrid(p Vec2) (gx, gy float64) {
	halfW := g.TileSize / 2
	quarterH := g.TileSize / 4
	wy := p.Y - g.GroundOffset

	gx = (p.X/halfW + wy/quarterH) / 2
	gy = (wy/quarterH - p.X/halfW) / 2
	return gx, gy
}

// ToWorld converts integer grid indices to the world position of that tile's center
func (g IsoGrid) ToWorld(gx, gy int) Vec2 {
	halfW := g.TileSize / 2
	quarterH := g.TileSize / 4
	return Vec2{
		X: float64(gx-gy) * halfW,
		Y: float64(gx+gy)*quarterH + g.GroundOffset,
	}
}

// Cell returns the nearest integer tile indices for a world position
func (g IsoGrid) Cell(p Vec2) (int, int) {
	gx, gy := g.ToGrid(p)
	return int(math.Round(gx)), int(math.Round(gy))
}

// Snap quantizes a world position to its tile center
func (g IsoGrid) Snap(p Vec2) Vec2 {
	return g.ToWorld(g.Cell(p))
}
