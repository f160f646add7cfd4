package components

// Base terrain tile types produced by the map generators
const (
	TileGrass = iota
	TileDirt
	TilePath
	TileWater
)

// TileGrid stores the rasterized map data as a flat row-major cell slice
type TileGrid struct {
	Width  int
	Height int
	Cells  []int
}

// NewTileGrid creates a grid of the given dimensions filled with grass
func NewTileGrid(width, height int) *TileGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &TileGrid{
		Width:  width,
		Height: height,
		Cells:  make([]int, width*height),
	}
}

// InBounds reports whether the given cell lies inside the grid
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Tile returns the tile type at the given cell, or TileGrass when out of bounds
func (g *TileGrid) Tile(x, y int) int {
	if !g.InBounds(x, y) {
		return TileGrass
	}
	return g.Cells[y*g.Width+x]
}

// SetTile sets the tile type at the given cell; out-of-bounds writes are ignored
func (g *TileGrid) SetTile(x, y, tile int) {
	if !g.InBounds(x, y) {
		return
	}
	g.Cells[y*g.Width+x] = tile
}

// Fill sets every cell to the given tile type
func (g *TileGrid) Fill(tile int) {
	for i := range g.Cells {
		g.Cells[i] = tile
	}
}

// Count returns how many cells hold the given tile type
func (g *TileGrid) Count(tile int) int {
	count := 0
	for _, cell := range g.Cells {
		if cell == tile {
			count++
		}
	}
	return count
}
