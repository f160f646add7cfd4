package render

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ktarrant/spriteforge/components"
	"github.com/ktarrant/spriteforge/tilemask"
)

// Layer identifies one tilesheet used while compositing the map
type Layer int

const (
	LayerGrass Layer = iota
	LayerDirt
	LayerPath
	LayerWater
	LayerTransition
	LayerPathTransition
	LayerWaterTransition
)

// Tile colors used when a layer has no tilesheet loaded
var fallbackColors = map[int]color.RGBA{
	components.TileGrass: {58, 121, 60, 255},
	components.TileDirt:  {121, 92, 52, 255},
	components.TilePath:  {176, 157, 109, 255},
	components.TileWater: {52, 88, 148, 255},
}

// MapRenderer composites a tile grid into an image using the transition
// tilesheets, falling back to solid colors for missing sheets
type MapRenderer struct {
	Tilesets map[Layer]*Tileset
	TileSize int
	rng      *rand.Rand

	fallbackTiles map[int]*ebiten.Image
}

// NewMapRenderer creates a renderer; entries in tilesets may be nil
func NewMapRenderer(tilesets map[Layer]*Tileset, tileSize int, seed int64) *MapRenderer {
	return &MapRenderer{
		Tilesets:      tilesets,
		TileSize:      tileSize,
		rng:           rand.New(rand.NewSource(seed)),
		fallbackTiles: make(map[int]*ebiten.Image),
	}
}

// Draw composites the full grid into a fresh image. Cells on the border
// between two base tiles get a transition tile chosen by the neighbor
// mask, stacked over the underlying base layer.
func (r *MapRenderer) Draw(grid *components.TileGrid) *ebiten.Image {
	target := ebiten.NewImage(maxRenderDim(grid.Width*r.TileSize), maxRenderDim(grid.Height*r.TileSize))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			r.drawCell(target, grid, x, y)
		}
	}
	return target
}

func (r *MapRenderer) drawCell(target *ebiten.Image, grid *components.TileGrid, x, y int) {
	tile := grid.Tile(x, y)
	switch tile {
	case components.TileGrass:
		mask := NeighborMask(grid, x, y, components.TileGrass)
		if mask != 0 {
			// Dirt shows through the cut-away part of the transition tile
			r.drawLayerTile(target, LayerDirt, components.TileDirt, x, y)
			r.drawTransitionTile(target, LayerTransition, mask, components.TileGrass, x, y)
		} else {
			r.drawLayerTile(target, LayerGrass, components.TileGrass, x, y)
		}
	case components.TileWater:
		mask := NeighborMask(grid, x, y, components.TileWater)
		if mask != 0 {
			r.drawLayerTile(target, LayerDirt, components.TileDirt, x, y)
			r.drawTransitionTile(target, LayerWaterTransition, mask, components.TileWater, x, y)
		} else {
			r.drawLayerTile(target, LayerWater, components.TileWater, x, y)
		}
	case components.TilePath:
		mask := NeighborMask(grid, x, y, components.TilePath)
		if mask != 0 {
			r.drawLayerTile(target, LayerDirt, components.TileDirt, x, y)
			r.drawTransitionTile(target, LayerPathTransition, mask, components.TilePath, x, y)
		} else {
			r.drawLayerTile(target, LayerPath, components.TilePath, x, y)
		}
	default:
		r.drawLayerTile(target, LayerDirt, components.TileDirt, x, y)
	}
}

func (r *MapRenderer) drawLayerTile(target *ebiten.Image, layer Layer, tile, x, y int) {
	tileset := r.Tilesets[layer]
	if tileset == nil {
		r.drawFallback(target, tile, x, y)
		return
	}
	tileset.DrawTile(target, r.rng.Intn(tileset.TileCount()), x, y)
}

func (r *MapRenderer) drawTransitionTile(target *ebiten.Image, layer Layer, mask uint8, tile, x, y int) {
	tileset := r.Tilesets[layer]
	if tileset == nil {
		r.drawFallback(target, tile, x, y)
		return
	}
	index, ok := tilemask.MaskIndex(mask)
	if !ok || index >= tileset.TileCount() {
		index = r.rng.Intn(tileset.TileCount())
	}
	tileset.DrawTile(target, index, x, y)
}

func (r *MapRenderer) drawFallback(target *ebiten.Image, tile, x, y int) {
	img, ok := r.fallbackTiles[tile]
	if !ok {
		img = ebiten.NewImage(r.TileSize, r.TileSize)
		img.Fill(fallbackColors[tile])
		r.fallbackTiles[tile] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x*r.TileSize), float64(y*r.TileSize))
	target.DrawImage(img, op)
}

// NeighborMask reports which neighbors of a cell hold a different base
// tile, as a transition mask. Edge bits follow the isometric diamond
// orientation: grid north is the diamond's south edge, so the vertical
// axis flips. Diagonal neighbors set corner bits. The result is
// normalized, so corner bits without both solid adjacent edges are
// already dropped.
func NeighborMask(grid *components.TileGrid, x, y, tile int) uint8 {
	differs := func(nx, ny int) bool {
		return grid.InBounds(nx, ny) && grid.Tile(nx, ny) != tile
	}

	var mask uint8
	if differs(x, y-1) {
		mask |= tilemask.EdgeS
	}
	if differs(x-1, y) {
		mask |= tilemask.EdgeW
	}
	if differs(x, y+1) {
		mask |= tilemask.EdgeN
	}
	if differs(x+1, y) {
		mask |= tilemask.EdgeE
	}
	if differs(x+1, y+1) {
		mask |= tilemask.CornerNE
	}
	if differs(x+1, y-1) {
		mask |= tilemask.CornerSE
	}
	if differs(x-1, y-1) {
		mask |= tilemask.CornerSW
	}
	if differs(x-1, y+1) {
		mask |= tilemask.CornerNW
	}
	return tilemask.NormalizeMask(mask)
}

func maxRenderDim(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
