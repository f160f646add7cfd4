package generation

import (
	"math/rand"

	"github.com/ktarrant/spriteforge/components"
)

// TerrainGenerator handles procedural generation of base terrain
type TerrainGenerator struct {
	rng *rand.Rand
}

// NewTerrainGenerator creates a new terrain generator with the given seed
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// SetSeed allows setting a specific seed for reproducible terrain
func (g *TerrainGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate rolls a random base tile per cell: roughly 20% water,
// 40% grass and 40% dirt
func (g *TerrainGenerator) Generate(width, height int) *components.TileGrid {
	grid := components.NewTileGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			roll := g.rng.Float64()
			tile := components.TileDirt
			if roll < 0.2 {
				tile = components.TileWater
			} else if roll < 0.6 {
				tile = components.TileGrass
			}
			grid.SetTile(x, y, tile)
		}
	}
	return grid
}

// Smooth runs majority-vote passes over the 3x3 neighborhood of every
// cell, turning the random roll into contiguous patches
func Smooth(grid *components.TileGrid, passes int) {
	temp := make([]int, len(grid.Cells))
	for pass := 0; pass < passes; pass++ {
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				grassCount, dirtCount, waterCount := 0, 0, 0
				for ny := maxInt(y-1, 0); ny <= minInt(y+1, grid.Height-1); ny++ {
					for nx := maxInt(x-1, 0); nx <= minInt(x+1, grid.Width-1); nx++ {
						switch grid.Tile(nx, ny) {
						case components.TileGrass:
							grassCount++
						case components.TileDirt:
							dirtCount++
						case components.TileWater:
							waterCount++
						}
					}
				}
				winner := components.TileDirt
				if waterCount >= grassCount && waterCount >= dirtCount {
					winner = components.TileWater
				} else if grassCount >= dirtCount {
					winner = components.TileGrass
				}
				temp[y*grid.Width+x] = winner
			}
		}
		copy(grid.Cells, temp)
	}
}

// ReduceWaterIslands converts water cells with fewer than three water
// neighbors to dirt, removing single-cell ponds the tile transitions
// cannot represent
func ReduceWaterIslands(grid *components.TileGrid, passes int) {
	temp := make([]int, len(grid.Cells))
	for pass := 0; pass < passes; pass++ {
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				idx := y*grid.Width + x
				if grid.Tile(x, y) != components.TileWater {
					temp[idx] = grid.Tile(x, y)
					continue
				}
				waterNeighbors := 0
				for ny := maxInt(y-1, 0); ny <= minInt(y+1, grid.Height-1); ny++ {
					for nx := maxInt(x-1, 0); nx <= minInt(x+1, grid.Width-1); nx++ {
						if nx == x && ny == y {
							continue
						}
						if grid.Tile(nx, ny) == components.TileWater {
							waterNeighbors++
						}
					}
				}
				if waterNeighbors < 3 {
					temp[idx] = components.TileDirt
				} else {
					temp[idx] = components.TileWater
				}
			}
		}
		copy(grid.Cells, temp)
	}
}
