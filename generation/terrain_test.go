package generation

import (
	"reflect"
	"testing"

	"github.com/ktarrant/spriteforge/components"
)

func TestTerrainGeneratorDeterminism(t *testing.T) {
	a := NewTerrainGenerator(21).Generate(64, 64)
	b := NewTerrainGenerator(21).Generate(64, 64)
	if !reflect.DeepEqual(a.Cells, b.Cells) {
		t.Error("Terrain differs for identical seeds")
	}
}

func TestTerrainHasAllTileKinds(t *testing.T) {
	grid := NewTerrainGenerator(8).Generate(64, 64)
	for _, tile := range []int{components.TileGrass, components.TileDirt, components.TileWater} {
		if grid.Count(tile) == 0 {
			t.Errorf("Expected tile kind %d to appear", tile)
		}
	}
}

func TestSmoothPreservesCellCount(t *testing.T) {
	grid := NewTerrainGenerator(8).Generate(48, 48)
	before := len(grid.Cells)
	Smooth(grid, 3)
	if len(grid.Cells) != before {
		t.Errorf("Smoothing changed the cell count: %d -> %d", before, len(grid.Cells))
	}
	for _, cell := range grid.Cells {
		if cell != components.TileGrass && cell != components.TileDirt && cell != components.TileWater {
			t.Fatalf("Smoothing produced an unknown tile: %d", cell)
		}
	}
}

func TestReduceWaterIslandsRemovesLonelyPonds(t *testing.T) {
	grid := components.NewTileGrid(9, 9)
	grid.Fill(components.TileDirt)
	// A single isolated water cell and a solid 3x3 pond
	grid.SetTile(1, 1, components.TileWater)
	for y := 5; y <= 7; y++ {
		for x := 5; x <= 7; x++ {
			grid.SetTile(x, y, components.TileWater)
		}
	}

	ReduceWaterIslands(grid, 1)

	if grid.Tile(1, 1) != components.TileDirt {
		t.Error("Expected the isolated water cell to become dirt")
	}
	if grid.Tile(6, 6) != components.TileWater {
		t.Error("Expected the pond center to stay water")
	}
}
