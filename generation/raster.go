package generation

import (
	"github.com/ktarrant/spriteforge/components"
)

// RasterizeSkeleton stamps a skeleton onto a fresh grass grid: corridor
// tiles with dirt shoulders for every path segment, filled water circles
// for dock areas, and wide water bands for the dock channels
func RasterizeSkeleton(width, height int, skeleton *MapSkeleton) *components.TileGrid {
	grid := components.NewTileGrid(width, height)
	for _, segment := range skeleton.Paths {
		rasterizeSegment(grid, segment)
	}
	for _, area := range skeleton.Areas {
		if !area.IsDock() {
			continue
		}
		fillWaterCircle(grid, area.CenterX, area.CenterY, area.Radius)
	}
	for _, segment := range skeleton.WaterPaths {
		rasterizeWaterSegment(grid, segment)
	}
	return grid
}

// RasterizePaths stamps only the path segments, leaving everything else grass
func RasterizePaths(width, height int, paths []PathSegment) *components.TileGrid {
	grid := components.NewTileGrid(width, height)
	for _, segment := range paths {
		rasterizeSegment(grid, segment)
	}
	return grid
}

func rasterizeSegment(grid *components.TileGrid, segment PathSegment) {
	dx := sign(segment.EndX - segment.StartX)
	dy := sign(segment.EndY - segment.StartY)
	steps := absInt(segment.EndX-segment.StartX) + absInt(segment.EndY-segment.StartY)
	pathWidth := 1
	if segment.Radius >= 1 {
		pathWidth = 2
	}
	for step := 0; step <= steps; step++ {
		x := segment.StartX + dx*step
		y := segment.StartY + dy*step
		if dx != 0 {
			for offset := 0; offset < pathWidth; offset++ {
				stampTile(grid, x, y+offset, components.TilePath, true)
			}
			stampTile(grid, x, y-1, components.TileDirt, false)
			stampTile(grid, x, y+pathWidth, components.TileDirt, false)
		} else {
			for offset := 0; offset < pathWidth; offset++ {
				stampTile(grid, x+offset, y, components.TilePath, true)
			}
			stampTile(grid, x-1, y, components.TileDirt, false)
			stampTile(grid, x+pathWidth, y, components.TileDirt, false)
		}
	}
}

// rasterizeWaterSegment stamps a wide water band along a dock channel.
// Path and dirt tiles win over water so corridors stay walkable.
func rasterizeWaterSegment(grid *components.TileGrid, segment PathSegment) {
	waterRadius := maxInt(segment.Radius, 2)
	dx := sign(segment.EndX - segment.StartX)
	dy := sign(segment.EndY - segment.StartY)
	steps := absInt(segment.EndX-segment.StartX) + absInt(segment.EndY-segment.StartY)
	for step := 0; step <= steps; step++ {
		x := segment.StartX + dx*step
		y := segment.StartY + dy*step
		for ny := y - waterRadius; ny <= y+waterRadius; ny++ {
			for nx := x - waterRadius; nx <= x+waterRadius; nx++ {
				if !grid.InBounds(nx, ny) {
					continue
				}
				if tile := grid.Tile(nx, ny); tile == components.TileDirt || tile == components.TilePath {
					continue
				}
				grid.SetTile(nx, ny, components.TileWater)
			}
		}
	}
}

func fillWaterCircle(grid *components.TileGrid, centerX, centerY, radius int) {
	radius = maxInt(radius, 1)
	radiusSq := radius * radius
	for y := centerY - radius; y <= centerY+radius; y++ {
		for x := centerX - radius; x <= centerX+radius; x++ {
			if !grid.InBounds(x, y) {
				continue
			}
			dx := x - centerX
			dy := y - centerY
			if dx*dx+dy*dy > radiusSq {
				continue
			}
			if tile := grid.Tile(x, y); tile == components.TileDirt || tile == components.TilePath {
				continue
			}
			grid.SetTile(x, y, components.TileWater)
		}
	}
}

func stampTile(grid *components.TileGrid, x, y, tile int, overwrite bool) {
	if !grid.InBounds(x, y) {
		return
	}
	if overwrite || grid.Tile(x, y) == components.TileGrass {
		grid.SetTile(x, y, tile)
	}
}
