package generation

import (
	"math/rand"

	"github.com/ktarrant/spriteforge/config"
)

// connectorRole says which part of the network an area connects to
type connectorRole int

const (
	connectLeftFork connectorRole = iota
	connectMainPath
	connectRightFork
	connectForkPoint
)

// connectorRoles is the fixed positional mapping from area anchor slots
// to connector roles. Anchors beyond the table get no connector.
var connectorRoles = [5]connectorRole{
	connectLeftFork,
	connectMainPath,
	connectRightFork,
	connectMainPath,
	connectForkPoint,
}

// routeConnectors wires placed areas into the path network, one connector
// per configured role. Each role claims the unused area nearest its
// anchor point; areas are reused only when every area is already claimed.
func routeConnectors(width, height int, rng *rand.Rand, cfg *config.SkeletonConfig, areas []MapArea, trunk []point, branches [][]point, forkPoint point) []PathSegment {
	segments := make([]PathSegment, 0)
	used := make([]int, 0, len(areas))

	for slot, role := range connectorRoles {
		if slot >= len(cfg.Areas) {
			break
		}
		ax, ay := resolvePoint(cfg.Areas[slot].X, cfg.Areas[slot].Y, width, height)
		anchor := point{ax, ay}

		areaIndex, ok := findNearestAreaIndex(areas, anchor, used)
		if !ok {
			areaIndex, ok = findNearestAreaIndex(areas, anchor, nil)
		}
		if !ok {
			continue
		}
		if !containsInt(used, areaIndex) {
			used = append(used, areaIndex)
		}

		area := areas[areaIndex]
		start := point{area.CenterX, area.CenterY}
		var end point
		var found bool
		switch role {
		case connectLeftFork, connectRightFork:
			end, found = findNearestPointOnWalks(branches, start)
		case connectMainPath:
			end, found = findNearestPoint(trunk, start)
		case connectForkPoint:
			end, found = forkPoint, true
		}
		if !found {
			continue
		}

		walk := carveConnectorPoints(start, end, width, height, rng, areas, areaIndex)
		segments = append(segments, pointsToSegments(walk, ConnectorRadius)...)
	}
	return segments
}

// carveDockPaths carves a water channel from each dock area to the
// nearest map edge
func carveDockPaths(width, height int, areas []MapArea, rng *rand.Rand) []PathSegment {
	segments := make([]PathSegment, 0)
	for idx, area := range areas {
		if !area.IsDock() {
			continue
		}
		edge := nearestEdgePoint(area.CenterX, area.CenterY, width, height)
		walk := carveConnectorPoints(point{area.CenterX, area.CenterY}, edge, width, height, rng, areas, idx)
		segments = append(segments, pointsToSegments(walk, ConnectorRadius)...)
	}
	return segments
}

// carveConnectorPoints is the restricted walk used for connectors: the
// obstacle set is the other areas' circles directly, not the occupancy
// grid, and the source area is excluded so the walk may begin inside it.
func carveConnectorPoints(start, end point, width, height int, rng *rand.Rand, areas []MapArea, allowedArea int) []point {
	x, y := start.x, start.y
	lastDir := point{0, 0}
	maxSteps := maxInt(width*height*4, 1)
	steps := 0

	walk := []point{{x, y}}
	for (x != end.x || y != end.y) && steps < maxSteps {
		steps++
		dx := sign(end.x - x)
		dy := sign(end.y - y)
		moves := []point{{dx, 0}, {0, dy}}
		if rng.Float64() < 0.45 {
			moves[0], moves[1] = moves[1], moves[0]
		}
		if rng.Float64() < 0.35 {
			last := len(moves) - 1
			moves[0], moves[last] = moves[last], moves[0]
		}

		moved := false
		for _, move := range moves {
			if move.x == 0 && move.y == 0 {
				continue
			}
			nx := x + move.x
			ny := y + move.y
			if nx < 0 || ny < 0 || nx >= width || ny >= height {
				continue
			}
			if pointInOtherArea(nx, ny, areas, allowedArea) {
				continue
			}
			x, y = nx, ny
			lastDir = move
			walk = append(walk, point{x, y})
			moved = true
			break
		}

		if !moved {
			next, dir, ok := tryDetour(x, y, lastDir, width, height, func(px, py int) bool {
				return pointInOtherArea(px, py, areas, allowedArea)
			})
			if !ok {
				break
			}
			x, y = next.x, next.y
			lastDir = dir
			walk = append(walk, next)
		}
	}

	return walk
}

// nearestEdgePoint projects a cell onto the closest of the four map borders
func nearestEdgePoint(x, y, width, height int) point {
	left := x
	right := (width - 1) - x
	top := y
	bottom := (height - 1) - y
	minDist := minInt(minInt(left, right), minInt(top, bottom))
	switch minDist {
	case left:
		return point{0, y}
	case right:
		return point{width - 1, y}
	case top:
		return point{x, 0}
	default:
		return point{x, height - 1}
	}
}

// findNearestAreaIndex returns the index of the area whose center is
// closest to the target by squared distance, skipping used indices
func findNearestAreaIndex(areas []MapArea, target point, used []int) (int, bool) {
	best := -1
	bestDist := -1
	for idx, area := range areas {
		if containsInt(used, idx) {
			continue
		}
		dx := area.CenterX - target.x
		dy := area.CenterY - target.y
		dist := dx*dx + dy*dy
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = idx
		}
	}
	return best, best >= 0
}

func pointInOtherArea(x, y int, areas []MapArea, allowedArea int) bool {
	for idx, area := range areas {
		if idx == allowedArea {
			continue
		}
		dx := x - area.CenterX
		dy := y - area.CenterY
		if dx*dx+dy*dy <= area.Radius*area.Radius {
			return true
		}
	}
	return false
}

func containsInt(values []int, v int) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
