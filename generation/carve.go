package generation

import (
	"math/rand"
)

// carvePathPoints performs a biased random walk from start to end, avoiding
// reserved cells, and returns the ordered list of visited cells. Each step
// builds a small candidate-move list: the two target-seeking axis moves,
// the caller's bias direction, and a random wiggle on any already-aligned
// axis so the walk does not stall on a straight corridor. With fixed
// probability the first and last candidate swap to add variety. When no
// candidate is free a perpendicular detour is tried; when that fails too
// the partial walk is returned. An empty result means the walk never left
// the start, which callers treat as total failure.
func carvePathPoints(startX, startY, endX, endY, width, height int, rng *rand.Rand, occupied *occupancyGrid, bias point) []point {
	x, y := startX, startY
	lastDir := point{0, 0}
	maxSteps := width * height * 4
	steps := 0

	walk := []point{{x, y}}
	for (x != endX || y != endY) && steps < maxSteps {
		steps++
		dx := sign(endX - x)
		dy := sign(endY - y)
		moves := make([]point, 0, 5)
		moves = append(moves, point{dx, 0})
		moves = append(moves, point{0, dy})
		if bias.x != 0 || bias.y != 0 {
			moves = append(moves, bias)
		}
		if dx == 0 {
			wiggleX := 1
			if rng.Float64() < 0.5 {
				wiggleX = -1
			}
			moves = append(moves, point{wiggleX, 0})
		}
		if dy == 0 {
			wiggleY := 1
			if rng.Float64() < 0.5 {
				wiggleY = -1
			}
			moves = append(moves, point{0, wiggleY})
		}
		if len(moves) > 1 && rng.Float64() < 0.45 {
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
			if occupied.occupied(nx, ny) {
				continue
			}
			x, y = nx, ny
			lastDir = move
			walk = append(walk, point{x, y})
			moved = true
			break
		}

		if !moved {
			next, dir, ok := tryDetour(x, y, lastDir, width, height, occupied.occupied)
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

// tryDetour steps perpendicular to the last move direction, both signs
// tried, looking for any free in-bounds cell. A walk that has not moved
// yet has no perpendicular, so it cannot detour.
func tryDetour(x, y int, lastDir point, width, height int, blocked func(x, y int) bool) (point, point, bool) {
	if lastDir.x == 0 && lastDir.y == 0 {
		return point{}, point{}, false
	}
	var detours [2]point
	if lastDir.x != 0 {
		detours = [2]point{{0, 1}, {0, -1}}
	} else {
		detours = [2]point{{1, 0}, {-1, 0}}
	}
	for _, move := range detours {
		nx := x + move.x
		ny := y + move.y
		if nx < 0 || ny < 0 || nx >= width || ny >= height {
			continue
		}
		if blocked(nx, ny) {
			continue
		}
		return point{nx, ny}, move, true
	}
	return point{}, point{}, false
}
