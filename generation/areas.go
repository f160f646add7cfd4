package generation

import (
	"math/rand"
	"sort"

	"github.com/ktarrant/spriteforge/config"
)

// placeAreas finds a non-overlapping circular placement near each
// configured anchor. Anchors are processed in config order; for each one
// the candidate radius descends from the type's target radius to its
// floor, and candidate centers are scanned outward from the anchor by
// Manhattan distance, so the largest feasible placement closest to the
// anchor wins. Anchors that fit nowhere are skipped.
func placeAreas(width, height int, rng *rand.Rand, anchors []config.AreaConfig) []MapArea {
	areas := make([]MapArea, 0, len(anchors))
	if width < 5 || height < 5 {
		return areas
	}

	grid := newOccupancyGrid(width, height)
	minDim := width
	if height < minDim {
		minDim = height
	}
	minorRadius := clampInt(minDim/10, 3, 8)
	minMinorRadius := 2
	majorRadius := minDim / 6
	if majorRadius < minorRadius+1 {
		majorRadius = minorRadius + 1
	}
	if limit := maxInt(minDim/3, 2); majorRadius > limit {
		majorRadius = limit
	}
	minMajorRadius := minInt(minMinorRadius+1, majorRadius)
	maxOffset := clampInt(minDim/5, 6, 16)
	offsets := buildSearchOffsets(maxOffset)

	for _, anchor := range anchors {
		targetX, targetY := resolvePoint(anchor.X, anchor.Y, width, height)
		baseRadius := minorRadius
		minRadius := minMinorRadius
		if anchor.Major {
			baseRadius = majorRadius
			minRadius = minMajorRadius
		}

		placed := false
		for radius := baseRadius; radius >= minRadius && !placed; radius-- {
			for _, offset := range offsets {
				cx := targetX + offset.x
				cy := targetY + offset.y
				if !grid.circleFits(cx, cy, radius) {
					continue
				}
				area := MapArea{CenterX: cx, CenterY: cy, Radius: radius}
				if !anchor.Major && rng.Float64() < dockChance {
					area.HasType = true
					area.Type = AreaTypeDock
				}
				grid.markCircle(cx, cy, radius)
				areas = append(areas, area)
				placed = true
				break
			}
		}
	}
	return areas
}

// buildSearchOffsets precomputes the candidate center offsets, sorted by
// ascending Manhattan distance. The sort is stable so the scan order is
// identical across runs.
func buildSearchOffsets(maxOffset int) []point {
	offsets := make([]point, 0, (2*maxOffset+1)*(2*maxOffset+1))
	for dy := -maxOffset; dy <= maxOffset; dy++ {
		for dx := -maxOffset; dx <= maxOffset; dx++ {
			offsets = append(offsets, point{dx, dy})
		}
	}
	sort.SliceStable(offsets, func(i, j int) bool {
		return absInt(offsets[i].x)+absInt(offsets[i].y) < absInt(offsets[j].x)+absInt(offsets[j].y)
	})
	return offsets
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
