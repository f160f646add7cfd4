package generation

import (
	"math/rand"
	"testing"

	"github.com/ktarrant/spriteforge/config"
)

func TestPlaceAreasStayInBounds(t *testing.T) {
	anchors := config.DefaultSkeletonConfig().Areas
	areas := placeAreas(64, 64, rand.New(rand.NewSource(3)), anchors)

	if len(areas) == 0 {
		t.Fatal("Expected at least one area on a 64x64 grid")
	}
	for _, area := range areas {
		if area.CenterX-area.Radius < 0 || area.CenterY-area.Radius < 0 ||
			area.CenterX+area.Radius >= 64 || area.CenterY+area.Radius >= 64 {
			t.Errorf("Area at (%d,%d) radius %d exceeds the grid",
				area.CenterX, area.CenterY, area.Radius)
		}
	}
}

func TestPlaceAreasTinyGrid(t *testing.T) {
	anchors := config.DefaultSkeletonConfig().Areas
	areas := placeAreas(4, 4, rand.New(rand.NewSource(3)), anchors)
	if len(areas) != 0 {
		t.Errorf("Expected no areas on a 4x4 grid, got %d", len(areas))
	}
}

func TestPlaceAreasSkipsImpossibleAnchors(t *testing.T) {
	// More anchors than a small grid can hold; extras are dropped silently
	anchors := make([]config.AreaConfig, 24)
	for i := range anchors {
		anchors[i] = config.AreaConfig{X: 0.5, Y: 0.5}
	}
	areas := placeAreas(16, 16, rand.New(rand.NewSource(9)), anchors)
	if len(areas) >= len(anchors) {
		t.Errorf("Expected some anchors to be skipped, placed %d of %d", len(areas), len(anchors))
	}
}

func TestBuildSearchOffsetsSortedByManhattanDistance(t *testing.T) {
	offsets := buildSearchOffsets(4)
	expected := (2*4 + 1) * (2*4 + 1)
	if len(offsets) != expected {
		t.Fatalf("Expected %d offsets, got %d", expected, len(offsets))
	}
	if offsets[0] != (point{0, 0}) {
		t.Errorf("Expected the zero offset first, got %v", offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		prev := absInt(offsets[i-1].x) + absInt(offsets[i-1].y)
		curr := absInt(offsets[i].x) + absInt(offsets[i].y)
		if curr < prev {
			t.Fatalf("Offsets not sorted at %d: %v after %v", i, offsets[i], offsets[i-1])
		}
	}
}

func TestCircleFitsRejectsOccupiedAndOutOfBounds(t *testing.T) {
	grid := newOccupancyGrid(20, 20)
	if !grid.circleFits(10, 10, 4) {
		t.Error("Expected circle to fit on an empty grid")
	}
	if grid.circleFits(1, 10, 4) {
		t.Error("Expected circle crossing the border to be rejected")
	}

	grid.markCircle(10, 10, 4)
	if grid.circleFits(10, 10, 2) {
		t.Error("Expected circle over occupied cells to be rejected")
	}
	if !grid.circleFits(3, 3, 2) {
		t.Error("Expected circle clear of occupied cells to fit")
	}
}
