package generation

import (
	"testing"
)

func TestPointsToSegmentsCompressesRuns(t *testing.T) {
	// An L-shaped walk: right 3 cells, then down 2
	walk := []point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}}
	segments := pointsToSegments(walk, 1)

	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segments))
	}
	first := segments[0]
	if first.StartX != 0 || first.StartY != 0 || first.EndX != 3 || first.EndY != 0 {
		t.Errorf("Unexpected first segment: %+v", first)
	}
	second := segments[1]
	if second.StartX != 3 || second.StartY != 0 || second.EndX != 3 || second.EndY != 2 {
		t.Errorf("Unexpected second segment: %+v", second)
	}
	for _, segment := range segments {
		if segment.Radius != 1 {
			t.Errorf("Expected radius 1, got %d", segment.Radius)
		}
	}
}

func TestPointsToSegmentsStraightRun(t *testing.T) {
	walk := []point{{2, 5}, {2, 6}, {2, 7}, {2, 8}}
	segments := pointsToSegments(walk, 0)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].StartY != 5 || segments[0].EndY != 8 {
		t.Errorf("Unexpected segment: %+v", segments[0])
	}
}

func TestPointsToSegmentsDegenerateInput(t *testing.T) {
	if segments := pointsToSegments(nil, 1); len(segments) != 0 {
		t.Errorf("Expected no segments for nil input, got %d", len(segments))
	}
	if segments := pointsToSegments([]point{{4, 4}}, 1); len(segments) != 0 {
		t.Errorf("Expected no segments for a single point, got %d", len(segments))
	}
}

func TestFindNearestPoint(t *testing.T) {
	points := []point{{0, 0}, {5, 5}, {9, 1}}
	nearest, ok := findNearestPoint(points, point{8, 0})
	if !ok {
		t.Fatal("Expected a nearest point")
	}
	if nearest != (point{9, 1}) {
		t.Errorf("Expected (9,1), got %v", nearest)
	}

	if _, ok := findNearestPoint(nil, point{0, 0}); ok {
		t.Error("Expected no nearest point for an empty walk")
	}
}

func TestFindNearestPointOnWalks(t *testing.T) {
	walks := [][]point{
		{{0, 0}, {1, 0}},
		nil,
		{{10, 10}, {10, 11}},
	}
	nearest, ok := findNearestPointOnWalks(walks, point{9, 9})
	if !ok {
		t.Fatal("Expected a nearest point")
	}
	if nearest != (point{10, 10}) {
		t.Errorf("Expected (10,10), got %v", nearest)
	}
}
