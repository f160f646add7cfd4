package generation

import (
	"testing"
)

func TestGenerateTreeDeterminism(t *testing.T) {
	settings := DefaultTreeSettings()
	a := GenerateTree(42, settings)
	b := GenerateTree(42, settings)

	if len(a.Segments) != len(b.Segments) {
		t.Fatalf("Segment counts differ: %d vs %d", len(a.Segments), len(b.Segments))
	}
	if len(a.Leaves) != len(b.Leaves) {
		t.Fatalf("Leaf counts differ: %d vs %d", len(a.Leaves), len(b.Leaves))
	}
	if a.Segments[0] != b.Segments[0] {
		t.Errorf("First segments differ: %+v vs %+v", a.Segments[0], b.Segments[0])
	}
}

func TestGenerateTreeHasSegmentsAndLeaves(t *testing.T) {
	model := GenerateTree(7, DefaultTreeSettings())
	if len(model.Segments) == 0 {
		t.Error("Expected branch segments")
	}
	if len(model.Leaves) == 0 {
		t.Error("Expected leaves")
	}
}

func TestGenerateTreeGeometryBounds(t *testing.T) {
	settings := DefaultTreeSettings()
	model := GenerateTree(3, settings)

	// Branches grow in segment-length steps toward points inside the
	// crown, so they can never escape the crown by more than one step
	maxRadial := settings.CrownRadius + 2*settings.SegmentLength
	maxHeight := settings.TrunkHeight + settings.CrownHeight + settings.SegmentLength
	for _, segment := range model.Segments {
		for _, p := range []Vec3{segment.Start, segment.End} {
			radial := p.X*p.X + p.Y*p.Y
			if radial > maxRadial*maxRadial {
				t.Fatalf("Branch point %+v outside the crown radius", p)
			}
			if p.Z < 0 || p.Z > maxHeight {
				t.Fatalf("Branch point %+v outside the height bounds", p)
			}
		}
		if segment.Radius <= 0 || segment.Radius > settings.BaseRadius {
			t.Errorf("Unexpected branch radius %f", segment.Radius)
		}
	}
}
