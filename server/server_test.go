package server

import (
	"reflect"
	"testing"

	"github.com/ktarrant/spriteforge/config"
)

func TestPreviewServerSnapshot(t *testing.T) {
	cfg := config.DefaultSkeletonConfig()
	s := NewPreviewServer(64, 48, cfg, 42)

	payload := s.snapshot()
	if payload.Type != "map" {
		t.Errorf("Expected payload type \"map\", got %q", payload.Type)
	}
	if payload.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", payload.Seed)
	}
	if payload.Width != 64 || payload.Height != 48 {
		t.Errorf("Expected 64x48 payload, got %dx%d", payload.Width, payload.Height)
	}
	if len(payload.Tiles) != 64*48 {
		t.Errorf("Expected %d tiles, got %d", 64*48, len(payload.Tiles))
	}
	if len(payload.Paths) == 0 {
		t.Error("Expected at least one path segment in the payload")
	}
}

func TestPreviewServerRegenerateDeterministic(t *testing.T) {
	cfg := config.DefaultSkeletonConfig()
	a := NewPreviewServer(64, 64, cfg, 7)
	b := NewPreviewServer(64, 64, cfg, 7)

	if !reflect.DeepEqual(a.snapshot(), b.snapshot()) {
		t.Error("Expected identical payloads for the same seed")
	}

	a.regenerate(8)
	if reflect.DeepEqual(a.snapshot(), b.snapshot()) {
		t.Error("Expected a different payload after regenerating with a new seed")
	}
	if a.snapshot().Seed != 8 {
		t.Errorf("Expected seed 8 after regeneration, got %d", a.snapshot().Seed)
	}
}
