package server

import (
	"testing"

	"github.com/coder/websocket"
)

func TestHubBookkeeping(t *testing.T) {
	hub := NewHub()
	if hub.Count() != 0 {
		t.Fatalf("Expected an empty hub, got %d connections", hub.Count())
	}

	a := &websocket.Conn{}
	b := &websocket.Conn{}
	hub.Add(a)
	hub.Add(b)
	if hub.Count() != 2 {
		t.Errorf("Expected 2 connections, got %d", hub.Count())
	}

	// Adding the same connection twice must not double-count it
	hub.Add(a)
	if hub.Count() != 2 {
		t.Errorf("Expected 2 connections after duplicate add, got %d", hub.Count())
	}

	hub.Remove(a)
	if hub.Count() != 1 {
		t.Errorf("Expected 1 connection after remove, got %d", hub.Count())
	}

	// Removing an absent connection is a no-op
	hub.Remove(a)
	if hub.Count() != 1 {
		t.Errorf("Expected 1 connection after repeated remove, got %d", hub.Count())
	}
}
