// Package server exposes generated maps to preview clients over a
// websocket stream. Clients receive the current skeleton and tile grid
// as JSON on connect and after every regeneration, and may request a
// regeneration with a new seed.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"github.com/ktarrant/spriteforge/components"
	"github.com/ktarrant/spriteforge/config"
	"github.com/ktarrant/spriteforge/generation"
)

// SegmentPayload mirrors generation.PathSegment on the wire
type SegmentPayload struct {
	StartX int `json:"start_x"`
	StartY int `json:"start_y"`
	EndX   int `json:"end_x"`
	EndY   int `json:"end_y"`
	Radius int `json:"radius"`
}

// AreaPayload mirrors generation.MapArea on the wire
type AreaPayload struct {
	CenterX int  `json:"center_x"`
	CenterY int  `json:"center_y"`
	Radius  int  `json:"radius"`
	Dock    bool `json:"dock"`
}

// MapPayload is the full preview message pushed to clients
type MapPayload struct {
	Type       string           `json:"type"`
	Seed       int64            `json:"seed"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Paths      []SegmentPayload `json:"paths"`
	Areas      []AreaPayload    `json:"areas"`
	WaterPaths []SegmentPayload `json:"water_paths"`
	Tiles      []int            `json:"tiles"`
}

// GenerateRequest is the client intent asking for a fresh map
type GenerateRequest struct {
	Type string `json:"type"`
	Seed int64  `json:"seed"`
}

// PreviewServer regenerates maps on request and pushes them to all
// connected clients
type PreviewServer struct {
	hub    *Hub
	cfg    *config.SkeletonConfig
	width  int
	height int

	mu      sync.Mutex
	seed    int64
	current MapPayload
}

// NewPreviewServer creates a server generating maps of the given size
func NewPreviewServer(width, height int, cfg *config.SkeletonConfig, seed int64) *PreviewServer {
	s := &PreviewServer{
		hub:    NewHub(),
		cfg:    cfg,
		width:  width,
		height: height,
	}
	s.regenerate(seed)
	return s
}

// Handler returns the mux serving the websocket stream
func (s *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/stream", s.handleStream)
	return mux
}

func (s *PreviewServer) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	s.hub.Add(conn)

	hello, _ := json.Marshal(s.snapshot())
	_ = conn.Write(r.Context(), websocket.MessageText, hello)

	go func(c *websocket.Conn) {
		defer s.hub.Remove(c)
		defer c.Close(websocket.StatusNormalClosure, "")
		for {
			_, data, err := c.Read(context.Background())
			if err != nil {
				return
			}
			var req GenerateRequest
			if err := json.Unmarshal(data, &req); err != nil {
				continue
			}
			if req.Type != "generate" {
				continue
			}
			s.regenerate(req.Seed)
			s.broadcast(context.Background())
		}
	}(conn)
}

// snapshot returns the current map payload
func (s *PreviewServer) snapshot() MapPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *PreviewServer) broadcast(ctx context.Context) {
	data, err := json.Marshal(s.snapshot())
	if err != nil {
		return
	}
	s.hub.Broadcast(ctx, data)
}

// regenerate rebuilds the map for the given seed and stores the payload
func (s *PreviewServer) regenerate(seed int64) {
	gen := generation.NewSkeletonGenerator(seed)
	skeleton := gen.GenerateWithConfig(s.width, s.height, s.cfg)
	grid := generation.RasterizeSkeleton(s.width, s.height, &skeleton)

	s.mu.Lock()
	s.seed = seed
	s.current = buildPayload(seed, s.width, s.height, &skeleton, grid)
	s.mu.Unlock()
	log.Printf("Generated preview map: seed=%d paths=%d areas=%d", seed, len(skeleton.Paths), len(skeleton.Areas))
}

func buildPayload(seed int64, width, height int, skeleton *generation.MapSkeleton, grid *components.TileGrid) MapPayload {
	payload := MapPayload{
		Type:       "map",
		Seed:       seed,
		Width:      width,
		Height:     height,
		Paths:      make([]SegmentPayload, 0, len(skeleton.Paths)),
		Areas:      make([]AreaPayload, 0, len(skeleton.Areas)),
		WaterPaths: make([]SegmentPayload, 0, len(skeleton.WaterPaths)),
		Tiles:      grid.Cells,
	}
	for _, segment := range skeleton.Paths {
		payload.Paths = append(payload.Paths, segmentPayload(segment))
	}
	for _, area := range skeleton.Areas {
		payload.Areas = append(payload.Areas, AreaPayload{
			CenterX: area.CenterX,
			CenterY: area.CenterY,
			Radius:  area.Radius,
			Dock:    area.IsDock(),
		})
	}
	for _, segment := range skeleton.WaterPaths {
		payload.WaterPaths = append(payload.WaterPaths, segmentPayload(segment))
	}
	return payload
}

func segmentPayload(segment generation.PathSegment) SegmentPayload {
	return SegmentPayload{
		StartX: segment.StartX,
		StartY: segment.StartY,
		EndX:   segment.EndX,
		EndY:   segment.EndY,
		Radius: segment.Radius,
	}
}
