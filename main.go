package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ktarrant/spriteforge/config"
	"github.com/ktarrant/spriteforge/server"
)

func main() {
	seed := time.Now().UnixNano()
	cfg := config.LoadSkeletonConfigOrDefault(config.DefaultSkeletonConfigPath)

	// Check for command-line flags
	if len(os.Args) > 1 {
		if os.Args[1] == "--serve" {
			// Run the websocket preview server instead of the window
			addr := ":8080"
			if len(os.Args) > 2 {
				addr = os.Args[2]
			}
			preview := server.NewPreviewServer(config.MapWidth, config.MapHeight, cfg, seed)
			log.Printf("Serving map previews on %s/stream", addr)
			if err := http.ListenAndServe(addr, preview.Handler()); err != nil {
				log.Fatal(err)
			}
			return
		} else if os.Args[1] == "--minimap" {
			// Run the viewer in minimap-only mode
			viewer := NewMapViewer(config.MapWidth, config.MapHeight, seed, cfg)
			viewer.showMinimap = true
			ebiten.SetWindowSize(config.GetWindowSize())
			ebiten.SetWindowTitle("Spriteforge - Minimap")
			if err := ebiten.RunGame(viewer); err != nil {
				log.Fatal(err)
			}
			return
		}
	}

	// Run the normal map viewer
	viewer := NewMapViewer(config.MapWidth, config.MapHeight, seed, cfg)
	ebiten.SetWindowSize(config.GetWindowSize())
	ebiten.SetWindowTitle("Spriteforge Map Viewer")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
