package config

import (
	"encoding/json"
	"os"
)

// DefaultSkeletonConfigPath is where the viewer looks for a skeleton config file
const DefaultSkeletonConfigPath = "assets/map_skeleton.json"

// PointConfig is a map point in normalized 0..1 coordinates
type PointConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AreaConfig is an area anchor in normalized 0..1 coordinates.
// Major areas get a larger target radius. ConnectTo is reserved for
// overriding the positional connector role assignment.
type AreaConfig struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Major     bool    `json:"major,omitempty"`
	ConnectTo string  `json:"connect_to,omitempty"`
}

// SkeletonConfig describes the anchor layout for the map skeleton generator
type SkeletonConfig struct {
	Entry PointConfig   `json:"entry"`
	Fork  PointConfig   `json:"fork"`
	Exits []PointConfig `json:"exits"`
	Areas []AreaConfig  `json:"areas"`
}

// LoadSkeletonConfig reads a skeleton config from a JSON file
func LoadSkeletonConfig(path string) (*SkeletonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg SkeletonConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadSkeletonConfigOrDefault reads the config file, falling back to the
// built-in layout when the file is missing or malformed
func LoadSkeletonConfigOrDefault(path string) *SkeletonConfig {
	cfg, err := LoadSkeletonConfig(path)
	if err != nil {
		return DefaultSkeletonConfig()
	}
	return cfg
}

// DefaultSkeletonConfig returns the built-in anchor layout: entry on the
// right edge, fork in the center, exits left and bottom, four minor area
// anchors and one major
func DefaultSkeletonConfig() *SkeletonConfig {
	return &SkeletonConfig{
		Entry: PointConfig{X: 1.0, Y: 0.0},
		Fork:  PointConfig{X: 0.5, Y: 0.5},
		Exits: []PointConfig{
			{X: 0.0, Y: 0.5},
			{X: 0.5, Y: 1.0},
		},
		Areas: []AreaConfig{
			{X: 1.0 / 6.0, Y: 1.0 / 4.0},
			{X: 1.0 / 2.0, Y: 1.0 / 5.0},
			{X: 3.0 / 4.0, Y: 5.0 / 6.0},
			{X: 3.0 / 4.0, Y: 1.0 / 2.0},
			{X: 1.0 / 4.0, Y: 3.0 / 4.0, Major: true},
		},
	}
}
