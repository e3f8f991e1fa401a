package config

import (
	"image/color"

	"github.com/automoto/zoomview/shared/zoom"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int // Update ticks (and zoom frames) per second
}

// ZoomConfig contains gesture zoom configuration
type ZoomConfig struct {
	Animation zoom.Config

	// Wheel notches smaller than this are ignored (trackpads report tiny deltas)
	WheelThreshold float64

	// Touch gestures
	DoubleTapFrames   int     // Max frames between taps of a double tap
	DoubleTapDistance float64 // Max pixels between taps of a double tap
	TwoFingerTapMax   int     // Max frames a two-finger tap may be held
}

// CameraConfig contains map camera configuration
type CameraConfig struct {
	MinLevel      float64 // Lowest zoom level reachable by gestures
	MaxLevel      float64 // Highest zoom level reachable by gestures
	PanSpeed      float64 // Screen pixels per frame for keyboard pan
	FlyDuration   float32 // Seconds for an animated LookAt
	DragThreshold float64 // Pixels the pointer must move before a press becomes a drag
}

// HUDConfig contains overlay configuration
type HUDConfig struct {
	Visible       bool
	Margin        float64
	TextColor     color.RGBA
	ShadowColor   color.RGBA
	ScaleBarWidth float64 // Max width in pixels of the scale bar
	ScaleBarColor color.RGBA
}

// MarkerConfig contains map marker configuration
type MarkerConfig struct {
	Radius      float64
	Color       color.RGBA
	ActiveColor color.RGBA
	LabelColor  color.RGBA
	FlyLevel    float64 // Zoom level used when flying to a marker
}

// SceneConfig selects what to load at startup
type SceneConfig struct {
	Manifest string // External manifest path; empty uses the embedded one
	Scheme   string // Scheme name; empty uses the first in the manifest
}

// DebugConfig contains debug options (defaults, can be overridden by CLI flags)
type DebugConfig struct {
	Enabled bool
}

// Global configuration instances
var (
	C      *Config
	Zoom   ZoomConfig
	Camera CameraConfig
	HUD    HUDConfig
	Marker MarkerConfig
	Scene  SceneConfig
	Debug  DebugConfig
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ShadowBlack  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	MarkerRed    = color.RGBA{R: 220, G: 50, B: 47, A: 255}
	MarkerYellow = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	MapGround    = color.RGBA{R: 232, G: 228, B: 218, A: 255}
	MapGrid      = color.RGBA{R: 200, G: 196, B: 186, A: 255}
	MapGridMajor = color.RGBA{R: 160, G: 156, B: 148, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 640,
		Title:  "zoomview",
		TPS:    60,
	}

	Zoom = ZoomConfig{
		Animation:         zoom.DefaultConfig(), // 20 frames, ~1/3 s at 60 TPS
		WheelThreshold:    0.1,
		DoubleTapFrames:   18,
		DoubleTapDistance: 24,
		TwoFingerTapMax:   15,
	}

	Camera = CameraConfig{
		MinLevel:      2,
		MaxLevel:      19,
		PanSpeed:      8,
		FlyDuration:   1.2,
		DragThreshold: 6,
	}

	HUD = HUDConfig{
		Visible:       true,
		Margin:        10,
		TextColor:     White,
		ShadowColor:   ShadowBlack,
		ScaleBarWidth: 120,
		ScaleBarColor: White,
	}

	Marker = MarkerConfig{
		Radius:      7,
		Color:       MarkerRed,
		ActiveColor: MarkerYellow,
		LabelColor:  Black,
		FlyLevel:    15,
	}

	Scene = SceneConfig{}

	Debug = DebugConfig{
		Enabled: false,
	}
}
