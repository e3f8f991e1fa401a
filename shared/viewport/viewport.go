// Package viewport holds the camera math of the map view: a world-space
// center, a scale, and the screen the world is projected onto.
package viewport

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Contains(p math.Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Viewport maps world pixels to screen pixels. Zoom is screen pixels per
// world pixel.
type Viewport struct {
	Center  math.Vec2
	Zoom    float64
	MinZoom float64
	MaxZoom float64
	Screen  math.Vec2
	// World bounds the center when non-empty.
	World Rect
}

func New(screenW, screenH float64) Viewport {
	return Viewport{
		Zoom:    1,
		MinZoom: 1.0 / 64,
		MaxZoom: 64,
		Screen:  math.Vec2{X: screenW, Y: screenH},
	}
}

func (v *Viewport) SetScreen(w, h float64) {
	v.Screen = math.Vec2{X: w, Y: h}
	v.ClampToWorld()
}

func (v *Viewport) scale() float64 {
	if v.Zoom <= 0 || stdmath.IsNaN(v.Zoom) {
		return 1
	}
	return v.Zoom
}

func (v *Viewport) WorldToScreen(p math.Vec2) math.Vec2 {
	z := v.scale()
	return math.Vec2{
		X: (p.X-v.Center.X)*z + v.Screen.X/2,
		Y: (p.Y-v.Center.Y)*z + v.Screen.Y/2,
	}
}

func (v *Viewport) ScreenToWorld(p math.Vec2) math.Vec2 {
	z := v.scale()
	return math.Vec2{
		X: (p.X-v.Screen.X/2)/z + v.Center.X,
		Y: (p.Y-v.Screen.Y/2)/z + v.Center.Y,
	}
}

// ZoomBy scales the view by factor around a screen-space origin. The world
// point under origin stays under origin unless the zoom limits or world
// bounds intervene. Non-positive factors are ignored.
func (v *Viewport) ZoomBy(factor float64, origin math.Vec2) {
	if !(factor > 0) || stdmath.IsInf(factor, 0) {
		return
	}
	anchor := v.ScreenToWorld(origin)
	v.Zoom = v.clampZoom(v.scale() * factor)
	v.Center = math.Vec2{
		X: anchor.X - (origin.X-v.Screen.X/2)/v.Zoom,
		Y: anchor.Y - (origin.Y-v.Screen.Y/2)/v.Zoom,
	}
	v.ClampToWorld()
}

// LookAt centers the view on a world point at the given zoom.
func (v *Viewport) LookAt(center math.Vec2, zoom float64) {
	v.Center = center
	if zoom > 0 {
		v.Zoom = v.clampZoom(zoom)
	}
	v.ClampToWorld()
}

// Pan moves the view by a screen-space delta. Dragging the map right moves
// the center left.
func (v *Viewport) Pan(dx, dy float64) {
	z := v.scale()
	v.Center.X -= dx / z
	v.Center.Y -= dy / z
	v.ClampToWorld()
}

// Visible returns the world rect currently on screen.
func (v *Viewport) Visible() Rect {
	z := v.scale()
	w, h := v.Screen.X/z, v.Screen.Y/z
	return Rect{X: v.Center.X - w/2, Y: v.Center.Y - h/2, W: w, H: h}
}

// ClampToWorld keeps the visible rect inside World. When the world is
// smaller than the visible rect on an axis, the world is centered on it.
func (v *Viewport) ClampToWorld() {
	if v.World.Empty() {
		return
	}
	vis := v.Visible()
	mid := v.World.Center()
	v.Center.X = clampAxis(v.Center.X, vis.W, v.World.X, v.World.W, mid.X)
	v.Center.Y = clampAxis(v.Center.Y, vis.H, v.World.Y, v.World.H, mid.Y)
}

func clampAxis(c, visible, lo, size, mid float64) float64 {
	if visible >= size {
		return mid
	}
	return stdmath.Max(lo+visible/2, stdmath.Min(lo+size-visible/2, c))
}

func (v *Viewport) clampZoom(z float64) float64 {
	if v.MinZoom > 0 && z < v.MinZoom {
		return v.MinZoom
	}
	if v.MaxZoom > 0 && z > v.MaxZoom {
		return v.MaxZoom
	}
	return z
}
