// Package core provides the fundamental types shared by the game and its front ends.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is a rectangle of screen cells, used for drawing frames and panels.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Box is an axis-aligned rectangle in world units, used for hitboxes.
// World coordinates grow right and down; Y is the top edge.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// BoxFromBottomCenter builds a box whose bottom edge is centered at (cx, bottom).
func BoxFromBottomCenter(cx, bottom, w, h float64) Box {
	return Box{X: cx - w/2, Y: bottom - h, W: w, H: h}
}

// BoxFromCenter builds a box centered at (cx, cy).
func BoxFromCenter(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects returns true if the boxes overlap. Touching edges do not count.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Circle is a round hitbox in world units.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// IntersectsBox returns true if the circle overlaps the box.
func (c Circle) IntersectsBox(b Box) bool {
	nx := ClampF(c.X, b.X, b.Right())
	ny := ClampF(c.Y, b.Y, b.Bottom())
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy < c.R*c.R
}

// Bounds returns the smallest box containing the circle.
func (c Circle) Bounds() Box {
	return Box{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}
