package vista

import "math"

// Clamper constrains a viewport's scale and position to configured bounds.
// A gesture invokes it after every scale mutation, before computing the
// compensating translation.
type Clamper interface {
	Clamp()
}

// ClampZoom keeps a viewport's scale within [MinScale, MaxScale] and,
// when world bounds are set, keeps the visible area inside them.
type ClampZoom struct {
	Viewport *Viewport
	// MinScale and MaxScale bound both scale axes. Zero means unbounded
	// on that side.
	MinScale float64
	MaxScale float64

	// BoundsEnabled clamps the position so the visible world area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the view is clamped to when
	// BoundsEnabled is true.
	Bounds Rect
}

// NewClampZoom creates a scale clamp for the viewport. Pass 0 to leave a
// side unbounded.
func NewClampZoom(v *Viewport, minScale, maxScale float64) *ClampZoom {
	return &ClampZoom{Viewport: v, MinScale: minScale, MaxScale: maxScale}
}

// SetBounds enables world bounds clamping.
func (c *ClampZoom) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables world bounds clamping.
func (c *ClampZoom) ClearBounds() {
	c.BoundsEnabled = false
}

// Clamp restricts the viewport's scale, then its position.
func (c *ClampZoom) Clamp() {
	v := c.Viewport

	if c.MinScale > 0 {
		v.ScaleX = math.Max(v.ScaleX, c.MinScale)
		v.ScaleY = math.Max(v.ScaleY, c.MinScale)
	}
	if c.MaxScale > 0 {
		v.ScaleX = math.Min(v.ScaleX, c.MaxScale)
		v.ScaleY = math.Min(v.ScaleY, c.MaxScale)
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts the viewport position so the visible world area
// stays within Bounds. If bounds are smaller than the visible area, the
// view is centered on them.
func (c *ClampZoom) clampToBounds() {
	v := c.Viewport

	halfW := v.ScreenWidth / (2 * v.ScaleX)
	halfH := v.ScreenHeight / (2 * v.ScaleY)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	center := v.Center()
	if minX > maxX {
		center.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		center.X = math.Max(minX, math.Min(center.X, maxX))
	}
	if minY > maxY {
		center.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		center.Y = math.Max(minY, math.Min(center.Y, maxY))
	}
	v.MoveCenter(center)
}
