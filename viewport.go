package vista

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// snapAnim holds active snap-to tweens for the viewport center X and Y.
type snapAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is a pannable, zoomable 2D view. Its position and scale live in
// the coordinate space of an optional parent container; without a parent,
// parent space and global (screen) space coincide.
type Viewport struct {
	// X and Y are the parent-space position of the viewport's world origin.
	X, Y float64
	// ScaleX and ScaleY are independent per-axis scale factors
	// (1.0 = no zoom, >1 = zoomed in).
	ScaleX, ScaleY float64
	// ScreenWidth and ScreenHeight are the visible screen dimensions,
	// used for centering.
	ScreenWidth, ScreenHeight float64

	parentTransform [6]float64
	hasParent       bool

	handlers handlerRegistry
	store    EventStore

	input     *Input
	snapTween *snapAnim
}

// NewViewport creates a viewport with unit scale covering a screen of the
// given dimensions.
func NewViewport(screenW, screenH float64) *Viewport {
	return &Viewport{
		ScaleX:       1.0,
		ScaleY:       1.0,
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
	}
}

// SetParentTransform sets the world transform of the viewport's parent
// container. Pointer event coordinates are converted through it.
func (v *Viewport) SetParentTransform(m [6]float64) {
	v.parentTransform = m
	v.hasParent = true
}

// ClearParentTransform detaches the viewport from a parent space; global
// coordinates are then used directly.
func (v *Viewport) ClearParentTransform() {
	v.hasParent = false
}

// SetInput attaches an input adapter to be polled from Update.
func (v *Viewport) SetInput(in *Input) {
	v.input = in
}

// localTransform returns the viewport's own affine: Translate(X, Y) * Scale.
func (v *Viewport) localTransform() [6]float64 {
	return [6]float64{v.ScaleX, 0, 0, v.ScaleY, v.X, v.Y}
}

// worldTransform composes the parent transform (if any) with the local one.
func (v *Viewport) worldTransform() [6]float64 {
	if v.hasParent {
		return multiplyAffine(v.parentTransform, v.localTransform())
	}
	return v.localTransform()
}

// GlobalToParent converts a global (screen) point into the viewport's parent
// space. Without a parent the point is returned unchanged.
func (v *Viewport) GlobalToParent(gx, gy float64) (px, py float64) {
	if !v.hasParent {
		return gx, gy
	}
	return transformPoint(invertAffine(v.parentTransform), gx, gy)
}

// ParentToLocal converts a parent-space point into viewport-local space.
func (v *Viewport) ParentToLocal(px, py float64) (lx, ly float64) {
	return transformPoint(invertAffine(v.localTransform()), px, py)
}

// LocalToParent converts a viewport-local point into parent space using the
// viewport's current transform.
func (v *Viewport) LocalToParent(lx, ly float64) (px, py float64) {
	return transformPoint(v.localTransform(), lx, ly)
}

// ToLocal converts a global (screen) point into viewport-local space.
func (v *Viewport) ToLocal(gx, gy float64) (lx, ly float64) {
	return transformPoint(invertAffine(v.worldTransform()), gx, gy)
}

// ToGlobal converts a viewport-local point into global (screen) space.
func (v *Viewport) ToGlobal(lx, ly float64) (gx, gy float64) {
	return transformPoint(v.worldTransform(), lx, ly)
}

// MoveCenter repositions the viewport so that the world point p sits at the
// visual center of the screen.
func (v *Viewport) MoveCenter(p Point) {
	v.X = v.ScreenWidth/2 - p.X*v.ScaleX
	v.Y = v.ScreenHeight/2 - p.Y*v.ScaleY
}

// Center returns the world point currently at the visual center of the screen.
func (v *Viewport) Center() Point {
	return Point{
		X: (v.ScreenWidth/2 - v.X) / v.ScaleX,
		Y: (v.ScreenHeight/2 - v.Y) / v.ScaleY,
	}
}

// SnapTo animates the viewport center to the given world position over
// duration seconds.
func (v *Viewport) SnapTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c := v.Center()
	v.snapTween = &snapAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Update polls attached input and advances the snap animation.
// Call once per frame from your game's Update.
func (v *Viewport) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	v.step(dt)
}

// step advances per-frame state by dt seconds.
func (v *Viewport) step(dt float32) {
	if v.input != nil {
		v.input.Update()
	}
	v.updateSnap(dt)
}

// updateSnap advances an active snap tween and recenters the viewport.
func (v *Viewport) updateSnap(dt float32) {
	if v.snapTween == nil {
		return
	}
	c := v.Center()
	if !v.snapTween.doneX {
		val, done := v.snapTween.tweenX.Update(dt)
		c.X = float64(val)
		v.snapTween.doneX = done
	}
	if !v.snapTween.doneY {
		val, done := v.snapTween.tweenY.Update(dt)
		c.Y = float64(val)
		v.snapTween.doneY = done
	}
	v.MoveCenter(c)
	v.emit(GestureEvent{Type: EventMoved, Viewport: v, Source: SourceSnap})
	if v.snapTween.doneX && v.snapTween.doneY {
		v.snapTween = nil
	}
}

// Apply bakes the viewport transform into an ebiten GeoM. Draw world content
// with the resulting options to render it panned and zoomed.
func (v *Viewport) Apply(g *ebiten.GeoM) {
	g.Scale(v.ScaleX, v.ScaleY)
	g.Translate(v.X, v.Y)
}
