// Package vista provides a pannable, zoomable 2D viewport for [Ebitengine],
// driven by multi-touch pinch gestures and the mouse wheel.
//
// A [Viewport] holds an independent x/y scale and a parent-space position.
// The [Pinch] recognizer converts two-finger motion into a continuous
// pan+zoom transform, keeping the zoom anchored under the fingers (or a
// configured fixed point). [ClampZoom] constrains scale and position after
// every zoom step, and [Wheel] adds cursor-anchored wheel zooming.
//
// # Quick start
//
//	vp := vista.NewViewport(640, 480)
//	clamp := vista.NewClampZoom(vp, 0.5, 4)
//	tracker := vista.NewTracker()
//	pinch := vista.NewPinch(vp, tracker, clamp, vista.PinchOptions{})
//	wheel := vista.NewWheel(vp, clamp, vista.WheelOptions{})
//	vp.SetInput(vista.NewInput(vp, tracker, pinch, wheel))
//
// Call [Viewport.Update] once per frame from your game's Update, and bake
// the transform into your draw options with [Viewport.Apply]:
//
//	func (g *Game) Update() error { g.vp.Update(); return nil }
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		op := &ebiten.DrawImageOptions{}
//		g.vp.Apply(&op.GeoM)
//		screen.DrawImage(g.world, op)
//	}
//
// Gesture lifecycle and update notifications are available through
// [Viewport.OnPinchStart], [Viewport.OnZoomed], [Viewport.OnMoved], and
// [Viewport.OnPinchEnd]; the ecs subpackage bridges them into a Donburi
// world.
//
// [Ebitengine]: https://ebitengine.org
package vista
