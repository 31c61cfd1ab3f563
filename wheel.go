package vista

// wheelStep is the scale change applied per wheel notch at Percent = 1.
const wheelStep = 0.1

// WheelOptions configures mouse wheel zooming.
type WheelOptions struct {
	// Percent multiplies the per-notch scale step.
	Percent float64
	// Reverse flips the scroll direction.
	Reverse bool
	// Center, when set, anchors the zoom to this fixed world point instead
	// of the cursor position.
	Center *Point
}

func (o WheelOptions) withDefaults() WheelOptions {
	if o.Percent == 0 {
		o.Percent = 1
	}
	return o
}

// Wheel zooms the viewport in discrete steps anchored at the cursor,
// sharing the pinch gesture's anchor-preservation and clamping behavior.
type Wheel struct {
	viewport *Viewport
	clamp    Clamper
	options  WheelOptions
	paused   bool
}

// NewWheel creates a wheel zoom for the viewport. clamp, if non-nil, is
// invoked after every scale mutation.
func NewWheel(v *Viewport, clamp Clamper, opts WheelOptions) *Wheel {
	return &Wheel{
		viewport: v,
		clamp:    clamp,
		options:  opts.withDefaults(),
	}
}

// Pause makes subsequent Zoom calls return unhandled without side effects.
func (w *Wheel) Pause() {
	w.paused = true
}

// Resume re-enables Zoom processing.
func (w *Wheel) Resume() {
	w.paused = false
}

// Zoom applies one wheel notch at the global cursor position (gx, gy).
// Positive deltaY zooms in; Reverse flips that. Returns true when the
// viewport was mutated.
func (w *Wheel) Zoom(deltaY, gx, gy float64) bool {
	if w.paused || deltaY == 0 {
		return false
	}
	v := w.viewport

	px, py := v.GlobalToParent(gx, gy)
	anchor := Point{X: px, Y: py}

	var oldX, oldY float64
	if w.options.Center == nil {
		oldX, oldY = v.ParentToLocal(anchor.X, anchor.Y)
	}

	sign := 1.0
	if deltaY < 0 {
		sign = -1.0
	}
	if w.options.Reverse {
		sign = -sign
	}
	change := 1 + w.options.Percent*wheelStep*sign

	v.ScaleX *= change
	v.ScaleY *= change

	v.emit(GestureEvent{Type: EventZoomed, Viewport: v, Source: SourceWheel, Center: anchor, HasCenter: true})

	if w.clamp != nil {
		w.clamp.Clamp()
	}

	if w.options.Center != nil {
		v.MoveCenter(*w.options.Center)
	} else {
		newX, newY := v.LocalToParent(oldX, oldY)
		v.X += anchor.X - newX
		v.Y += anchor.Y - newY
	}
	v.emit(GestureEvent{Type: EventMoved, Viewport: v, Source: SourceWheel})
	return true
}
