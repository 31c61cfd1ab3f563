package vista

import "math"

// PinchOptions configures the two-finger pinch gesture. The zero value is
// usable; Percent and Factor default to 1.
type PinchOptions struct {
	// NoDrag disables the two-finger drag so the gesture only zooms.
	NoDrag bool
	// Percent multiplies the per-frame scale delta.
	Percent float64
	// Factor multiplies the per-frame translation delta.
	Factor float64
	// Center, when set, anchors the zoom to this fixed world point instead
	// of the midpoint of the two fingers.
	Center *Point
	// Axis restricts which scale axes are updated.
	Axis Axis
}

// withDefaults fills zero-valued multipliers.
func (o PinchOptions) withDefaults() PinchOptions {
	if o.Percent == 0 {
		o.Percent = 1
	}
	if o.Factor == 0 {
		o.Factor = 1
	}
	return o
}

// PointerEvent is a single pointer-move notification in global (screen)
// coordinates.
type PointerEvent struct {
	ID   ContactID
	X, Y float64
}

// Pinch recognizes a two-finger pinch gesture and applies a continuous
// pan+zoom transform to its viewport. It reads contact identities from the
// tracker and writes their last known positions; it never owns a contact
// across sessions.
type Pinch struct {
	viewport *Viewport
	tracker  *Tracker
	clamp    Clamper
	options  PinchOptions

	paused bool

	// active: a candidate two-finger interaction has begun (Down saw ≥2
	// contacts). pinching: both contacts have produced a move sample.
	active   bool
	pinching bool
	moved    bool

	// lastCenter is the finger midpoint from the previous committed move,
	// used for the incremental drag delta. Non-nil only while pinching.
	lastCenter *Point
}

// NewPinch creates a pinch recognizer for the viewport. The tracker is the
// shared contact list owned by the input layer. clamp, if non-nil, is
// invoked after every scale mutation.
func NewPinch(v *Viewport, tracker *Tracker, clamp Clamper, opts PinchOptions) *Pinch {
	return &Pinch{
		viewport: v,
		tracker:  tracker,
		clamp:    clamp,
		options:  opts.withDefaults(),
	}
}

// Pause makes subsequent Move calls return unhandled without side effects.
func (p *Pinch) Pause() {
	p.paused = true
}

// Resume re-enables Move processing.
func (p *Pinch) Resume() {
	p.paused = false
}

// Paused reports whether the recognizer is paused.
func (p *Pinch) Paused() bool {
	return p.paused
}

// IsAxisX reports whether the x scale axis participates in the zoom.
func (p *Pinch) IsAxisX() bool {
	return p.options.Axis == AxisAll || p.options.Axis == AxisX
}

// IsAxisY reports whether the y scale axis participates in the zoom.
func (p *Pinch) IsAxisY() bool {
	return p.options.Axis == AxisAll || p.options.Axis == AxisY
}

// Down arms the recognizer when at least two contacts are active. It is a
// pure gate: pinching only begins once both contacts produce move samples.
func (p *Pinch) Down() bool {
	if p.tracker.Count() >= 2 {
		p.active = true
		return true
	}
	return false
}

// Move processes one pointer-move notification. It returns true when a
// transform commit occurred; bookkeeping-only calls (first samples, unmatched
// ids before geometry resolves, paused or inactive state) return false.
func (p *Pinch) Move(e PointerEvent) bool {
	if p.paused || !p.active {
		return false
	}

	x, y := p.viewport.GlobalToParent(e.X, e.Y)

	first, second := p.tracker.Pair()
	if first == nil || second == nil {
		return false
	}

	// Separation before this event's position is applied. Nil until both
	// contacts have reported at least once.
	var prev float64
	hasPrev := false
	if first.Last != nil && second.Last != nil {
		prev = contactDistance(first, second)
		hasPrev = true
	}

	switch e.ID {
	case first.ID:
		first.Last = &Point{X: x, Y: y}
	case second.ID:
		second.Last = &Point{X: x, Y: y}
	}

	if hasPrev {
		p.commit(first, second, prev)
		return true
	}

	// Armed -> Pinching edge: both contacts now have a sample.
	if !p.pinching && first.Last != nil && second.Last != nil {
		p.pinching = true
		p.viewport.emit(GestureEvent{Type: EventPinchStart, Viewport: p.viewport, Source: SourcePinch})
	}
	return false
}

// commit applies one zoom+pan step from the current contact geometry.
// Emission order: zoomed, clamp, then moved (0-2 times).
func (p *Pinch) commit(first, second *Contact, prev float64) {
	v := p.viewport

	center := Point{
		X: (first.Last.X + second.Last.X) / 2,
		Y: (first.Last.Y + second.Last.Y) / 2,
	}

	// Local anchor under the fingers, captured before the scale mutation so
	// the post-zoom drift can be corrected. Unused with a fixed center.
	var oldX, oldY float64
	if p.options.Center == nil {
		oldX, oldY = v.ParentToLocal(center.X, center.Y)
	}

	dist := contactDistance(first, second)
	if dist == 0 {
		dist = minPinchDistance
	}
	if prev == 0 {
		prev = minPinchDistance
	}

	// Delta proportional to the current zoom level, so pinch sensitivity is
	// scale-invariant.
	axisScale := v.ScaleY
	if p.IsAxisX() {
		axisScale = v.ScaleX
	}
	change := (1 - prev/dist) * p.options.Percent * axisScale
	if p.IsAxisX() {
		v.ScaleX += change
	}
	if p.IsAxisY() {
		v.ScaleY += change
	}

	v.emit(GestureEvent{Type: EventZoomed, Viewport: v, Source: SourcePinch, Center: center, HasCenter: true})

	// Clamp before the translation is computed: clamping may alter the
	// viewport's scale and position.
	if p.clamp != nil {
		p.clamp.Clamp()
	}

	if p.options.Center != nil {
		v.MoveCenter(*p.options.Center)
	} else {
		newX, newY := v.LocalToParent(oldX, oldY)
		v.X += (center.X - newX) * p.options.Factor
		v.Y += (center.Y - newY) * p.options.Factor
		v.emit(GestureEvent{Type: EventMoved, Viewport: v, Source: SourcePinch})
	}

	if !p.options.NoDrag && p.lastCenter != nil {
		v.X += (center.X - p.lastCenter.X) * p.options.Factor
		v.Y += (center.Y - p.lastCenter.Y) * p.options.Factor
		v.emit(GestureEvent{Type: EventMoved, Viewport: v, Source: SourcePinch})
	}

	p.lastCenter = &center
	p.moved = true
}

// Up ends the session once fewer than two contacts remain. A third finger
// lifting while two stay down is not handled and leaves state untouched.
func (p *Pinch) Up() bool {
	if !p.pinching {
		return false
	}
	if p.tracker.Count() <= 1 {
		p.active = false
		p.lastCenter = nil
		p.pinching = false
		p.moved = false
		p.viewport.emit(GestureEvent{Type: EventPinchEnd, Viewport: p.viewport, Source: SourcePinch})
		return true
	}
	return false
}

// contactDistance returns the Euclidean separation of two contacts' last
// known positions. Both must be non-nil.
func contactDistance(a, b *Contact) float64 {
	dx := b.Last.X - a.Last.X
	dy := b.Last.Y - a.Last.Y
	return math.Sqrt(dx*dx + dy*dy)
}
