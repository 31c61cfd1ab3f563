package vista

// GestureEvent carries the payload for viewport gesture notifications.
// Center is valid only when HasCenter is true (zoomed events).
type GestureEvent struct {
	Type      GestureEventType
	Viewport  *Viewport
	Source    string // SourcePinch, SourceWheel, or SourceSnap
	Center    Point
	HasCenter bool
}

// EventStore is the interface for optional ECS integration.
// When set on a Viewport, gesture events are forwarded to the ECS.
type EventStore interface {
	EmitEvent(event GestureEvent)
}

// --- Handler registry ---

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

type handlerRegistry struct {
	pinchStart []gestureHandler
	zoomed     []gestureHandler
	moved      []gestureHandler
	pinchEnd   []gestureHandler
	nextID     uint32
}

// CallbackHandle allows removing a registered viewport-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event GestureEventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPinchStart:
		h.reg.pinchStart = removeGestureHandler(h.reg.pinchStart, h.id)
	case EventZoomed:
		h.reg.zoomed = removeGestureHandler(h.reg.zoomed, h.id)
	case EventMoved:
		h.reg.moved = removeGestureHandler(h.reg.moved, h.id)
	case EventPinchEnd:
		h.reg.pinchEnd = removeGestureHandler(h.reg.pinchEnd, h.id)
	}
}

func removeGestureHandler(s []gestureHandler, id uint32) []gestureHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Viewport-level event registration ---

// OnPinchStart registers a callback fired when a two-finger gesture produces
// its first complete sample pair.
func (v *Viewport) OnPinchStart(fn func(GestureEvent)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.pinchStart = append(v.handlers.pinchStart, gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventPinchStart}
}

// OnZoomed registers a callback fired after each scale mutation.
func (v *Viewport) OnZoomed(fn func(GestureEvent)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.zoomed = append(v.handlers.zoomed, gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventZoomed}
}

// OnMoved registers a callback fired after each position mutation.
func (v *Viewport) OnMoved(fn func(GestureEvent)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.moved = append(v.handlers.moved, gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventMoved}
}

// OnPinchEnd registers a callback fired when a pinch session ends.
func (v *Viewport) OnPinchEnd(fn func(GestureEvent)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.pinchEnd = append(v.handlers.pinchEnd, gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventPinchEnd}
}

// SetEventStore sets the optional ECS bridge.
func (v *Viewport) SetEventStore(store EventStore) {
	v.store = store
}

// emit dispatches an event to registered handlers, then to the ECS bridge.
func (v *Viewport) emit(e GestureEvent) {
	var handlers []gestureHandler
	switch e.Type {
	case EventPinchStart:
		handlers = v.handlers.pinchStart
	case EventZoomed:
		handlers = v.handlers.zoomed
	case EventMoved:
		handlers = v.handlers.moved
	case EventPinchEnd:
		handlers = v.handlers.pinchEnd
	}
	for _, h := range handlers {
		h.fn(e)
	}
	if v.store != nil {
		v.store.EmitEvent(e)
	}
}
