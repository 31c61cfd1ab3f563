package vista

// Point is a 2D position. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Axis restricts which scale axes a zoom gesture updates.
type Axis uint8

const (
	AxisAll Axis = iota // zoom both axes (default)
	AxisX               // zoom the x axis only
	AxisY               // zoom the y axis only
)

// GestureEventType identifies a kind of gesture event.
type GestureEventType uint8

const (
	EventPinchStart GestureEventType = iota // fires when a second finger produces its first sample
	EventZoomed                             // fires after each scale mutation
	EventMoved                              // fires after each position mutation
	EventPinchEnd                           // fires when fewer than two fingers remain
)

// Event source tags carried in GestureEvent.Source.
const (
	SourcePinch = "pinch"
	SourceWheel = "wheel"
	SourceSnap  = "snap"
)

// minPinchDistance is substituted for a zero finger separation so the
// incremental distance ratio never divides by zero.
const minPinchDistance = 1e-10
