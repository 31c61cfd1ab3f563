package vista

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestViewport_Defaults(t *testing.T) {
	v := NewViewport(640, 480)
	if v.ScaleX != 1 || v.ScaleY != 1 {
		t.Errorf("scale = (%v, %v), want (1, 1)", v.ScaleX, v.ScaleY)
	}
	if v.X != 0 || v.Y != 0 {
		t.Errorf("position = (%v, %v), want (0, 0)", v.X, v.Y)
	}
}

func TestViewport_LocalParentRoundtrip(t *testing.T) {
	v := NewViewport(640, 480)
	v.X = 50
	v.Y = -20
	v.ScaleX = 2
	v.ScaleY = 0.5

	px, py := v.LocalToParent(30, 40)
	if px != 110 || py != 0 {
		t.Errorf("LocalToParent = (%v, %v), want (110, 0)", px, py)
	}
	lx, ly := v.ParentToLocal(px, py)
	if math.Abs(lx-30) > 1e-9 || math.Abs(ly-40) > 1e-9 {
		t.Errorf("roundtrip = (%v, %v), want (30, 40)", lx, ly)
	}
}

func TestViewport_GlobalToParent(t *testing.T) {
	v := NewViewport(640, 480)

	// Without a parent, global coordinates pass through.
	px, py := v.GlobalToParent(123, 456)
	if px != 123 || py != 456 {
		t.Errorf("no parent: got (%v, %v), want (123, 456)", px, py)
	}

	v.SetParentTransform([6]float64{2, 0, 0, 2, 100, 0})
	px, py = v.GlobalToParent(300, 50)
	if px != 100 || py != 25 {
		t.Errorf("with parent: got (%v, %v), want (100, 25)", px, py)
	}

	v.ClearParentTransform()
	px, py = v.GlobalToParent(300, 50)
	if px != 300 || py != 50 {
		t.Errorf("after clear: got (%v, %v), want (300, 50)", px, py)
	}
}

func TestViewport_ToLocalToGlobalRoundtrip(t *testing.T) {
	v := NewViewport(640, 480)
	v.X = 10
	v.Y = 20
	v.ScaleX = 3
	v.ScaleY = 3
	v.SetParentTransform([6]float64{1, 0, 0, 1, -5, 15})

	gx, gy := v.ToGlobal(7, 9)
	lx, ly := v.ToLocal(gx, gy)
	if math.Abs(lx-7) > 1e-9 || math.Abs(ly-9) > 1e-9 {
		t.Errorf("roundtrip = (%v, %v), want (7, 9)", lx, ly)
	}
}

func TestViewport_MoveCenter(t *testing.T) {
	tests := []struct {
		name   string
		scale  float64
		center Point
	}{
		{"unit scale", 1, Point{100, 100}},
		{"zoomed in", 2, Point{300, 150}},
		{"zoomed out", 0.5, Point{-40, 900}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(640, 480)
			v.ScaleX = tt.scale
			v.ScaleY = tt.scale
			v.MoveCenter(tt.center)

			got := v.Center()
			if math.Abs(got.X-tt.center.X) > 1e-9 || math.Abs(got.Y-tt.center.Y) > 1e-9 {
				t.Errorf("Center() = %+v, want %+v", got, tt.center)
			}
			// The world center point must land at the screen center.
			gx, gy := v.ToGlobal(tt.center.X, tt.center.Y)
			if math.Abs(gx-320) > 1e-9 || math.Abs(gy-240) > 1e-9 {
				t.Errorf("center maps to (%v, %v), want (320, 240)", gx, gy)
			}
		})
	}
}

func TestViewport_SnapTo(t *testing.T) {
	v := NewViewport(640, 480)
	start := v.Center()

	var movedEvents int
	v.OnMoved(func(e GestureEvent) {
		if e.Source != SourceSnap {
			t.Errorf("Source = %q, want %q", e.Source, SourceSnap)
		}
		movedEvents++
	})

	v.SnapTo(100, 100, 1, ease.Linear)

	v.step(0.5)
	mid := v.Center()
	wantMidX := start.X + (100-start.X)/2
	wantMidY := start.Y + (100-start.Y)/2
	// gween tweens in float32; allow a loose tolerance.
	if math.Abs(mid.X-wantMidX) > 0.5 || math.Abs(mid.Y-wantMidY) > 0.5 {
		t.Errorf("halfway center = %+v, want (%v, %v)", mid, wantMidX, wantMidY)
	}

	v.step(0.5)
	end := v.Center()
	if math.Abs(end.X-100) > 0.5 || math.Abs(end.Y-100) > 0.5 {
		t.Errorf("final center = %+v, want (100, 100)", end)
	}
	if v.snapTween != nil {
		t.Error("snap tween should be released once complete")
	}
	if movedEvents != 2 {
		t.Errorf("moved events = %d, want 2", movedEvents)
	}

	// Further steps are inert.
	v.step(0.5)
	if movedEvents != 2 {
		t.Error("no moved events expected after the snap completes")
	}
}

func TestViewport_SnapToReplacesActiveSnap(t *testing.T) {
	v := NewViewport(640, 480)
	v.SnapTo(1000, 1000, 10, ease.Linear)
	v.step(0.1)

	v.SnapTo(50, 50, 0.1, ease.Linear)
	v.step(0.1)

	got := v.Center()
	if math.Abs(got.X-50) > 0.5 || math.Abs(got.Y-50) > 0.5 {
		t.Errorf("center = %+v, want (50, 50) from the replacing snap", got)
	}
}
