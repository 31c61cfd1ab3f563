package vista

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// maxContacts caps the number of simultaneously tracked touches.
const maxContacts = 10

// Input polls Ebitengine touch and mouse state each frame and drives the
// gesture recognizers. It owns the contact tracker: touch ids are mapped to
// stable contact slots for the lifetime of each touch.
type Input struct {
	viewport *Viewport
	tracker  *Tracker
	pinch    *Pinch
	wheel    *Wheel

	touchMap  [maxContacts]ebiten.TouchID
	touchUsed [maxContacts]bool
	touchIDs  []ebiten.TouchID
}

// NewInput creates an input adapter. pinch and wheel may be nil to disable
// the corresponding gesture.
func NewInput(v *Viewport, tracker *Tracker, pinch *Pinch, wheel *Wheel) *Input {
	return &Input{
		viewport: v,
		tracker:  tracker,
		pinch:    pinch,
		wheel:    wheel,
	}
}

// Tracker returns the contact tracker owned by this adapter.
func (in *Input) Tracker() *Tracker {
	return in.tracker
}

// Update polls input state once. Called from Viewport.Update.
func (in *Input) Update() {
	in.pollTouches()
	in.pollWheel()
}

// pollTouches synchronizes the tracker with the live touch set and forwards
// down/move/up notifications to the pinch recognizer.
func (in *Input) pollTouches() {
	ids := ebiten.AppendTouchIDs(in.touchIDs[:0])
	in.touchIDs = ids

	var active [maxContacts]bool
	for _, tid := range ids {
		slot, pressed := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		if pressed {
			in.tracker.Press(ContactID(slot))
			if in.pinch != nil {
				in.pinch.Down()
			}
		}
		tx, ty := ebiten.TouchPosition(tid)
		if in.pinch != nil {
			in.pinch.Move(PointerEvent{ID: ContactID(slot), X: float64(tx), Y: float64(ty)})
		}
	}

	// Release slots whose touch disappeared this frame.
	for i := 0; i < maxContacts; i++ {
		if in.touchUsed[i] && !active[i] {
			in.touchUsed[i] = false
			in.tracker.Release(ContactID(i))
			if in.pinch != nil {
				in.pinch.Up()
			}
		}
	}
}

// touchSlot maps an ebiten.TouchID to a contact slot, allocating one for
// new touches. pressed is true when the slot was allocated this call.
// Returns slot -1 when all slots are in use.
func (in *Input) touchSlot(tid ebiten.TouchID) (slot int, pressed bool) {
	for i := 0; i < maxContacts; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 0; i < maxContacts; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}

// pollWheel forwards mouse wheel movement to the wheel zoom at the cursor.
func (in *Input) pollWheel() {
	if in.wheel == nil {
		return
	}
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	in.wheel.Zoom(wy, float64(mx), float64(my))
}
