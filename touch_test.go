package vista

import "testing"

func TestTracker_PressAndCount(t *testing.T) {
	tr := NewTracker()
	if tr.Count() != 0 {
		t.Errorf("Count = %d, want 0", tr.Count())
	}

	c1 := tr.Press(1)
	c2 := tr.Press(2)
	if tr.Count() != 2 {
		t.Errorf("Count = %d, want 2", tr.Count())
	}
	if c1.ID != 1 || c2.ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", c1.ID, c2.ID)
	}
	if c1.Last != nil || c2.Last != nil {
		t.Error("new contacts should have no known position")
	}
}

func TestTracker_PressIdempotent(t *testing.T) {
	tr := NewTracker()
	c := tr.Press(7)
	c.Last = &Point{X: 1, Y: 2}

	again := tr.Press(7)
	if again != c {
		t.Error("re-pressing a tracked id should return the existing contact")
	}
	if tr.Count() != 1 {
		t.Errorf("Count = %d, want 1", tr.Count())
	}
	if again.Last == nil || again.Last.X != 1 {
		t.Error("re-press must not discard the known position")
	}
}

func TestTracker_Release(t *testing.T) {
	tr := NewTracker()
	tr.Press(1)
	tr.Press(2)
	tr.Press(3)

	// Releasing the middle contact preserves the order of the rest.
	tr.Release(2)
	contacts := tr.Contacts()
	if len(contacts) != 2 || contacts[0].ID != 1 || contacts[1].ID != 3 {
		t.Errorf("contacts after release = %v, want ids [1 3]", contacts)
	}

	// Unknown ids are ignored.
	tr.Release(99)
	if tr.Count() != 2 {
		t.Errorf("Count = %d, want 2", tr.Count())
	}
}

func TestTracker_Pair(t *testing.T) {
	tr := NewTracker()

	first, second := tr.Pair()
	if first != nil || second != nil {
		t.Error("Pair with no contacts should be nil, nil")
	}

	tr.Press(1)
	first, second = tr.Pair()
	if first != nil || second != nil {
		t.Error("Pair with one contact should be nil, nil")
	}

	tr.Press(2)
	tr.Press(3)
	first, second = tr.Pair()
	if first == nil || second == nil {
		t.Fatal("Pair with three contacts should return the first two")
	}
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("Pair = %d, %d, want 1, 2 (third contact ignored)", first.ID, second.ID)
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	tr.Press(1)
	tr.Press(2)
	tr.Reset()
	if tr.Count() != 0 {
		t.Errorf("Count after Reset = %d, want 0", tr.Count())
	}
}
