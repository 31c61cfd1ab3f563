package vista

// ContactID is an opaque pointer identity assigned by the input layer.
type ContactID int64

// Contact is one actively tracked touch identity. Last is the contact's
// last known position in the viewport's parent space, nil until the
// contact produces its first move sample.
type Contact struct {
	ID   ContactID
	Last *Point
}

// Tracker is the ranked list of active touch contacts, owned by the input
// layer. Gesture recognizers read it by reference; only the first two
// entries participate in a pinch.
type Tracker struct {
	contacts []*Contact
}

// NewTracker creates an empty contact tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Press registers a contact for id and returns it. Pressing an already
// tracked id is a no-op returning the existing contact.
func (t *Tracker) Press(id ContactID) *Contact {
	for _, c := range t.contacts {
		if c.ID == id {
			return c
		}
	}
	c := &Contact{ID: id}
	t.contacts = append(t.contacts, c)
	return c
}

// Release removes the contact for id, preserving the order of the rest.
// Unknown ids are ignored.
func (t *Tracker) Release(id ContactID) {
	for i, c := range t.contacts {
		if c.ID == id {
			copy(t.contacts[i:], t.contacts[i+1:])
			t.contacts[len(t.contacts)-1] = nil
			t.contacts = t.contacts[:len(t.contacts)-1]
			return
		}
	}
}

// Count returns the number of active contacts.
func (t *Tracker) Count() int {
	return len(t.contacts)
}

// Contacts returns the ordered contact list. The returned slice MUST NOT
// be mutated.
func (t *Tracker) Contacts() []*Contact {
	return t.contacts
}

// Pair returns the first two tracked contacts, or nils when fewer than two
// are active. Additional contacts are ignored by the pinch gesture.
func (t *Tracker) Pair() (first, second *Contact) {
	if len(t.contacts) < 2 {
		return nil, nil
	}
	return t.contacts[0], t.contacts[1]
}

// Reset drops all contacts.
func (t *Tracker) Reset() {
	t.contacts = t.contacts[:0]
}
