package pushover

// ownership records who owns the storage of a Message. Only DestroyMessage
// looks at it.
type ownership uint8

const (
	ownedByCaller ownership = iota
	ownedByLibrary
)

// Message holds the fields of a single notification. The zero value is a
// valid caller-owned message with every field absent and PriorityDefault.
type Message struct {
	destination string
	body        string
	title       string
	device      string
	priority    Priority
	owner       ownership
}

// InitMessage prepares a message for use. With a nil argument a new
// library-owned message is returned. Otherwise existing is reset to its
// baseline and returned; its storage stays with the caller.
func InitMessage(existing *Message) *Message {
	if existing == nil {
		return &Message{owner: ownedByLibrary}
	}
	*existing = Message{owner: ownedByCaller}
	return existing
}

// NewMessage is shorthand for InitMessage(nil).
func NewMessage() *Message {
	return InitMessage(nil)
}

// SetDestination sets the recipient user or group key.
func (m *Message) SetDestination(user string) error {
	return setField(&m.destination, user)
}

// SetBody sets the notification text.
func (m *Message) SetBody(text string) error {
	return setField(&m.body, text)
}

// SetTitle sets the optional subject line.
func (m *Message) SetTitle(title string) error {
	return setField(&m.title, title)
}

// SetDevice restricts delivery to a single named device.
func (m *Message) SetDevice(device string) error {
	return setField(&m.device, device)
}

// SetPriority stores p if it is sane. An invalid p leaves the stored
// priority unchanged.
func (m *Message) SetPriority(p Priority) error {
	if !IsPrioritySane(p) {
		return ErrInvalidPriority
	}
	m.priority = p
	return nil
}

func setField(dst *string, v string) error {
	if v == "" {
		return ErrEmptyField
	}
	*dst = v
	return nil
}

func (m *Message) Destination() string { return m.destination }
func (m *Message) Body() string        { return m.body }
func (m *Message) Title() string       { return m.title }
func (m *Message) Device() string      { return m.device }
func (m *Message) Priority() Priority  { return m.priority }

// Validate reports the first reason the message cannot be submitted.
func (m *Message) Validate() error {
	if m.destination == "" {
		return ErrMissingDestination
	}
	if m.body == "" {
		return ErrMissingBody
	}
	if !m.priority.IsSane() {
		return ErrInvalidPriority
	}
	return nil
}

// DestroyMessage clears every field of the message. A library-owned message
// is released as well and the handle is set to nil; a caller-owned message
// stays usable. Destroying a nil handle is a no-op.
func DestroyMessage(msg **Message) {
	if msg == nil || *msg == nil {
		return
	}
	m := *msg
	owner := m.owner
	*m = Message{owner: owner}
	if owner == ownedByLibrary {
		*msg = nil
	}
}
