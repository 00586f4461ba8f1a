// Package input holds keyboard and mouse state between frames.
//
// The window layer writes into a State as events arrive; the frame loop reads
// it once per frame through Snapshot.
package input

// Key is a physical key code, named like DOM KeyboardEvent.code values.
type Key string

const (
	KeyW          Key = "KeyW"
	KeyA          Key = "KeyA"
	KeyS          Key = "KeyS"
	KeyD          Key = "KeyD"
	KeyZ          Key = "KeyZ"
	KeyQ          Key = "KeyQ"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeySpace      Key = "Space"
	KeyEscape     Key = "Escape"
	KeyC          Key = "KeyC"
	KeyR          Key = "KeyR"
	KeyF12        Key = "F12"
)

// Action is a logical control.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
)

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]Key

// DefaultBindings accepts WASD, ZQSD (AZERTY) and the arrow keys, with Space to jump.
func DefaultBindings() Bindings {
	return Bindings{
		ActionForward: {KeyW, KeyZ, KeyArrowUp},
		ActionBack:    {KeyS, KeyArrowDown},
		ActionLeft:    {KeyA, KeyQ, KeyArrowLeft},
		ActionRight:   {KeyD, KeyArrowRight},
		ActionJump:    {KeySpace},
	}
}

// EventType is a window event the frame loop reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventMouseDown
	EventEscape
	EventKeyDown // Fresh press of Key, auto-repeat excluded
	EventFocusLost
)

// Event represents a processed window event.
type Event struct {
	Type   EventType
	Width  int
	Height int
	Button uint8
	Key    Key
}

// Snapshot is the input seen by one frame.
type Snapshot struct {
	Forward, Back, Left, Right bool
	Jump                       bool

	// Mouse motion accumulated since the previous snapshot, in pixels.
	MouseDX, MouseDY float32
	// Cursor position normalised to [-1, 1], +Y up.
	MouseX, MouseY float32
	// Wheel is the scroll accumulated since the previous snapshot, positive away from the user.
	Wheel float32
	// Captured is true while the pointer is locked to the window.
	Captured bool
}

// Axes returns the horizontal movement axes, each in {-1, 0, +1}.
// x is right minus left, z is forward minus back.
func (s Snapshot) Axes() (x, z float32) {
	return axis(s.Right, s.Left), axis(s.Forward, s.Back)
}

// Moving reports whether any movement key is held with a non-zero net axis.
func (s Snapshot) Moving() bool {
	x, z := s.Axes()
	return x != 0 || z != 0
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// State is the live input state.
type State struct {
	bindings Bindings
	keys     map[Key]bool

	mouseDX, mouseDY float32
	mouseX, mouseY   float32
	wheel            float32
	captured         bool
}

// NewState creates an empty state. A nil bindings map uses DefaultBindings.
func NewState(bindings Bindings) *State {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &State{
		bindings: bindings,
		keys:     make(map[Key]bool),
	}
}

// SetKey records a key transition. Repeated sets are harmless.
func (s *State) SetKey(k Key, pressed bool) {
	s.keys[k] = pressed
}

// Pressed reports whether k is currently held.
func (s *State) Pressed(k Key) bool {
	return s.keys[k]
}

// AddMouseMotion accumulates relative mouse motion.
func (s *State) AddMouseMotion(dx, dy float32) {
	s.mouseDX += dx
	s.mouseDY += dy
}

// AddWheel accumulates scroll wheel motion.
func (s *State) AddWheel(dy float32) {
	s.wheel += dy
}

// SetMousePosition records the normalised cursor position.
func (s *State) SetMousePosition(x, y float32) {
	s.mouseX = x
	s.mouseY = y
}

// MousePosition returns the last normalised cursor position.
func (s *State) MousePosition() (x, y float32) {
	return s.mouseX, s.mouseY
}

// SetCaptured records whether the pointer is locked to the window.
func (s *State) SetCaptured(captured bool) {
	s.captured = captured
}

// Captured reports whether the pointer is locked.
func (s *State) Captured() bool {
	return s.captured
}

// ReleaseAll clears every held key, e.g. when the window loses focus.
func (s *State) ReleaseAll() {
	clear(s.keys)
}

// Snapshot resolves bindings and consumes the accumulated mouse motion.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Forward:  s.action(ActionForward),
		Back:     s.action(ActionBack),
		Left:     s.action(ActionLeft),
		Right:    s.action(ActionRight),
		Jump:     s.action(ActionJump),
		MouseDX:  s.mouseDX,
		MouseDY:  s.mouseDY,
		MouseX:   s.mouseX,
		MouseY:   s.mouseY,
		Wheel:    s.wheel,
		Captured: s.captured,
	}
	s.mouseDX, s.mouseDY, s.wheel = 0, 0, 0
	return snap
}

func (s *State) action(a Action) bool {
	for _, k := range s.bindings[a] {
		if s.keys[k] {
			return true
		}
	}
	return false
}
