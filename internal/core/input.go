package core

// Key identifies a physical key. Values follow DOM KeyboardEvent.code names
// so bindings read the same in every front end.
type Key string

const (
	KeyUp    Key = "ArrowUp"
	KeyDown  Key = "ArrowDown"
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
	KeyW     Key = "KeyW"
	KeyA     Key = "KeyA"
	KeyS     Key = "KeyS"
	KeyD     Key = "KeyD"
	KeySpace Key = "Space"
	KeyX     Key = "KeyX"
	KeyP     Key = "KeyP"
	KeyR     Key = "KeyR"
)

// Input is the held-key snapshot shared by the session. Games only read it;
// the session and the platform front ends mutate it.
//
// Besides the held set it records press edges: a key pressed since the last
// EndFrame. Continuous movers poll Held, discrete grid actions use Pressed.
type Input struct {
	held    map[Key]bool
	pressed map[Key]bool
}

// NewInput creates an empty snapshot.
func NewInput() *Input {
	return &Input{
		held:    make(map[Key]bool),
		pressed: make(map[Key]bool),
	}
}

// Press marks k as held and records a press edge. Key repeat events are
// accepted as fresh edges.
func (in *Input) Press(k Key) {
	in.held[k] = true
	in.pressed[k] = true
}

// Release marks k as no longer held.
func (in *Input) Release(k Key) {
	delete(in.held, k)
}

// Held reports whether any of the keys is currently down.
func (in *Input) Held(keys ...Key) bool {
	for _, k := range keys {
		if in.held[k] {
			return true
		}
	}
	return false
}

// Pressed reports whether any of the keys went down since the last EndFrame.
func (in *Input) Pressed(keys ...Key) bool {
	for _, k := range keys {
		if in.pressed[k] {
			return true
		}
	}
	return false
}

// EndFrame drops the press edges collected during the frame.
func (in *Input) EndFrame() {
	clear(in.pressed)
}

// Clear releases everything.
func (in *Input) Clear() {
	clear(in.held)
	clear(in.pressed)
}

// Up reports whether up (arrow or W) is held.
func (in *Input) Up() bool { return in.Held(KeyUp, KeyW) }

// Down reports whether down (arrow or S) is held.
func (in *Input) Down() bool { return in.Held(KeyDown, KeyS) }

// Left reports whether left (arrow or A) is held.
func (in *Input) Left() bool { return in.Held(KeyLeft, KeyA) }

// Right reports whether right (arrow or D) is held.
func (in *Input) Right() bool { return in.Held(KeyRight, KeyD) }

// Axis returns the held horizontal and vertical direction, each in -1..1.
func (in *Input) Axis() (dx, dy int) {
	if in.Left() {
		dx--
	}
	if in.Right() {
		dx++
	}
	if in.Up() {
		dy--
	}
	if in.Down() {
		dy++
	}
	return dx, dy
}

// PressedAxis is Axis for press edges.
func (in *Input) PressedAxis() (dx, dy int) {
	if in.Pressed(KeyLeft, KeyA) {
		dx--
	}
	if in.Pressed(KeyRight, KeyD) {
		dx++
	}
	if in.Pressed(KeyUp, KeyW) {
		dy--
	}
	if in.Pressed(KeyDown, KeyS) {
		dy++
	}
	return dx, dy
}
