package joystick

// Mode dictates how the joystick base reacts to the touch that activates it
type Mode int

// the list of valid joystick modes. the set is closed: the Controller
// switches on the mode in the activation test and in the update routine and
// nowhere else
const (
	// the base never moves from its default position. only touches that land
	// inside the base circle activate the joystick
	ModeFixed Mode = iota

	// the base teleports to the touch-down position. any touch inside the
	// joystick area activates it
	ModeDynamic

	// like ModeDynamic on activation but the base also translates during the
	// drag once the touch exceeds the clampzone, keeping the tip pinned at
	// the clampzone boundary
	ModeFollowing
)

func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeDynamic:
		return "dynamic"
	case ModeFollowing:
		return "following"
	}
	return "unknown"
}
