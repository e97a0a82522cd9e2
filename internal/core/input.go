package core

// KeyCode identifies a physical key, abstracted from the terminal backend.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeySpace
	KeyRune // Printable character, see KeyEvent.Rune
)

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Esc"
	case KeySpace:
		return "Space"
	case KeyRune:
		return "Rune"
	default:
		return "Other"
	}
}

// KeyKind distinguishes the phases of a key stroke.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// String returns a human-readable name for the kind.
func (k KeyKind) String() string {
	switch k {
	case KeyPress:
		return "Press"
	case KeyRepeat:
		return "Repeat"
	case KeyRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// KeyEvent is a raw key event as produced by an input source.
type KeyEvent struct {
	Code KeyCode
	Rune rune // Only set for KeyRune
	Kind KeyKind
}

// Released reports whether this is a key-up event.
func (e KeyEvent) Released() bool {
	return e.Kind == KeyRelease
}

// Direction maps arrow keys to a movement direction.
// The second result is false for every other key.
func (e KeyEvent) Direction() (Direction, bool) {
	switch e.Code {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	}
	return DirRight, false
}
