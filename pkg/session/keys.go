package session

// KeyKind identifies an abstract key.
type KeyKind int

const (
	// KeyRune is a printable character, including space.
	KeyRune KeyKind = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyCtrlC
)

// KeyEvent is one input event. Rune is only meaningful for KeyRune.
type KeyEvent struct {
	Kind KeyKind
	Rune rune
}

// Rune returns a KeyRune event for r.
func Rune(r rune) KeyEvent {
	return KeyEvent{Kind: KeyRune, Rune: r}
}

// Key returns an event for a non-character key.
func Key(k KeyKind) KeyEvent {
	return KeyEvent{Kind: k}
}
