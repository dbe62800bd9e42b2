package search

import (
	"searchwidget/internal/domain"
)

// KeyCode identifies the keys the widget reacts to.
// Values follow the classic DOM key codes.
type KeyCode int

const (
	KeyNone      KeyCode = 0
	KeyEnter     KeyCode = 13
	KeyEscape    KeyCode = 27
	KeyArrowUp   KeyCode = 38
	KeyArrowDown KeyCode = 40
)

// KeyFromString maps a Bubble Tea key name to a KeyCode
func KeyFromString(name string) KeyCode {
	switch name {
	case "enter":
		return KeyEnter
	case "esc":
		return KeyEscape
	case "up":
		return KeyArrowUp
	case "down":
		return KeyArrowDown
	default:
		return KeyNone
	}
}

// String returns the key name used in logs
func (k KeyCode) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	default:
		return "None"
	}
}

// Params is the immutable configuration of a widget instance
type Params struct {
	Options     []domain.Option
	Placeholder string
	OnChange    func(value string)
}

// HitTest reports whether screen coordinates fall inside the widget
type HitTest func(x, y int) bool
