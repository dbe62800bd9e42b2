package domain

// Option represents a selectable entry of the dropdown
type Option struct {
	Value string `mapstructure:"value" toml:"value"`
	Label string `mapstructure:"label" toml:"label"`
}

// PointerAction describes what happened to the pointer
type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerRelease
	PointerMotion
)

// String returns the action name used in logs
func (a PointerAction) String() string {
	switch a {
	case PointerPress:
		return "press"
	case PointerRelease:
		return "release"
	case PointerMotion:
		return "motion"
	default:
		return "unknown"
	}
}

// Dismissal reasons
const (
	DismissEscape  = "escape"
	DismissOutside = "outside"
)
