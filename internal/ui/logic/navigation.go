package logic

// NoHighlight marks that no list item is highlighted
const NoHighlight = -1

// Direction represents highlight movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// MoveHighlight returns the highlight index after moving one step in dir
// over a list of count items. The result always stays within
// [NoHighlight, count-1] and never drops back to NoHighlight once an item
// is highlighted.
func MoveHighlight(index, count int, dir Direction) int {
	index = ClampHighlight(index, count)

	switch dir {
	case DirectionDown:
		if count == 0 {
			return index
		}
		if index == NoHighlight {
			return 0
		}
		if index < count-1 {
			return index + 1
		}
	case DirectionUp:
		// Up from "none" has nowhere to go; up from the first item stays put
		if index > 0 {
			return index - 1
		}
	}
	return index
}

// ClampHighlight maps any index that does not point into a list of count
// items to NoHighlight
func ClampHighlight(index, count int) int {
	if index < 0 || index >= count {
		return NoHighlight
	}
	return index
}
