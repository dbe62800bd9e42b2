package mouse

import (
	"strconv"
	"strings"
)

// Rect describes a hit-test rectangle in screen coordinates.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rectangle has non-positive dimensions.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Offset returns the rectangle moved by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Region names
const (
	RegionInput = "input"
	RegionClear = "clear"
	itemPrefix  = "item"
)

// ItemRegion returns the positional region name of list item i.
func ItemRegion(i int) string {
	return itemPrefix + strconv.Itoa(i)
}

// ItemIndex parses a region name produced by ItemRegion.
func ItemIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, itemPrefix) {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimPrefix(name, itemPrefix))
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

type region struct {
	name string
	rect Rect
}

// Regions is an ordered set of named hit-test rectangles.
// Later regions sit on top of earlier ones.
type Regions struct {
	list []region
}

// Add appends a named region; empty rectangles are ignored.
func (r *Regions) Add(name string, rect Rect) {
	if rect.Empty() {
		return
	}
	r.list = append(r.list, region{name: name, rect: rect})
}

// Reset drops all regions.
func (r *Regions) Reset() {
	r.list = r.list[:0]
}

// Hit returns the name of the topmost region containing the point.
func (r *Regions) Hit(x, y int) (string, bool) {
	for i := len(r.list) - 1; i >= 0; i-- {
		if r.list[i].rect.Contains(x, y) {
			return r.list[i].name, true
		}
	}
	return "", false
}

// Get returns the rectangle of a named region.
func (r *Regions) Get(name string) (Rect, bool) {
	for _, reg := range r.list {
		if reg.name == name {
			return reg.rect, true
		}
	}
	return Rect{}, false
}

// Offset returns a copy with every region moved by dx, dy.
func (r *Regions) Offset(dx, dy int) *Regions {
	out := &Regions{list: make([]region, 0, len(r.list))}
	for _, reg := range r.list {
		out.list = append(out.list, region{name: reg.name, rect: reg.rect.Offset(dx, dy)})
	}
	return out
}

// Len returns the number of regions.
func (r *Regions) Len() int {
	return len(r.list)
}
