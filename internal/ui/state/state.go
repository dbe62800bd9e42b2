package state

import (
	"searchwidget/internal/domain"
)

// WidgetState contains all the state of a single search widget instance
type WidgetState struct {
	// Visibility
	IsOpen    bool // whether the result list is shown
	IsFocused bool // whether the input has focus

	// Text and selection
	QueryText     string // current input content, also the display value after selection
	SelectedValue string // last committed option value, "" when nothing selected

	// Results
	FilteredOptions []domain.Option // recomputed on every query change
	HighlightIndex  int             // index into FilteredOptions, -1 for none
	Searched        bool            // false until the first query change
}

// NewWidgetState creates the state a freshly mounted widget starts with
func NewWidgetState() *WidgetState {
	return &WidgetState{
		FilteredOptions: make([]domain.Option, 0),
		HighlightIndex:  -1,
	}
}

// HighlightValid reports whether HighlightIndex is -1 or points into FilteredOptions
func (s *WidgetState) HighlightValid() bool {
	return s.HighlightIndex == -1 ||
		(s.HighlightIndex >= 0 && s.HighlightIndex < len(s.FilteredOptions))
}

// Highlighted returns the currently highlighted option
func (s *WidgetState) Highlighted() (domain.Option, bool) {
	if s.HighlightIndex < 0 || s.HighlightIndex >= len(s.FilteredOptions) {
		return domain.Option{}, false
	}
	return s.FilteredOptions[s.HighlightIndex], true
}

// SetFiltered replaces the filtered options and drops the highlight
func (s *WidgetState) SetFiltered(opts []domain.Option) {
	s.FilteredOptions = opts
	s.HighlightIndex = -1
	s.Searched = true
}

// Clone returns a copy that shares no slices with s
func (s *WidgetState) Clone() WidgetState {
	c := *s
	c.FilteredOptions = append(make([]domain.Option, 0, len(s.FilteredOptions)), s.FilteredOptions...)
	return c
}
