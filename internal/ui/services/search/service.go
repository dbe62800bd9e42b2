package search

import (
	"log"

	"searchwidget/internal/domain"
	"searchwidget/internal/eventbus"
	"searchwidget/internal/ui/logic"
	"searchwidget/internal/ui/state"
)

// Service owns the state of one search widget and implements its transitions
type Service struct {
	params  Params
	options []domain.Option
	state   *state.WidgetState
	bus     eventbus.EventBus

	// selection watcher: generation bumps on every commit, notified trails it
	generation uint64
	notified   uint64

	unsubscribe func()
}

// NewService creates a new search service
func NewService(params Params, bus eventbus.EventBus) *Service {
	return &Service{
		params:  params,
		options: append([]domain.Option(nil), params.Options...),
		state:   state.NewWidgetState(),
		bus:     bus,
	}
}

// Mount registers the outside-interaction listener.
// inside reports whether a pointer position belongs to the widget.
// Mounting again replaces the previous listener.
func (s *Service) Mount(inside HitTest) {
	s.Unmount()
	if s.bus == nil {
		return
	}
	s.unsubscribe = s.bus.Subscribe(eventbus.EventPointer, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.PointerEvent)
		if !ok || event.Action != domain.PointerPress {
			return
		}
		if inside != nil && inside(event.X, event.Y) {
			return
		}
		s.Dismiss(domain.DismissOutside)
	})
}

// Unmount releases the outside-interaction listener. Safe to call repeatedly.
func (s *Service) Unmount() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Mounted reports whether the listener is registered
func (s *Service) Mounted() bool {
	return s.unsubscribe != nil
}

// QueryChanged filters the options for new input text and opens the list
func (s *Service) QueryChanged(rawText string) {
	s.state.IsOpen = true
	s.state.SetFiltered(logic.Filter(s.options, rawText))
	s.state.QueryText = rawText

	log.Printf("Search completed for '%s': found %d matches", rawText, len(s.state.FilteredOptions))
	s.publish(eventbus.QueryChangedEvent{
		Query:   rawText,
		Matches: len(s.state.FilteredOptions),
	})
}

// SelectOption commits an option chosen by pointer
func (s *Service) SelectOption(opt domain.Option) {
	s.commit(opt, -1)
}

// SelectIndex commits the filtered option at index
func (s *Service) SelectIndex(index int) bool {
	if index < 0 || index >= len(s.state.FilteredOptions) {
		return false
	}
	s.commit(s.state.FilteredOptions[index], index)
	return true
}

// Key applies a key press to the highlight/visibility state machine.
// Returns false when the key matched no transition.
func (s *Service) Key(code KeyCode) bool {
	n := len(s.state.FilteredOptions)
	idx := s.state.HighlightIndex

	switch {
	case code == KeyEscape:
		s.Dismiss(domain.DismissEscape)
	case code == KeyArrowDown && (idx == -1 || idx < n-1):
		if n == 0 {
			return false
		}
		s.state.HighlightIndex = logic.MoveHighlight(idx, n, logic.DirectionDown)
	case code == KeyArrowUp && idx != 0:
		if idx == -1 {
			return false
		}
		s.state.HighlightIndex = logic.MoveHighlight(idx, n, logic.DirectionUp)
	case code == KeyEnter && idx >= 0:
		return s.SelectIndex(idx)
	default:
		return false
	}
	return true
}

// Clear empties the query text. The filter is re-run on the empty query so
// the list never shows results for text that is no longer there.
func (s *Service) Clear() {
	s.state.QueryText = ""
	if s.state.Searched {
		s.state.SetFiltered(logic.Filter(s.options, ""))
	}
	s.publish(eventbus.ClearedEvent{})
}

// Focus marks the input as focused
func (s *Service) Focus() {
	s.state.IsFocused = true
}

// Blur marks the input as not focused
func (s *Service) Blur() {
	s.state.IsFocused = false
}

// Dismiss closes the list. Interaction outside the widget also drops focus.
func (s *Service) Dismiss(reason string) {
	changed := s.state.IsOpen
	s.state.IsOpen = false
	if reason == domain.DismissOutside {
		changed = changed || s.state.IsFocused
		s.state.IsFocused = false
	}
	if changed {
		s.publish(eventbus.DismissedEvent{Reason: reason})
	}
}

// Settle runs the selection watcher. When a selection was committed since the
// last call and its value is non-empty, OnChange is invoked exactly once.
func (s *Service) Settle() (string, bool) {
	if s.generation == s.notified {
		return "", false
	}
	s.notified = s.generation

	value := s.state.SelectedValue
	if value == "" {
		return "", false
	}
	if s.params.OnChange != nil {
		s.params.OnChange(value)
	}
	return value, true
}

// State returns a copy of the current widget state
func (s *Service) State() state.WidgetState {
	return s.state.Clone()
}

// Placeholder returns the text shown for an empty input
func (s *Service) Placeholder() string {
	return s.params.Placeholder
}

// Options returns the configured options in their original order
func (s *Service) Options() []domain.Option {
	return append([]domain.Option(nil), s.options...)
}

// Suggestion returns a close label when the current query matched nothing
func (s *Service) Suggestion() (domain.Option, bool) {
	if !s.state.Searched || len(s.state.FilteredOptions) > 0 {
		return domain.Option{}, false
	}
	return logic.Suggest(s.options, s.state.QueryText)
}

func (s *Service) commit(opt domain.Option, index int) {
	s.state.QueryText = opt.Label
	s.state.SelectedValue = opt.Value
	s.state.HighlightIndex = -1
	s.state.IsOpen = false
	s.generation++

	log.Printf("Option selected: %q (%s)", opt.Label, opt.Value)
	s.publish(eventbus.OptionSelectedEvent{Option: opt, Index: index})
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
