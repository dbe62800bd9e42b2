package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPointer        EventType = "Pointer"
	EventQueryChanged   EventType = "QueryChanged"
	EventOptionSelected EventType = "OptionSelected"
	EventDismissed      EventType = "Dismissed"
	EventCleared        EventType = "Cleared"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PointerEvent is emitted by the host for every pointer interaction anywhere on screen
type PointerEvent struct {
	X      int
	Y      int
	Action PointerAction
}

func (e PointerEvent) Type() EventType { return EventPointer }

// QueryChangedEvent is emitted after the query text changed and the options were filtered
type QueryChangedEvent struct {
	Query   string
	Matches int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// OptionSelectedEvent is emitted when an option is committed
type OptionSelectedEvent struct {
	Option Option
	Index  int // position in the filtered list, -1 when selected directly
}

func (e OptionSelectedEvent) Type() EventType { return EventOptionSelected }

// DismissedEvent is emitted when the result list is closed without a selection
type DismissedEvent struct {
	Reason string
}

func (e DismissedEvent) Type() EventType { return EventDismissed }

// ClearedEvent is emitted when the query text is cleared
type ClearedEvent struct{}

func (e ClearedEvent) Type() EventType { return EventCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
