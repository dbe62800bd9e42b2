package searchbox

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchwidget/internal/eventbus"
	"searchwidget/internal/ui/mouse"
	"searchwidget/internal/ui/services/search"
	"searchwidget/internal/ui/state"
	"searchwidget/internal/ui/views"
)

// SelectedMsg is sent once per committed selection
type SelectedMsg struct {
	Value string
}

// Options tunes the presentation of a search box
type Options struct {
	Width     int
	ShowIcons bool
	Suggest   bool
	Styles    *views.Styles
}

// Model is the search box component
type Model struct {
	svc      *search.Service
	input    textinput.Model
	renderer *views.SearchBoxRenderer
	keys     KeyMap

	width     int
	showIcons bool
	suggest   bool

	// top-left corner of the widget on screen
	originX int
	originY int
}

// New creates a search box for the given options and callback
func New(params search.Params, bus eventbus.EventBus, opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = views.NewStyles()
	}

	ti := textinput.New()
	ti.Prompt = "" // icons are drawn by the renderer
	ti.Placeholder = params.Placeholder

	return &Model{
		svc:       search.NewService(params, bus),
		input:     ti,
		renderer:  views.NewSearchBoxRenderer(styles),
		keys:      DefaultKeyMap(),
		width:     opts.Width,
		showIcons: opts.ShowIcons,
		suggest:   opts.Suggest,
	}
}

// Mount starts listening for interaction outside the widget
func (m *Model) Mount() {
	m.svc.Mount(m.Contains)
}

// Unmount stops listening for interaction outside the widget
func (m *Model) Unmount() {
	m.svc.Unmount()
}

// SetOrigin places the widget's top-left corner on screen
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetWidth sets the outer width of the widget
func (m *Model) SetWidth(w int) {
	m.width = w
}

// Focus gives the input keyboard focus
func (m *Model) Focus() tea.Cmd {
	m.svc.Focus()
	return m.input.Focus()
}

// Blur removes keyboard focus
func (m *Model) Blur() {
	m.svc.Blur()
	m.input.Blur()
}

// Focused reports whether the input has focus
func (m *Model) Focused() bool {
	return m.svc.State().IsFocused
}

// State returns a copy of the widget state
func (m *Model) State() state.WidgetState {
	return m.svc.State()
}

// KeyMap returns the active key bindings
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles keyboard, pointer and cursor messages
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.svc.State().IsFocused {
			return nil
		}
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	default:
		m.input, cmd = m.input.Update(msg)
	}

	m.sync()
	return tea.Batch(cmd, m.settle())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Clear):
		m.svc.Clear()
	case key.Matches(msg, m.keys.Up):
		m.svc.Key(search.KeyArrowUp)
	case key.Matches(msg, m.keys.Down):
		m.svc.Key(search.KeyArrowDown)
	case key.Matches(msg, m.keys.Select):
		m.svc.Key(search.KeyEnter)
	case key.Matches(msg, m.keys.Dismiss):
		m.svc.Key(search.KeyEscape)
	default:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != before {
			m.svc.QueryChanged(value)
		}
		return cmd
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	name, ok := m.Render().Regions.Hit(msg.X-m.originX, msg.Y-m.originY)
	if !ok {
		return
	}

	switch name {
	case mouse.RegionClear:
		m.svc.Clear()
	case mouse.RegionInput:
		m.svc.Focus()
		m.input.Focus()
	default:
		if i, ok := mouse.ItemIndex(name); ok {
			m.svc.SelectIndex(i)
		}
	}
}

// sync keeps the text input in line with the widget state
func (m *Model) sync() {
	st := m.svc.State()
	if m.input.Value() != st.QueryText {
		m.input.SetValue(st.QueryText)
		m.input.CursorEnd()
	}
	if !st.IsFocused && m.input.Focused() {
		m.input.Blur()
	}
}

func (m *Model) settle() tea.Cmd {
	value, ok := m.svc.Settle()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return SelectedMsg{Value: value}
	}
}

// Contains reports whether screen coordinates fall inside the widget
func (m *Model) Contains(x, y int) bool {
	r := m.Render()
	return mouse.Rect{X: m.originX, Y: m.originY, W: r.Width, H: r.Height}.Contains(x, y)
}

// Render lays out the widget for the current state
func (m *Model) Render() views.Rendered {
	st := m.svc.State()
	m.input.Width = views.FieldWidth(m.width, st.IsFocused, m.showIcons) - 1

	v := views.SearchBoxView{
		Width:     m.width,
		Field:     m.input.View(),
		State:     st,
		ShowIcons: m.showIcons,
	}
	if m.suggest {
		if opt, ok := m.svc.Suggestion(); ok {
			v.Suggestion = opt.Label
		}
	}
	return m.renderer.Render(v)
}

// View renders the widget
func (m *Model) View() string {
	return m.Render().View
}
