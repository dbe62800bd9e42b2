package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"searchwidget/internal/config"
	"searchwidget/internal/domain"
	"searchwidget/internal/eventbus"
	"searchwidget/internal/ui/searchbox"
	"searchwidget/internal/ui/services/search"
	"searchwidget/internal/ui/views"
)

// Layout of the page: title, blank line, then the widget
const (
	marginLeft = 2
	widgetTop  = 2
)

// Model represents the UI state of the host page
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	styles *views.Styles

	search *searchbox.Model
	help   help.Model
	keys   appKeyMap

	width       int
	height      int
	selected    string
	status      string
	inPagerMode bool
	quitting    bool

	unsubscribe []func()

	helpOps *HelpOps
	program *tea.Program
}

// NewModel creates a new UI model and mounts the search box
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	styles := views.NewStyles()
	m := &Model{
		bus:    bus,
		config: cfg,
		styles: styles,
		help:   help.New(),
		keys:   defaultAppKeyMap(),
		status: "Nothing selected",
	}

	m.search = searchbox.New(search.Params{
		Options:     cfg.Options,
		Placeholder: cfg.Placeholder,
		OnChange:    m.onChange,
	}, bus, searchbox.Options{
		Width:     cfg.UI.Width,
		ShowIcons: cfg.UI.ShowIcons,
		Suggest:   cfg.UI.Suggest,
		Styles:    styles,
	})
	m.search.SetOrigin(marginLeft, widgetTop)
	m.search.Mount()
	m.subscribe()

	return m
}

// subscribe keeps the status bar in line with what the widget reports
func (m *Model) subscribe() {
	m.unsubscribe = append(m.unsubscribe,
		m.bus.Subscribe(eventbus.EventQueryChanged, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.QueryChangedEvent)
			switch ev.Matches {
			case 0:
				m.status = fmt.Sprintf("No matches for %q", ev.Query)
			case 1:
				m.status = fmt.Sprintf("1 match for %q", ev.Query)
			default:
				m.status = fmt.Sprintf("%d matches for %q", ev.Matches, ev.Query)
			}
		}),
		m.bus.Subscribe(eventbus.EventCleared, func(eventbus.DomainEvent) {
			m.status = "Cleared"
		}),
		m.bus.Subscribe(eventbus.EventDismissed, func(e eventbus.DomainEvent) {
			m.status = fmt.Sprintf("Closed (%s)", e.(eventbus.DismissedEvent).Reason)
		}),
		m.bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.ErrorEvent)
			log.Printf("Error: %s: %v", ev.Message, ev.Err)
			m.status = "Error: " + ev.Message
		}),
	)
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Selected returns the last committed option value
func (m *Model) Selected() string {
	return m.selected
}

// onChange is the widget's callback; it runs once per committed selection
func (m *Model) onChange(value string) {
	log.Printf("Selected value: %s", value)
	m.selected = value
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	log.Printf("__READY__")
	return m.search.Focus()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if w := msg.Width - 2*marginLeft; w > 0 && (m.config.UI.Width <= 0 || w < m.config.UI.Width) {
			m.search.SetWidth(w)
		} else {
			m.search.SetWidth(m.config.UI.Width)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.publishPointer(msg)
		return m, m.search.Update(msg)

	case searchbox.SelectedMsg:
		m.status = fmt.Sprintf("Selected: %s", msg.Value)
		if m.config.UI.ExitOnSelect {
			return m, m.quit()
		}
		return m, nil

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.bus.Publish(eventbus.ErrorEvent{Message: "help pager failed", Err: msg.err})
		}
		return m, nil
	}

	return m, m.search.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Help):
		return m, m.showHelpPager()
	case key.Matches(msg, m.keys.ToggleFocus):
		if m.search.Focused() {
			m.search.Blur()
			return m, nil
		}
		return m, m.search.Focus()
	}

	if !m.search.Focused() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()
		case key.Matches(msg, m.keys.Focus):
			return m, m.search.Focus()
		}
		return m, nil
	}

	return m, m.search.Update(msg)
}

// publishPointer reports a pointer event to everyone listening globally
func (m *Model) publishPointer(msg tea.MouseMsg) {
	var action domain.PointerAction
	switch msg.Action {
	case tea.MouseActionPress:
		action = domain.PointerPress
	case tea.MouseActionRelease:
		action = domain.PointerRelease
	default:
		action = domain.PointerMotion
	}
	m.bus.Publish(eventbus.PointerEvent{X: msg.X, Y: msg.Y, Action: action})
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.search.Unmount()
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
	return tea.Quit
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager() tea.Cmd {
	if m.helpOps == nil {
		return nil
	}
	m.inPagerMode = true
	content := NewHelpRenderer().RenderHelpContent(m.config.Options)
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting || m.inPagerMode {
		return ""
	}

	indent := lipgloss.NewStyle().MarginLeft(marginLeft)

	var b strings.Builder
	b.WriteString(indent.Render(m.styles.Title.Render("searchwidget")))
	b.WriteString("\n\n")
	b.WriteString(indent.Render(m.search.View()))
	b.WriteString("\n\n")

	status := m.styles.Status.Render(m.status)
	if m.selected != "" && m.status == "Selected: "+m.selected {
		status = m.styles.Selected.Render(m.status)
	}
	b.WriteString(indent.Render(status))
	b.WriteString("\n")
	b.WriteString(indent.Render(m.help.View(m.helpKeys())))

	return b.String()
}

// helpKeys merges the page and widget bindings for the footer
func (m *Model) helpKeys() help.KeyMap {
	return combinedKeys{app: m.keys, search: m.search.KeyMap(), focused: m.search.Focused()}
}

type appKeyMap struct {
	ToggleFocus key.Binding
	Focus       key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

type combinedKeys struct {
	app     appKeyMap
	search  searchbox.KeyMap
	focused bool
}

func (k combinedKeys) ShortHelp() []key.Binding {
	if k.focused {
		return append(k.search.ShortHelp(), k.app.ToggleFocus, k.app.Help, k.app.ForceQuit)
	}
	return []key.Binding{k.app.Focus, k.app.ToggleFocus, k.app.Help, k.app.Quit}
}

func (k combinedKeys) FullHelp() [][]key.Binding {
	return append(k.search.FullHelp(), []key.Binding{k.app.ToggleFocus, k.app.Help, k.app.Quit, k.app.ForceQuit})
}
