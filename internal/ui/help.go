package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"searchwidget/internal/domain"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager.
// The configured options are listed so the full set can be browsed.
func (r *HelpRenderer) RenderHelpContent(options []domain.Option) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("searchwidget Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("type"), descStyle.Render("Filter options (case and accent insensitive)")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Move the highlight")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Enter"), descStyle.Render("Select the highlighted option")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Esc"), descStyle.Render("Close the result list")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Ctrl+U"), descStyle.Render("Clear the search text")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("click"), descStyle.Render("Select an option, or the × to clear")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("outside"), descStyle.Render("Close the list and leave the input")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Tab"), descStyle.Render("Focus / leave the input")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("F1"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("q"), descStyle.Render("Quit (when the input is not focused)")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Ctrl+C"), descStyle.Render("Quit")))

	if len(options) > 0 {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(fmt.Sprintf("Options (%d)", len(options))))
		help.WriteString("\n")
		for _, opt := range options {
			help.WriteString(fmt.Sprintf("  %s  %s\n", descStyle.Render(opt.Label), lipgloss.NewStyle().Faint(true).Render(opt.Value)))
		}
	}

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h == nil || h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
