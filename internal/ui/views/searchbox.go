package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"searchwidget/internal/ui/mouse"
	"searchwidget/internal/ui/state"
)

// Glyphs used by the search box
const (
	SearchGlyph = "⌕"
	ClearGlyph  = "×"
	NotFoundMsg = "Not Found"

	MinWidth = 20
)

// SearchBoxView contains all the state needed to render a search box
type SearchBoxView struct {
	Width      int
	Field      string // rendered text input, including cursor or placeholder
	State      state.WidgetState
	Suggestion string // label to hint when nothing matched
	ShowIcons  bool
}

// Rendered is the output of a search box render
type Rendered struct {
	View    string
	Regions *mouse.Regions // relative to the widget's top-left corner
	Width   int
	Height  int
}

// SearchBoxRenderer renders the search box and its result list
type SearchBoxRenderer struct {
	styles *Styles
}

// NewSearchBoxRenderer creates a new search box renderer
func NewSearchBoxRenderer(styles *Styles) *SearchBoxRenderer {
	return &SearchBoxRenderer{styles: styles}
}

// FieldWidth returns how many cells the text field gets for a given view
func FieldWidth(width int, focused, showIcons bool) int {
	w := clampWidth(width) - 4 // border + padding
	w -= 2                     // space + clear button
	if focused && showIcons {
		w -= 2 // icon + space
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Render produces the search box view.
// Everything is derived from the state; nothing is patched after rendering.
func (r *SearchBoxRenderer) Render(v SearchBoxView) Rendered {
	width := clampWidth(v.Width)
	st := v.State
	regions := &mouse.Regions{}

	inputBox := r.renderInput(v, width)
	inputHeight := lipgloss.Height(inputBox)
	regions.Add(mouse.RegionInput, mouse.Rect{X: 0, Y: 0, W: width, H: inputHeight})
	if st.QueryText != "" {
		// border + padding + field + space, the glyph sits just before the right padding
		regions.Add(mouse.RegionClear, mouse.Rect{X: width - 4, Y: 1, W: 2, H: 1})
	}

	blocks := []string{inputBox}
	n := len(st.FilteredOptions)
	switch {
	case st.IsOpen && n > 0:
		blocks = append(blocks, r.renderOptions(v, width))
		for i := 0; i < n; i++ {
			// list top border sits right below the input box
			regions.Add(mouse.ItemRegion(i), mouse.Rect{X: 0, Y: inputHeight + 1 + i, W: width, H: 1})
		}
	case st.IsOpen:
		blocks = append(blocks, r.renderNotFound(v, width))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	return Rendered{
		View:    out,
		Regions: regions,
		Width:   width,
		Height:  lipgloss.Height(out),
	}
}

func (r *SearchBoxRenderer) renderInput(v SearchBoxView, width int) string {
	st := v.State
	fieldW := FieldWidth(width, st.IsFocused, v.ShowIcons)

	var b strings.Builder
	if st.IsFocused && v.ShowIcons {
		b.WriteString(r.styles.Icon.Render(SearchGlyph))
		b.WriteString(" ")
	}
	b.WriteString(fitCells(v.Field, fieldW))
	b.WriteString(" ")
	if st.QueryText != "" {
		b.WriteString(r.styles.ClearButton.Render(ClearGlyph))
	} else {
		b.WriteString(" ")
	}

	style := r.styles.Input
	switch {
	case st.IsOpen:
		style = r.styles.InputActive
	case st.IsFocused:
		style = r.styles.InputFocused
	}
	return style.Width(width - 2).Render(b.String())
}

func (r *SearchBoxRenderer) renderOptions(v SearchBoxView, width int) string {
	inner := width - 4
	lines := make([]string, 0, len(v.State.FilteredOptions))
	for i, opt := range v.State.FilteredOptions {
		label := opt.Label
		if v.ShowIcons {
			label = SearchGlyph + " " + label
		}
		label = fitCells(label, inner)

		style := r.styles.Item
		if i == v.State.HighlightIndex {
			style = r.styles.ItemFocused
		}
		lines = append(lines, style.Render(label))
	}
	return r.styles.Options.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (r *SearchBoxRenderer) renderNotFound(v SearchBoxView, width int) string {
	inner := width - 4
	lines := []string{r.styles.NotFound.Render(fitCells(NotFoundMsg, inner))}
	if v.Suggestion != "" {
		hint := fmt.Sprintf("Did you mean %s?", v.Suggestion)
		lines = append(lines, r.styles.Suggestion.Render(fitCells(hint, inner)))
	}
	return r.styles.Options.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// fitCells truncates or pads s to exactly w terminal cells
func fitCells(s string, w int) string {
	s = ansi.Truncate(s, w, "…")
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func clampWidth(w int) int {
	if w < MinWidth {
		return MinWidth
	}
	return w
}
