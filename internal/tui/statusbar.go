package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianshen/buildgen/internal/wizard"
)

// StatusBar displays the wizard step and the selections made so far.
type StatusBar struct {
	width int
	step  int
	sel   wizard.Selection
	style lipgloss.Style
}

// NewStatusBar creates a new StatusBar with the given terminal width.
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		width: width,
		step:  wizard.StepSpace,
		style: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}),
	}
}

// SetWidth sets the terminal width.
func (s *StatusBar) SetWidth(width int) { s.width = width }

// SetState copies the step and selection from st.
func (s *StatusBar) SetState(st *wizard.State) {
	s.step = st.Step()
	s.sel = st.Selection()
}

// View renders the status bar as a styled string.
func (s *StatusBar) View() string {
	var parts []string
	for _, v := range []string{s.sel.Space, s.sel.Vibe, s.sel.Time} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	summary := strings.Join(parts, " + ")
	if summary == "" {
		summary = "nothing selected"
	}
	line := fmt.Sprintf(" Step %d/%d  %s", s.step, wizard.StepTime, summary)
	if s.width > 0 && lipgloss.Width(line) > s.width {
		line = truncate(line, s.width)
	}
	return s.style.Render(line)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
