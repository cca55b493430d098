package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianshen/buildgen/internal/wizard"
)

// Style definitions for the TUI view.
var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#EEEEEE"})
	subtleStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"})
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"})
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#9333EA"))
	tabStyle        = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"})
	stepActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9333EA"))
	stepDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B21A8"))
)

// badgeStyles color the space, vibe and time badges.
var badgeStyles = []lipgloss.Style{
	lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#9333EA")),
	lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#2563EB")),
	lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#16A34A")),
}

// iconGlyphs maps idea icon identifiers to terminal glyphs.
var iconGlyphs = map[string]string{
	"Lightbulb":  "💡",
	"Heart":      "❤",
	"Cpu":        "🖥",
	"Video":      "🎬",
	"Utensils":   "🍴",
	"Package":    "📦",
	"BookOpen":   "📖",
	"DollarSign": "💲",
	"Box":        "▣",
}

// iconGlyph returns the glyph for icon, or the Box glyph when unknown.
func iconGlyph(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return iconGlyphs["Box"]
}

// View implements tea.Model. It renders the TUI as a string.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.phase == PhaseResults {
		return m.resultsView()
	}
	return m.wizardView()
}

func (m *Model) wizardView() string {
	var b strings.Builder

	b.WriteString(RenderBanner())
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("Tell us about your project"))
	b.WriteString("\n\n")
	b.WriteString(stepIndicator(m.state.Step(), wizard.StepTime))
	b.WriteString("\n\n")
	b.WriteString(m.stepForm.Form().View())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")

	next := "next"
	if m.state.Step() == wizard.StepTime {
		next = "generate idea"
	}
	b.WriteString(subtleStyle.Render(fmt.Sprintf("enter %s  %s  ctrl+c quit", next, helpLine(m.keys.Back))))
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())

	return b.String()
}

func (m *Model) resultsView() string {
	doc, ok := m.state.Result()
	if !ok {
		return "No idea generated yet.\n"
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s", iconGlyph(doc.Icon), doc.Name)))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%q", doc.Tagline)))
	b.WriteString("\n")

	sel := m.state.Selection()
	var badges []string
	for i, v := range []string{sel.Space, sel.Vibe, sel.Time} {
		badges = append(badges, badgeStyles[i].Render(v))
	}
	b.WriteString(strings.Join(badges, " "))
	b.WriteString("\n\n")

	b.WriteString(tabBar(m.state.Tab()))
	b.WriteString("\n")
	dividerWidth := m.width
	if dividerWidth < 1 {
		dividerWidth = 80
	}
	b.WriteString(strings.Repeat("─", dividerWidth))
	b.WriteString("\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	b.WriteString(subtleStyle.Render(helpLine(m.keys.PrevTab, m.keys.NextTab, m.keys.Restart, m.keys.Quit)))

	return b.String()
}

// stepIndicator renders "✓──2──3" style progress for the wizard.
func stepIndicator(current, total int) string {
	var parts []string
	for i := 1; i <= total; i++ {
		switch {
		case i < current:
			parts = append(parts, stepDoneStyle.Render("✓"))
		case i == current:
			parts = append(parts, stepActiveStyle.Render(fmt.Sprintf("(%d)", i)))
		default:
			parts = append(parts, subtleStyle.Render(fmt.Sprintf(" %d ", i)))
		}
	}
	return strings.Join(parts, subtleStyle.Render("──"))
}

// tabBar renders every tab title with the active one highlighted.
func tabBar(active wizard.Tab) string {
	var parts []string
	for _, t := range wizard.Tabs() {
		if t == active {
			parts = append(parts, activeTabStyle.Render(t.Title()))
			continue
		}
		parts = append(parts, tabStyle.Render(t.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
