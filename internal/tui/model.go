package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianshen/buildgen/internal/config"
	"github.com/julianshen/buildgen/internal/idea"
	"github.com/julianshen/buildgen/internal/output"
	"github.com/julianshen/buildgen/internal/wizard"
)

// Phase is the screen the TUI is showing.
type Phase int

const (
	// PhaseWizard shows the step form for the current wizard step.
	PhaseWizard Phase = iota
	// PhaseResults shows the tabbed idea document.
	PhaseResults
)

// Model is the Bubble Tea model for the BuildGen TUI.
type Model struct {
	state      *wizard.State
	compose    wizard.Composer
	stepForm   *StepForm
	viewport   viewport.Model
	mdRenderer *MarkdownRenderer
	statusBar  *StatusBar
	keys       KeyMap
	style      string
	phase      Phase
	notice     string
	width      int
	height     int
	quitting   bool
}

// Ensure Model satisfies the tea.Model interface at compile time.
var _ tea.Model = (*Model)(nil)

// NewModel creates the TUI model. cfg may be nil, in which case defaults
// are used. When demo is set the model opens on the results of the demo
// selection instead of the first wizard step.
func NewModel(cfg *config.Config, demo bool) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		state:     wizard.New(),
		compose:   idea.Compose,
		viewport:  viewport.New(80, 20),
		statusBar: NewStatusBar(80),
		keys:      DefaultKeyMap(),
		style:     cfg.TUI.Style,
		phase:     PhaseWizard,
		width:     80,
		height:    24,
	}

	// Render falls back to raw markdown if the renderer could not be built.
	r, err := NewMarkdownRenderer(m.style, 80)
	if err != nil {
		slog.Warn("markdown renderer unavailable", "style", m.style, "error", err)
	}
	m.mdRenderer = r

	m.stepForm = NewStepForm(m.state.Step(), "")
	if demo {
		m.state.Demo(m.compose)
		m.phase = PhaseResults
		m.refreshTab()
	}
	m.statusBar.SetState(m.state)
	return m
}

// State exposes the wizard state driving the model.
func (m *Model) State() *wizard.State { return m.state }

// Phase returns the screen currently shown.
func (m *Model) Phase() Phase { return m.phase }

// refreshTab re-renders the active tab into the viewport.
func (m *Model) refreshTab() {
	doc, ok := m.state.Result()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	md := output.TabMarkdown(doc, m.state.Tab())
	rendered, err := m.mdRenderer.Render(md)
	if err != nil {
		slog.Warn("rendering tab failed", "tab", m.state.Tab(), "error", err)
		rendered = md
	}
	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
}

// resize rebuilds width-dependent pieces after a window size change.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// Reserve space for the idea header (4), tab bar (2), help (1), status (1).
	vpHeight := height - 8
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.statusBar.SetWidth(width)

	r, err := NewMarkdownRenderer(m.style, width)
	if err == nil {
		m.mdRenderer = r
	}
	if m.phase == PhaseResults {
		m.refreshTab()
	}
}
