package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianshen/buildgen/internal/wizard"
)

// Init implements tea.Model. It initializes the step form when the model
// starts on the wizard.
func (m *Model) Init() tea.Cmd {
	if m.phase == PhaseWizard {
		return m.stepForm.Form().Init()
	}
	return nil
}

// Update implements tea.Model. It processes incoming messages and returns the
// updated model and any commands to execute.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.phase == PhaseWizard {
			return m.updateForm(msg)
		}
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C always quits, regardless of phase.
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.phase == PhaseResults {
			return m.handleResultsKey(msg)
		}
		if key.Matches(msg, m.keys.Back) {
			return m, m.back()
		}
	}

	if m.phase == PhaseWizard {
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateForm routes a message to the embedded step form and reacts to it
// being submitted or aborted.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.stepForm.Form().Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.stepForm.SetForm(f)
	}

	switch {
	case m.stepForm.IsCompleted():
		return m, m.submitStep(m.stepForm.Value())
	case m.stepForm.IsAborted():
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// submitStep records value for the current step, then advances, or on the
// final step composes the idea and switches to the results.
func (m *Model) submitStep(value string) tea.Cmd {
	m.state.SetCurrent(value)
	m.notice = ""

	if m.state.Step() == wizard.StepTime {
		if _, err := m.state.Finish(m.compose); err != nil {
			m.notice = guardNotice(err)
			return m.rebuildForm()
		}
		m.phase = PhaseResults
		m.statusBar.SetState(m.state)
		m.refreshTab()
		return nil
	}

	if err := m.state.Advance(); err != nil {
		m.notice = guardNotice(err)
	}
	return m.rebuildForm()
}

// back retreats one step. At the first step the guard leaves everything as
// it was and a notice is shown instead.
func (m *Model) back() tea.Cmd {
	if err := m.state.Retreat(); err != nil {
		m.notice = guardNotice(err)
		return nil
	}
	m.notice = ""
	return m.rebuildForm()
}

// restart clears the wizard and returns to its first step.
func (m *Model) restart() tea.Cmd {
	m.state.Reset()
	m.phase = PhaseWizard
	m.notice = ""
	m.viewport.SetContent("")
	return m.rebuildForm()
}

// rebuildForm replaces the step form with a fresh one for the current step.
func (m *Model) rebuildForm() tea.Cmd {
	step := m.state.Step()
	m.stepForm = NewStepForm(step, m.state.Value(step))
	m.statusBar.SetState(m.state)
	return m.stepForm.Form().Init()
}

// handleResultsKey processes keyboard input on the results screen.
func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		return m, m.restart()

	case key.Matches(msg, m.keys.NextTab):
		_ = m.state.SetTab(string(m.state.Tab().Next()))
		m.refreshTab()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		_ = m.state.SetTab(string(m.state.Tab().Prev()))
		m.refreshTab()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// guardNotice turns a wizard guard rejection into a user-facing hint.
func guardNotice(err error) string {
	switch {
	case errors.Is(err, wizard.ErrStepIncomplete):
		return "Pick an option to continue."
	case errors.Is(err, wizard.ErrFirstStep):
		return "Already at the first step."
	default:
		return err.Error()
	}
}
