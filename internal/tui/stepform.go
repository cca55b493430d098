package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianshen/buildgen/internal/wizard"
)

// StepForm is the single-question huh form shown for one wizard step.
type StepForm struct {
	form  *huh.Form
	step  int
	value string
}

// NewStepForm creates the form for step, preselecting current when it is
// one of the step's options.
func NewStepForm(step int, current string) *StepForm {
	sf := &StepForm{step: step, value: current}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(wizard.Prompt(step)).
				Options(huh.NewOptions(wizard.Options(step)...)...).
				Value(&sf.value),
		),
	).WithShowHelp(false)

	return sf
}

// Step returns the wizard step this form asks about.
func (s *StepForm) Step() int { return s.step }

// Value returns the option currently selected.
func (s *StepForm) Value() string { return s.value }

// Form returns the underlying huh.Form for Bubble Tea embedding.
func (s *StepForm) Form() *huh.Form { return s.form }

// SetForm replaces the underlying huh.Form (needed for Bubble Tea Update cycle).
func (s *StepForm) SetForm(f *huh.Form) { s.form = f }

// IsCompleted returns true if the form has been completed (submitted).
func (s *StepForm) IsCompleted() bool { return s.form.State == huh.StateCompleted }

// IsAborted returns true if the form has been aborted (cancelled).
func (s *StepForm) IsAborted() bool { return s.form.State == huh.StateAborted }
