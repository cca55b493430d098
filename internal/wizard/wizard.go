// Package wizard holds the three-step selection state that feeds idea
// composition, along with the results view it unlocks.
package wizard

import (
	"errors"
	"fmt"

	"github.com/julianshen/buildgen/internal/idea"
)

// Step numbers. A State is always on one of these.
const (
	StepSpace = 1
	StepVibe  = 2
	StepTime  = 3
)

// Guard rejections. The transition that returned one did not happen.
var (
	ErrStepIncomplete = errors.New("current step has no selection")
	ErrFirstStep      = errors.New("already at the first step")
	ErrFinalStep      = errors.New("already at the final step")
	ErrNotFinalStep   = errors.New("not at the final step")
	ErrInvalidStep    = errors.New("step out of range")
	ErrUnknownTab     = errors.New("unknown tab")
)

// Composer turns a complete selection into an idea document.
type Composer func(space, vibe, timeframe string) idea.Document

// Selection is the three values chosen so far. Empty means unset.
type Selection struct {
	Space string `json:"space" yaml:"space"`
	Vibe  string `json:"vibe" yaml:"vibe"`
	Time  string `json:"time" yaml:"time"`
}

// State is one user's pass through the wizard. The zero value is not
// ready for use; call New.
type State struct {
	step   int
	sel    Selection
	result *idea.Document
	tab    Tab
}

// New returns an empty wizard on the first step.
func New() *State {
	return &State{step: StepSpace, tab: DefaultTab}
}

// Step returns the current step number.
func (s *State) Step() int { return s.step }

// Selection returns a copy of the current selection.
func (s *State) Selection() Selection { return s.sel }

// Value returns the selection for step n, or "" when n is out of range.
func (s *State) Value(n int) string {
	switch n {
	case StepSpace:
		return s.sel.Space
	case StepVibe:
		return s.sel.Vibe
	case StepTime:
		return s.sel.Time
	}
	return ""
}

// Set records the selection for step n. Values are not checked against the
// option lists; composition absorbs unknown values. Changing a value drops
// any composed result, since it no longer matches the selection.
func (s *State) Set(n int, value string) error {
	var field *string
	switch n {
	case StepSpace:
		field = &s.sel.Space
	case StepVibe:
		field = &s.sel.Vibe
	case StepTime:
		field = &s.sel.Time
	default:
		return fmt.Errorf("%w: %d", ErrInvalidStep, n)
	}
	if *field != value {
		*field = value
		s.result = nil
		s.tab = DefaultTab
	}
	return nil
}

// SetCurrent records the selection for the current step.
func (s *State) SetCurrent(value string) {
	_ = s.Set(s.step, value)
}

// StepComplete reports whether step n has a selection.
func (s *State) StepComplete(n int) bool {
	return s.Value(n) != ""
}

// CurrentComplete reports whether the current step has a selection.
func (s *State) CurrentComplete() bool {
	return s.StepComplete(s.step)
}

// Complete reports whether all three selections are present.
func (s *State) Complete() bool {
	return s.sel.Space != "" && s.sel.Vibe != "" && s.sel.Time != ""
}

// Advance moves to the next step once the current one is complete.
// The final step is left through Finish instead.
func (s *State) Advance() error {
	if !s.CurrentComplete() {
		return ErrStepIncomplete
	}
	if s.step >= StepTime {
		return ErrFinalStep
	}
	s.step++
	return nil
}

// Retreat moves to the previous step. Selections are kept.
func (s *State) Retreat() error {
	if s.step <= StepSpace {
		return ErrFirstStep
	}
	s.step--
	return nil
}

// Finish composes the idea for the current selection and stores it as the
// result. It is valid only on the final step with that step completed.
func (s *State) Finish(compose Composer) (idea.Document, error) {
	if s.step != StepTime {
		return idea.Document{}, ErrNotFinalStep
	}
	if !s.CurrentComplete() {
		return idea.Document{}, ErrStepIncomplete
	}
	doc := compose(s.sel.Space, s.sel.Vibe, s.sel.Time)
	s.result = &doc
	s.tab = DefaultTab
	return doc, nil
}

// Result returns the composed idea, if Finish has succeeded since the last
// Reset.
func (s *State) Result() (idea.Document, bool) {
	if s.result == nil {
		return idea.Document{}, false
	}
	return *s.result, true
}

// Reset clears all selections and any result and returns to the first step.
func (s *State) Reset() {
	s.step = StepSpace
	s.sel = Selection{}
	s.result = nil
	s.tab = DefaultTab
}

// Demo fills the wizard with a fixed sample selection and composes it.
func (s *State) Demo(compose Composer) idea.Document {
	s.Reset()
	s.sel = Selection{
		Space: string(idea.SpaceProductivity),
		Vibe:  string(idea.VibeSoloBuilder),
		Time:  string(idea.TimeframeWeekend),
	}
	s.step = StepTime
	// Step and selection were set just above, so Finish cannot be rejected.
	doc, err := s.Finish(compose)
	if err != nil {
		panic("wizard: demo finish rejected: " + err.Error())
	}
	return doc
}

// Tab returns the active results tab.
func (s *State) Tab() Tab { return s.tab }

// SetTab switches the active results tab.
func (s *State) SetTab(name string) error {
	t, ok := ParseTab(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTab, name)
	}
	s.tab = t
	return nil
}

// Options returns the selectable values for step n in display order.
func Options(n int) []string {
	var out []string
	switch n {
	case StepSpace:
		for _, sp := range idea.Spaces() {
			out = append(out, string(sp))
		}
	case StepVibe:
		for _, v := range idea.Vibes() {
			out = append(out, string(v))
		}
	case StepTime:
		for _, tf := range idea.Timeframes() {
			out = append(out, string(tf))
		}
	}
	return out
}

// Prompt returns the question shown for step n.
func Prompt(n int) string {
	switch n {
	case StepSpace:
		return "What space are you in?"
	case StepVibe:
		return "What's your vibe?"
	case StepTime:
		return "How much time do you have?"
	}
	return ""
}
