package server

import (
	"github.com/julianshen/buildgen/internal/idea"
	"github.com/julianshen/buildgen/internal/wizard"
)

// IdeaRequest is the body of a one-shot compose request. Empty fields fall back to defaults.
type IdeaRequest struct {
	Space string `json:"space"`
	Vibe  string `json:"vibe"`
	Time  string `json:"time"`
}

// SelectionRequest sets the value of the current wizard step.
type SelectionRequest struct {
	Value string `json:"value" binding:"required"`
}

// TabRequest switches the active results tab.
type TabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// StepOptions lists the choices offered on one wizard step.
type StepOptions struct {
	Step    int      `json:"step"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// OptionsResponse describes every step, tab and output format the API accepts.
type OptionsResponse struct {
	Steps   []StepOptions `json:"steps"`
	Tabs    []string      `json:"tabs"`
	Formats []string      `json:"formats"`
}

// SessionResponse is a snapshot of a wizard session. Idea is present once finished.
type SessionResponse struct {
	ID        string           `json:"id"`
	Step      int              `json:"step"`
	Selection wizard.Selection `json:"selection"`
	Complete  bool             `json:"complete"`
	Finished  bool             `json:"finished"`
	Tab       string           `json:"tab"`
	Idea      *idea.Document   `json:"idea,omitempty"`
}

// toSessionResponse snapshots sess. The caller holds sess.mu.
func toSessionResponse(sess *Session) *SessionResponse {
	st := sess.state
	resp := &SessionResponse{
		ID:        sess.ID,
		Step:      st.Step(),
		Selection: st.Selection(),
		Complete:  st.Complete(),
		Tab:       string(st.Tab()),
	}
	if doc, ok := st.Result(); ok {
		resp.Finished = true
		resp.Idea = &doc
	}
	return resp
}
