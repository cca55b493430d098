package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianshen/buildgen/internal/wizard"
)

func TestStatusBarEmpty(t *testing.T) {
	sb := NewStatusBar(80)
	view := sb.View()
	assert.Contains(t, view, "Step 1/3")
	assert.Contains(t, view, "nothing selected")
}

func TestStatusBarSelections(t *testing.T) {
	st := wizard.New()
	st.SetCurrent("Health")
	_ = st.Advance()
	st.SetCurrent("Solo Builder")

	sb := NewStatusBar(80)
	sb.SetState(st)
	view := sb.View()
	assert.Contains(t, view, "Step 2/3")
	assert.Contains(t, view, "Health + Solo Builder")
}

func TestStatusBarTruncates(t *testing.T) {
	st := wizard.New()
	st.SetCurrent("Productivity")

	sb := NewStatusBar(12)
	sb.SetState(st)
	view := sb.View()
	assert.Contains(t, view, "…")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "a", truncate("abc", 1))
}
