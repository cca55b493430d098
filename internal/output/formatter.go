// internal/output/formatter.go
package output

import (
	"fmt"
	"strings"

	"github.com/julianshen/buildgen/internal/idea"
	"github.com/julianshen/buildgen/internal/wizard"
)

// Report is an idea together with the selection that produced it.
type Report struct {
	Selection wizard.Selection `json:"selection" yaml:"selection"`
	Idea      idea.Document    `json:"idea" yaml:"idea"`
}

// NewReport composes the idea for a selection.
func NewReport(sel wizard.Selection) *Report {
	return &Report{
		Selection: sel,
		Idea:      idea.Compose(sel.Space, sel.Vibe, sel.Time),
	}
}

// Formatter formats a Report into output bytes.
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Extension is the file extension used when the output is written to disk.
	Extension() string
}

// Names lists the formats accepted by ForName.
func Names() []string {
	return []string{"json", "markdown", "yaml"}
}

// ForName returns the formatter registered under name.
func ForName(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "json":
		return NewJSONFormatter(), nil
	case "markdown", "md":
		return NewMarkdownFormatter(), nil
	case "yaml", "yml":
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
}
