// internal/output/markdown.go
package output

import (
	"fmt"
	"strings"

	"github.com/julianshen/buildgen/internal/idea"
	"github.com/julianshen/buildgen/internal/wizard"
)

// MarkdownFormatter outputs a Report as human-readable Markdown, one section
// per results tab.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the Report as Markdown.
func (f *MarkdownFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder
	b.WriteString(Header(report.Idea, report.Selection))
	for _, tab := range wizard.Tabs() {
		b.WriteString("\n")
		b.WriteString(TabMarkdown(report.Idea, tab))
	}
	return []byte(b.String()), nil
}

// Extension implements Formatter.
func (f *MarkdownFormatter) Extension() string { return "md" }

// Header renders the idea title block: name, tagline, selection badges and
// description.
func Header(doc idea.Document, sel wizard.Selection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Name)
	fmt.Fprintf(&b, "*\"%s\"*\n\n", doc.Tagline)

	var badges []string
	for _, v := range []string{sel.Space, sel.Vibe, sel.Time} {
		if v != "" {
			badges = append(badges, "`"+v+"`")
		}
	}
	if len(badges) > 0 {
		b.WriteString(strings.Join(badges, " "))
		b.WriteString("\n\n")
	}

	b.WriteString(doc.Description)
	b.WriteString("\n")
	return b.String()
}

// TabMarkdown renders the section of doc shown under tab. Diagrams are
// passed through verbatim inside mermaid fences.
func TabMarkdown(doc idea.Document, tab wizard.Tab) string {
	var b strings.Builder
	switch tab {
	case wizard.TabStack:
		b.WriteString("## Stack Recommendation\n\n")
		writeStackItem(&b, "Frontend", doc.Stack.Frontend)
		writeStackItem(&b, "Backend", doc.Stack.Backend)
		writeStackItem(&b, "Auth", doc.Stack.Auth)
		writeStackItem(&b, "AI", doc.Stack.AI)
		writeStackItem(&b, "Deployment", doc.Stack.Deployment)
		writeStackItem(&b, "Other", doc.Stack.Other)

	case wizard.TabFlow:
		b.WriteString("## Flow Diagram\n\n")
		writeMermaid(&b, doc.FlowDiagram)

	case wizard.TabERD:
		b.WriteString("## ERD\n\n")
		writeMermaid(&b, doc.ERDDiagram)

	case wizard.TabTasks:
		b.WriteString("## Build Tasks\n\n")
		b.WriteString("| Task | Tool | Est. Time |\n")
		b.WriteString("|------|------|-----------|\n")
		for _, task := range doc.Tasks {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(task.Name), cell(task.Tool), cell(task.Time))
		}

	case wizard.TabCompetitors:
		b.WriteString("## Competitor Snapshot\n\n")
		writeList(&b, doc.Competitors)

	case wizard.TabDomains:
		b.WriteString("## Domain Availability\n\n")
		for _, d := range doc.Domains {
			status := "Taken"
			if d.Available {
				status = "Available"
			}
			fmt.Fprintf(&b, "- `%s`: %s\n", d.Name, status)
		}

	case wizard.TabLegal:
		b.WriteString("## Legal / Infra Checklist\n\n")
		for _, item := range doc.Legal {
			fmt.Fprintf(&b, "- [x] %s\n", item)
		}

	case wizard.TabMonetization:
		b.WriteString("## Monetization Ideas\n\n")
		writeList(&b, doc.Monetization)
		b.WriteString("\n## Growth Experiments\n\n")
		writeList(&b, doc.Growth)
	}
	return b.String()
}

// writeStackItem skips empty values so optional stack entries disappear.
func writeStackItem(b *strings.Builder, title, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "- **%s:** %s\n", title, value)
}

func writeMermaid(b *strings.Builder, src string) {
	b.WriteString("```mermaid\n")
	b.WriteString(src)
	if !strings.HasSuffix(src, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
