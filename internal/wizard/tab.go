package wizard

// Tab names one section of the results view.
type Tab string

const (
	TabStack        Tab = "stack"
	TabFlow         Tab = "flow"
	TabERD          Tab = "erd"
	TabTasks        Tab = "tasks"
	TabCompetitors  Tab = "competitors"
	TabDomains      Tab = "domains"
	TabLegal        Tab = "legal"
	TabMonetization Tab = "monetization"
)

// DefaultTab is shown first after composition.
const DefaultTab = TabStack

// Tabs returns the result tabs in display order.
func Tabs() []Tab {
	return []Tab{
		TabStack,
		TabFlow,
		TabERD,
		TabTasks,
		TabCompetitors,
		TabDomains,
		TabLegal,
		TabMonetization,
	}
}

// ParseTab reports whether s names a tab.
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Title is the tab label shown in tab bars.
func (t Tab) Title() string {
	switch t {
	case TabStack:
		return "Stack"
	case TabFlow:
		return "Flow"
	case TabERD:
		return "ERD"
	case TabTasks:
		return "Tasks"
	case TabCompetitors:
		return "Competitors"
	case TabDomains:
		return "Domains"
	case TabLegal:
		return "Legal"
	case TabMonetization:
		return "Monetization"
	}
	return string(t)
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab { return t.offset(1) }

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab { return t.offset(-1) }

func (t Tab) offset(delta int) Tab {
	tabs := Tabs()
	for i, candidate := range tabs {
		if candidate == t {
			return tabs[(i+delta+len(tabs))%len(tabs)]
		}
	}
	return DefaultTab
}
