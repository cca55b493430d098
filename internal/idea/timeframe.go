package idea

// Timeframe is the build window chosen in the third wizard step.
type Timeframe string

const (
	Timeframe24Hours Timeframe = "24 hours"
	TimeframeWeekend Timeframe = "A Weekend"
	TimeframeMonth   Timeframe = "A Month"
)

// Timeframes returns the selectable timeframes in display order.
func Timeframes() []Timeframe {
	return []Timeframe{Timeframe24Hours, TimeframeWeekend, TimeframeMonth}
}

// ParseTimeframe reports whether s names a known timeframe.
func ParseTimeframe(s string) (Timeframe, bool) {
	for _, tf := range Timeframes() {
		if string(tf) == s {
			return tf, true
		}
	}
	return "", false
}

// ApplyTimeframe replaces the build plan and both diagrams of d. Task tools
// are taken from the draft's current stack, so the vibe overlay must run
// first. An unknown timeframe returns d unchanged.
func ApplyTimeframe(d Draft, tf Timeframe) Draft {
	s := d.Stack
	switch tf {
	case Timeframe24Hours:
		d.Tasks = []Task{
			{Name: "Set up project scaffolding", Tool: "CLI tools", Time: "1h"},
			{Name: "Implement core UI", Tool: "Component library", Time: "4h"},
			{Name: "Add basic functionality", Tool: orDefault(s.Frontend, "React"), Time: "6h"},
			{Name: "Connect to backend", Tool: orDefault(s.Backend, "Firebase"), Time: "3h"},
			{Name: "Deploy MVP", Tool: orDefault(s.Deployment, "Vercel"), Time: "1h"},
		}
		d.FlowDiagram = flow24Hours
		d.ERDDiagram = erd24Hours
	case TimeframeWeekend:
		d.Tasks = []Task{
			{Name: "Plan architecture", Tool: "Diagrams", Time: "2h"},
			{Name: "Set up project", Tool: "CLI tools", Time: "1h"},
			{Name: "Build frontend", Tool: orDefault(s.Frontend, "React"), Time: "8h"},
			{Name: "Implement backend", Tool: orDefault(s.Backend, "Firebase"), Time: "6h"},
			{Name: "Add auth system", Tool: orDefault(s.Auth, "Auth0"), Time: "3h"},
			{Name: "Basic AI/ML features", Tool: orDefault(s.AI, "API"), Time: "4h"},
			{Name: "Testing & deployment", Tool: orDefault(s.Deployment, "Vercel"), Time: "2h"},
		}
		d.FlowDiagram = flowWeekend
		d.ERDDiagram = erdWeekend
	case TimeframeMonth:
		d.Tasks = []Task{
			{Name: "User research", Tool: "Interviews/Survey", Time: "2d"},
			{Name: "UX design & wireframes", Tool: "Figma", Time: "3d"},
			{Name: "Architecture planning", Tool: "Technical docs", Time: "1d"},
			{Name: "Frontend development", Tool: orDefault(s.Frontend, "React"), Time: "1w"},
			{Name: "Backend API development", Tool: orDefault(s.Backend, "Node.js"), Time: "1w"},
			{Name: "Auth & user management", Tool: orDefault(s.Auth, "Auth0"), Time: "2d"},
			{Name: "Advanced features", Tool: "Various", Time: "1w"},
			{Name: "Testing & QA", Tool: "Testing framework", Time: "3d"},
			{Name: "Deployment & CI/CD", Tool: orDefault(s.Deployment, "AWS"), Time: "2d"},
			{Name: "Analytics integration", Tool: "GA/Mixpanel", Time: "1d"},
		}
		d.FlowDiagram = flowMonth
		d.ERDDiagram = erdMonth
	}
	return d
}
