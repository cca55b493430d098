package idea

// Stack is the recommended technology stack of an idea. AI and Other are
// optional; an empty string means the idea has no entry for them.
type Stack struct {
	Frontend   string `json:"frontend" yaml:"frontend"`
	Backend    string `json:"backend" yaml:"backend"`
	Auth       string `json:"auth" yaml:"auth"`
	AI         string `json:"ai,omitempty" yaml:"ai,omitempty"`
	Deployment string `json:"deployment" yaml:"deployment"`
	Other      string `json:"other,omitempty" yaml:"other,omitempty"`
}

// Task is one row of the build plan.
type Task struct {
	Name string `json:"name" yaml:"name"`
	Tool string `json:"tool" yaml:"tool"`
	Time string `json:"time" yaml:"time"`
}

// Domain is a candidate domain name and whether it can still be registered.
type Domain struct {
	Name      string `json:"name" yaml:"name"`
	Available bool   `json:"available" yaml:"available"`
}

// Document is the fully composed product idea. Every field is populated.
// FlowDiagram and ERDDiagram hold Mermaid source and are never interpreted
// by this package.
type Document struct {
	Name         string   `json:"name" yaml:"name"`
	Tagline      string   `json:"tagline" yaml:"tagline"`
	Description  string   `json:"description" yaml:"description"`
	Icon         string   `json:"icon" yaml:"icon"`
	Stack        Stack    `json:"stack" yaml:"stack"`
	FlowDiagram  string   `json:"flow_diagram" yaml:"flow_diagram"`
	ERDDiagram   string   `json:"erd_diagram" yaml:"erd_diagram"`
	Tasks        []Task   `json:"tasks" yaml:"tasks"`
	Competitors  []string `json:"competitors" yaml:"competitors"`
	Domains      []Domain `json:"domains" yaml:"domains"`
	Legal        []string `json:"legal" yaml:"legal"`
	Monetization []string `json:"monetization" yaml:"monetization"`
	Growth       []string `json:"growth" yaml:"growth"`
}

// Draft is a partially composed idea passed between overlay stages.
// Empty strings and nil slices mark fields no stage has populated yet.
type Draft struct {
	Name         string
	Tagline      string
	Description  string
	Icon         string
	Stack        Stack
	FlowDiagram  string
	ERDDiagram   string
	Tasks        []Task
	Competitors  []string
	Domains      []Domain
	Legal        []string
	Monetization []string
	Growth       []string
}

// orDefault returns v unless it is empty.
func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
