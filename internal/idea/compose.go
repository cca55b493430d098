package idea

// Compose builds the product idea for a selection. It is total: an unknown
// space falls back to DefaultSpace, an unknown vibe or timeframe skips that
// overlay, and any field still empty afterwards gets a generic default.
func Compose(space, vibe, timeframe string) Document {
	d := Base(Space(space))
	d = ApplyVibe(d, Vibe(vibe))
	d = ApplyTimeframe(d, Timeframe(timeframe))
	return Finalize(d)
}

// Finalize defaults every empty field of d independently.
func Finalize(d Draft) Document {
	doc := Document{
		Name:        orDefault(d.Name, "ProductName"),
		Tagline:     orDefault(d.Tagline, "A great product for your needs."),
		Description: orDefault(d.Description, "A detailed description of the product would go here."),
		Icon:        orDefault(d.Icon, "Box"),
		Stack: Stack{
			Frontend:   orDefault(d.Stack.Frontend, "React"),
			Backend:    orDefault(d.Stack.Backend, "Node.js"),
			Auth:       orDefault(d.Stack.Auth, "JWT"),
			AI:         d.Stack.AI,
			Deployment: orDefault(d.Stack.Deployment, "Vercel"),
			Other:      d.Stack.Other,
		},
		FlowDiagram:  orDefault(d.FlowDiagram, defaultFlow),
		ERDDiagram:   orDefault(d.ERDDiagram, defaultERD),
		Tasks:        d.Tasks,
		Competitors:  d.Competitors,
		Domains:      d.Domains,
		Legal:        d.Legal,
		Monetization: d.Monetization,
		Growth:       d.Growth,
	}

	if doc.Tasks == nil {
		doc.Tasks = []Task{
			{Name: "Setup project", Tool: "CLI", Time: "1h"},
			{Name: "Build UI", Tool: "React", Time: "4h"},
			{Name: "Implement backend", Tool: "Node.js", Time: "4h"},
		}
	}
	if doc.Competitors == nil {
		doc.Competitors = []string{"Competitor A", "Competitor B"}
	}
	if doc.Domains == nil {
		doc.Domains = []Domain{
			{Name: "product.com", Available: false},
			{Name: "getproduct.io", Available: true},
		}
	}
	if doc.Legal == nil {
		doc.Legal = []string{"Privacy Policy", "Terms of Service", "Cookie notice"}
	}
	if doc.Monetization == nil {
		doc.Monetization = []string{"Free tier", "$10/mo subscription", "$100/yr plan"}
	}
	if doc.Growth == nil {
		doc.Growth = []string{"Social media", "Content marketing", "SEO optimization"}
	}
	return doc
}
