package idea

import "strings"

// Vibe is the team composition chosen in the second wizard step.
type Vibe string

const (
	VibeSoloBuilder       Vibe = "Solo Builder"
	VibeStudentTeam       Vibe = "Student Team"
	VibeEarlyStageStartup Vibe = "Early-stage Startup"
)

// Vibes returns the selectable vibes in display order.
func Vibes() []Vibe {
	return []Vibe{VibeSoloBuilder, VibeStudentTeam, VibeEarlyStageStartup}
}

// ParseVibe reports whether s names a known vibe.
func ParseVibe(s string) (Vibe, bool) {
	for _, v := range Vibes() {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// ApplyVibe overlays the vibe adjustments onto d. The stack is recomputed
// field by field and legal, monetization and growth are replaced. All other
// fields pass through. An unknown vibe returns d unchanged.
func ApplyVibe(d Draft, vibe Vibe) Draft {
	switch vibe {
	case VibeSoloBuilder:
		d.Stack = soloStack(d.Stack)
		d.Legal = []string{
			"Basic Privacy Policy",
			"Simple Terms of Service",
			"Cookie notice",
			"GDPR compliance basics",
		}
		d.Monetization = []string{
			"Freemium model",
			"$9/mo Pro plan",
			"$99 lifetime deal",
			"Launch on AppSumo",
		}
		d.Growth = []string{
			"Product Hunt launch",
			"Twitter/X build in public",
			"Join indie hacker communities",
			"Create content around your niche",
		}
	case VibeStudentTeam:
		d.Stack = studentStack(d.Stack)
		d.Legal = []string{
			"Open source license",
			"Simple Privacy Policy",
			"Basic Terms of Use",
		}
		d.Monetization = []string{
			"Free for students",
			"Open core model",
			"Optional donations",
			"School/university partnerships",
		}
		d.Growth = []string{
			"Campus ambassador program",
			"Student hackathons",
			"University startup competitions",
			"Educational partnerships",
		}
	case VibeEarlyStageStartup:
		d.Stack = startupStack(d.Stack)
		d.Legal = []string{
			"Comprehensive Privacy Policy",
			"Detailed Terms of Service",
			"User data agreement",
			"GDPR & CCPA compliance",
			"Investor-friendly structure",
		}
		d.Monetization = []string{
			"Tiered subscription model",
			"Enterprise plan",
			"White label options",
			"API access for premium users",
		}
		d.Growth = []string{
			"SEO optimization",
			"Content marketing strategy",
			"Paid acquisition channels",
			"Affiliate program",
			"Partnerships with complementary tools",
		}
	}
	return d
}

// keepIfContains returns existing when it mentions keyword, else override.
func keepIfContains(existing, keyword, override string) string {
	if strings.Contains(existing, keyword) {
		return existing
	}
	return override
}

func soloStack(s Stack) Stack {
	return Stack{
		Frontend:   orDefault(s.Frontend, "React"),
		Backend:    keepIfContains(s.Backend, "Firebase", "Supabase"),
		Auth:       orDefault(s.Auth, "JWT"),
		AI:         s.AI,
		Deployment: orDefault(s.Deployment, "Vercel"),
		Other:      s.Other,
	}
}

// studentStack only guards the frontend with a keyword check; the backend
// and deployment always take the free-tier defaults.
func studentStack(s Stack) Stack {
	return Stack{
		Frontend:   keepIfContains(s.Frontend, "React", "React + Chakra UI"),
		Backend:    "Firebase",
		Auth:       orDefault(s.Auth, "Firebase Auth"),
		AI:         s.AI,
		Deployment: "Vercel or Netlify",
		Other:      s.Other,
	}
}

func startupStack(s Stack) Stack {
	return Stack{
		Frontend:   orDefault(s.Frontend, "React + Redux"),
		Backend:    keepIfContains(s.Backend, "Firebase", "AWS or GCP stack"),
		Auth:       orDefault(s.Auth, "Auth0"),
		AI:         s.AI,
		Deployment: orDefault(s.Deployment, "AWS/GCP"),
		Other:      "Analytics + CRM integration",
	}
}
