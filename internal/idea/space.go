package idea

// Space is the problem domain chosen in the first wizard step.
type Space string

const (
	SpaceFintech      Space = "Fintech"
	SpaceEducation    Space = "Education"
	SpaceProductivity Space = "Productivity"
	SpaceHealth       Space = "Health"
	SpaceAI           Space = "AI"
	SpaceCreatorTools Space = "Creator Tools"
	SpaceFood         Space = "Food"
	SpaceLogistics    Space = "Logistics"
)

// DefaultSpace is substituted for any space without a template.
const DefaultSpace = SpaceProductivity

// Spaces returns the selectable spaces in display order.
func Spaces() []Space {
	return []Space{
		SpaceFintech,
		SpaceEducation,
		SpaceProductivity,
		SpaceHealth,
		SpaceAI,
		SpaceCreatorTools,
		SpaceFood,
		SpaceLogistics,
	}
}

// ParseSpace reports whether s names a known space.
func ParseSpace(s string) (Space, bool) {
	for _, sp := range Spaces() {
		if string(sp) == s {
			return sp, true
		}
	}
	return "", false
}

// Base returns the stage-one draft for a space. Unknown spaces get the
// DefaultSpace template. Tasks, diagrams, legal, monetization and growth are
// left for later stages.
func Base(space Space) Draft {
	switch space {
	case SpaceFintech:
		return Draft{
			Name:        "CashFlow",
			Tagline:     "Personal finance, simplified.",
			Description: "A smart personal finance tracker that helps young professionals build better spending habits with AI-powered insights and automatic categorization.",
			Icon:        "DollarSign",
			Stack: Stack{
				Frontend:   "Next.js + Tailwind CSS",
				Backend:    "Node.js + Firebase Firestore",
				Auth:       "Firebase Auth",
				AI:         "TensorFlow.js",
				Deployment: "Firebase Hosting",
			},
			Competitors: []string{"Mint", "YNAB", "PocketGuard"},
			Domains: []Domain{
				{Name: "cashflow.app", Available: false},
				{Name: "cashflowai.com", Available: true},
				{Name: "mycashflow.io", Available: true},
			},
		}
	case SpaceEducation:
		return Draft{
			Name:        "LearnLoop",
			Tagline:     "Never forget what you learn.",
			Description: "An intelligent flashcard system that uses spaced repetition and AI to help students retain information more effectively across any subject.",
			Icon:        "BookOpen",
			Stack: Stack{
				Frontend:   "React + MUI",
				Backend:    "Django + PostgreSQL",
				Auth:       "Auth0",
				AI:         "PyTorch",
				Deployment: "Heroku",
			},
			Competitors: []string{"Anki", "Quizlet", "Memrise"},
			Domains: []Domain{
				{Name: "learnloop.app", Available: true},
				{Name: "learnloop.io", Available: true},
				{Name: "getlearnloop.com", Available: true},
			},
		}
	case SpaceHealth:
		return Draft{
			Name:        "FitPulse",
			Tagline:     "Fitness that fits your life.",
			Description: "A personalized AI fitness coach that adapts workouts based on your progress, available equipment, and time constraints.",
			Icon:        "Heart",
			Stack: Stack{
				Frontend:   "Flutter",
				Backend:    "Firebase + Cloud Functions",
				Auth:       "Firebase Auth",
				AI:         "TensorFlow",
				Deployment: "App Store + Play Store",
			},
			Competitors: []string{"Fitbod", "Strong", "Nike Training Club"},
			Domains: []Domain{
				{Name: "fitpulse.app", Available: true},
				{Name: "fitpulse.ai", Available: true},
				{Name: "getfitpulse.com", Available: true},
			},
		}
	case SpaceAI:
		return Draft{
			Name:        "CopilotGPT",
			Tagline:     "AI that works alongside you.",
			Description: "An AI-powered sidekick that integrates with your favorite apps to help you draft emails, summarize documents, and generate code snippets.",
			Icon:        "Cpu",
			Stack: Stack{
				Frontend:   "Vue.js + Tailwind",
				Backend:    "Node.js + MongoDB",
				Auth:       "Auth0",
				AI:         "OpenAI API",
				Deployment: "AWS Amplify",
			},
			Competitors: []string{"Jasper AI", "Copy.ai", "GitHub Copilot"},
			Domains: []Domain{
				{Name: "copilotgpt.ai", Available: true},
				{Name: "copilot-gpt.com", Available: true},
				{Name: "aicompanion.app", Available: true},
			},
		}
	case SpaceCreatorTools:
		return Draft{
			Name:        "ContentForge",
			Tagline:     "Create content that converts.",
			Description: "An all-in-one tool for content creators to plan, create, and schedule social media content with AI-powered suggestions and analytics.",
			Icon:        "Video",
			Stack: Stack{
				Frontend:   "React + Chakra UI",
				Backend:    "Node.js + PostgreSQL",
				Auth:       "Supabase Auth",
				AI:         "OpenAI API",
				Deployment: "Netlify",
			},
			Competitors: []string{"Later", "Buffer", "Hootsuite"},
			Domains: []Domain{
				{Name: "contentforge.io", Available: true},
				{Name: "contentforge.app", Available: true},
				{Name: "getcontentforge.com", Available: true},
			},
		}
	case SpaceFood:
		return Draft{
			Name:        "MealMaster",
			Tagline:     "Meal planning made delicious.",
			Description: "A smart meal planning app that suggests recipes based on your dietary preferences, what's in your pantry, and your cooking skill level.",
			Icon:        "Utensils",
			Stack: Stack{
				Frontend:   "React Native",
				Backend:    "Firebase",
				Auth:       "Firebase Auth",
				AI:         "TensorFlow.js",
				Deployment: "App Store + Play Store",
			},
			Competitors: []string{"Mealime", "Paprika", "Yummly"},
			Domains: []Domain{
				{Name: "mealmaster.app", Available: true},
				{Name: "mealmaster.io", Available: false},
				{Name: "getmealmaster.com", Available: true},
			},
		}
	case SpaceLogistics:
		return Draft{
			Name:        "ShipSmart",
			Tagline:     "Ship smarter, not harder.",
			Description: "A logistics platform for small e-commerce businesses to compare shipping rates, print labels, and track packages across multiple carriers.",
			Icon:        "Package",
			Stack: Stack{
				Frontend:   "React + Bootstrap",
				Backend:    "Node.js + MongoDB",
				Auth:       "JWT + Passport.js",
				Deployment: "Digital Ocean",
			},
			Competitors: []string{"ShipStation", "Shippo", "EasyPost"},
			Domains: []Domain{
				{Name: "shipsmart.io", Available: false},
				{Name: "shipsmartapp.com", Available: true},
				{Name: "getshipsmart.com", Available: true},
			},
		}
	default:
		// SpaceProductivity and anything unrecognised.
		return Draft{
			Name:        "FlowTrack",
			Tagline:     "Get back your time with workflows that don't suck.",
			Description: "A solo productivity tool for automating and tracking personal workflows with zero friction. Think Trello + Notion + Cron, but designed for indie makers.",
			Icon:        "Lightbulb",
			Stack: Stack{
				Frontend:   "Next.js + TailwindCSS",
				Backend:    "Supabase",
				Auth:       "Clerk",
				AI:         "OpenAI (GPT-4)",
				Deployment: "Vercel",
			},
			Competitors: []string{"Notion", "Tana", "Sunsama"},
			Domains: []Domain{
				{Name: "flowtrack.dev", Available: true},
				{Name: "flowtrack.io", Available: true},
				{Name: "flowtrack.app", Available: false},
			},
		}
	}
}
