package idea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	sp, ok := ParseSpace("Creator Tools")
	assert.True(t, ok)
	assert.Equal(t, SpaceCreatorTools, sp)
	_, ok = ParseSpace("creator tools")
	assert.False(t, ok)

	v, ok := ParseVibe("Early-stage Startup")
	assert.True(t, ok)
	assert.Equal(t, VibeEarlyStageStartup, v)
	_, ok = ParseVibe("")
	assert.False(t, ok)

	tf, ok := ParseTimeframe("24 hours")
	assert.True(t, ok)
	assert.Equal(t, Timeframe24Hours, tf)
	_, ok = ParseTimeframe("48 hours")
	assert.False(t, ok)
}

func TestOptionOrder(t *testing.T) {
	assert.Len(t, Spaces(), 8)
	assert.Equal(t, SpaceFintech, Spaces()[0])
	assert.Equal(t, SpaceLogistics, Spaces()[7])
	assert.Equal(t, []Vibe{VibeSoloBuilder, VibeStudentTeam, VibeEarlyStageStartup}, Vibes())
	assert.Equal(t, []Timeframe{Timeframe24Hours, TimeframeWeekend, TimeframeMonth}, Timeframes())
}

func TestBaseLeavesLaterStagesEmpty(t *testing.T) {
	for _, s := range Spaces() {
		d := Base(s)
		assert.NotEmpty(t, d.Name, "space %s", s)
		assert.NotEmpty(t, d.Competitors, "space %s", s)
		assert.NotEmpty(t, d.Domains, "space %s", s)
		assert.Nil(t, d.Tasks)
		assert.Nil(t, d.Legal)
		assert.Nil(t, d.Monetization)
		assert.Nil(t, d.Growth)
		assert.Empty(t, d.FlowDiagram)
		assert.Empty(t, d.ERDDiagram)
	}
}

func TestApplyVibeUnknownPassesThrough(t *testing.T) {
	d := Base(SpaceHealth)
	assert.Equal(t, d, ApplyVibe(d, Vibe("Weekend Warrior")))
}

func TestApplyVibeLeavesIdentityFields(t *testing.T) {
	d := ApplyTimeframe(Base(SpaceAI), TimeframeWeekend)
	out := ApplyVibe(d, VibeEarlyStageStartup)
	assert.Equal(t, d.Name, out.Name)
	assert.Equal(t, d.Tagline, out.Tagline)
	assert.Equal(t, d.Description, out.Description)
	assert.Equal(t, d.Icon, out.Icon)
	assert.Equal(t, d.Competitors, out.Competitors)
	assert.Equal(t, d.Domains, out.Domains)
	assert.Equal(t, d.Tasks, out.Tasks)
	assert.Equal(t, d.FlowDiagram, out.FlowDiagram)
	assert.Equal(t, d.ERDDiagram, out.ERDDiagram)
}

func TestSoloStack(t *testing.T) {
	s := soloStack(Stack{Frontend: "Svelte", Backend: "Django", AI: "PyTorch", Other: "Stripe"})
	assert.Equal(t, "Svelte", s.Frontend)
	assert.Equal(t, "Supabase", s.Backend)
	assert.Equal(t, "JWT", s.Auth)
	assert.Equal(t, "PyTorch", s.AI)
	assert.Equal(t, "Vercel", s.Deployment)
	assert.Equal(t, "Stripe", s.Other)

	assert.Equal(t, "Firebase + Cloud Functions", soloStack(Stack{Backend: "Firebase + Cloud Functions"}).Backend)
	assert.Equal(t, "React", soloStack(Stack{}).Frontend)
}

func TestStudentStack(t *testing.T) {
	s := studentStack(Stack{Frontend: "Vue.js + Tailwind", Backend: "Node.js + MongoDB", Deployment: "AWS Amplify"})
	assert.Equal(t, "React + Chakra UI", s.Frontend)
	assert.Equal(t, "Firebase", s.Backend)
	assert.Equal(t, "Firebase Auth", s.Auth)
	assert.Equal(t, "Vercel or Netlify", s.Deployment)
	assert.Empty(t, s.Other)

	assert.Equal(t, "React Native", studentStack(Stack{Frontend: "React Native"}).Frontend)
}

func TestStartupStack(t *testing.T) {
	s := startupStack(Stack{Backend: "Node.js + PostgreSQL", Other: "ignored"})
	assert.Equal(t, "React + Redux", s.Frontend)
	assert.Equal(t, "AWS or GCP stack", s.Backend)
	assert.Equal(t, "Auth0", s.Auth)
	assert.Equal(t, "AWS/GCP", s.Deployment)
	assert.Equal(t, "Analytics + CRM integration", s.Other)

	assert.Equal(t, "Firebase", startupStack(Stack{Backend: "Firebase"}).Backend)
}

func TestApplyVibeReplacesLists(t *testing.T) {
	d := Draft{Legal: []string{"old"}, Monetization: []string{"old"}, Growth: []string{"old"}}
	out := ApplyVibe(d, VibeEarlyStageStartup)
	assert.Len(t, out.Legal, 5)
	assert.Len(t, out.Monetization, 4)
	assert.Len(t, out.Growth, 5)
	assert.Equal(t, "Investor-friendly structure", out.Legal[4])
}

func TestApplyTimeframeUnknownPassesThrough(t *testing.T) {
	d := ApplyVibe(Base(SpaceFood), VibeSoloBuilder)
	assert.Equal(t, d, ApplyTimeframe(d, Timeframe("A Year")))
}

func TestApplyTimeframeTaskCounts(t *testing.T) {
	d := Base(SpaceFintech)
	assert.Len(t, ApplyTimeframe(d, Timeframe24Hours).Tasks, 5)
	assert.Len(t, ApplyTimeframe(d, TimeframeWeekend).Tasks, 7)
	assert.Len(t, ApplyTimeframe(d, TimeframeMonth).Tasks, 10)
}

func TestApplyTimeframeFallbackTools(t *testing.T) {
	out := ApplyTimeframe(Draft{}, TimeframeMonth)
	require.Len(t, out.Tasks, 10)
	assert.Equal(t, "React", out.Tasks[3].Tool)
	assert.Equal(t, "Node.js", out.Tasks[4].Tool)
	assert.Equal(t, "Auth0", out.Tasks[5].Tool)
	assert.Equal(t, "AWS", out.Tasks[8].Tool)

	out = ApplyTimeframe(Draft{}, Timeframe24Hours)
	assert.Equal(t, "Firebase", out.Tasks[3].Tool)
	assert.Equal(t, "Vercel", out.Tasks[4].Tool)
}

func TestApplyTimeframeDiagrams(t *testing.T) {
	out := ApplyTimeframe(Draft{}, TimeframeWeekend)
	assert.Contains(t, out.FlowDiagram, "graph TD")
	assert.Contains(t, out.FlowDiagram, "D[Backend API] --> E[Data Storage]")
	assert.Contains(t, out.ERDDiagram, "Project ||--|{ Item : contains")
}
