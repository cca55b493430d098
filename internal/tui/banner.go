package tui

import "github.com/charmbracelet/lipgloss"

// bannerStyle uses the same adaptive color scheme as the header for consistency.
var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#6B21A8", Dark: "#C084FC"}).
	Bold(true)

// Banner is the ASCII art displayed above the wizard. It spells "BUILDGEN".
const Banner = ` ___ _   _ ___ _    ___   ___ ___ _  _
| _ ) | | |_ _| |  |   \ / __| __| \| |
| _ \ |_| || || |__| |) | (_ | _|| .` + "`" + ` |
|___/\___/|___|____|___/ \___|___|_|\_|`

// RenderBanner returns the styled banner followed by the tagline.
func RenderBanner() string {
	return bannerStyle.Render(Banner) + "\n" +
		subtleStyle.Render("Generate tailored product ideas for your next build!")
}
