package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianshen/buildgen/internal/config"
	"github.com/julianshen/buildgen/internal/output"
	"github.com/julianshen/buildgen/internal/wizard"
)

// ConfigForm wraps a Huh form for editing buildgen configuration.
type ConfigForm struct {
	form     *huh.Form
	cfg      *config.Config
	savePath string
}

// NewConfigForm creates a config editor form populated from the given config.
func NewConfigForm(cfg *config.Config, savePath string) *ConfigForm {
	cf := &ConfigForm{
		cfg:      cfg,
		savePath: savePath,
	}

	defaultsGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Default space").
			Options(huh.NewOptions(wizard.Options(wizard.StepSpace)...)...).
			Value(&cfg.Defaults.Space),
		huh.NewSelect[string]().
			Title("Default vibe").
			Options(huh.NewOptions(wizard.Options(wizard.StepVibe)...)...).
			Value(&cfg.Defaults.Vibe),
		huh.NewSelect[string]().
			Title("Default time").
			Options(huh.NewOptions(wizard.Options(wizard.StepTime)...)...).
			Value(&cfg.Defaults.Time),
	).Title("Defaults")

	outputGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Output format").
			Options(huh.NewOptions(output.Names()...)...).
			Value(&cfg.Output.Format),
		huh.NewSelect[string]().
			Title("Markdown style").
			Options(
				huh.NewOption("Dark", "dark"),
				huh.NewOption("Light", "light"),
				huh.NewOption("No colour", "notty"),
			).
			Value(&cfg.TUI.Style),
	).Title("Output")

	serverGroup := huh.NewGroup(
		huh.NewInput().
			Title("Listen address").
			Placeholder(":8080").
			Value(&cfg.Server.Addr),
	).Title("Server")

	cf.form = huh.NewForm(defaultsGroup, outputGroup, serverGroup)

	return cf
}

// GroupCount returns the number of form groups.
func (c *ConfigForm) GroupCount() int { return 3 }

// Save persists the config to disk.
func (c *ConfigForm) Save() error {
	return config.Save(c.savePath, c.cfg)
}

// Form returns the underlying huh.Form for Bubble Tea embedding.
func (c *ConfigForm) Form() *huh.Form { return c.form }

// SetForm replaces the underlying huh.Form. This is used when the form's
// Update method returns a new Form instance.
func (c *ConfigForm) SetForm(f *huh.Form) { c.form = f }

// IsCompleted returns true if the form has been completed (submitted).
func (c *ConfigForm) IsCompleted() bool { return c.form.State == huh.StateCompleted }

// IsAborted returns true if the form has been aborted (cancelled).
func (c *ConfigForm) IsAborted() bool { return c.form.State == huh.StateAborted }
