// cmd/buildgen/generate.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/julianshen/buildgen/internal/config"
	"github.com/julianshen/buildgen/internal/idea"
	"github.com/julianshen/buildgen/internal/output"
	"github.com/julianshen/buildgen/internal/wizard"
)

func generateCmd() *cobra.Command {
	var (
		spaceFlag  string
		vibeFlag   string
		timeFlag   string
		outputFlag string
		fileFlag   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compose an idea without the interactive UI",
		Long: `Compose the idea for a space, vibe and time and print it. Omitted flags
fall back to the [defaults] section of the config file. Unknown values are
accepted and composed with the usual fallbacks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			sel := selectionFromFlags(cfg, spaceFlag, vibeFlag, timeFlag)
			format := outputFlag
			if format == "" {
				format = cfg.Output.Format
			}

			fm, err := output.ForName(format)
			if err != nil {
				return err
			}
			if fileFlag == "" {
				return runGenerate(cmd.OutOrStdout(), sel, fm)
			}
			return generateToFile(fileFlag, sel, fm)
		},
	}

	cmd.Flags().StringVar(&spaceFlag, "space", "", "space, e.g. \"Fintech\"")
	cmd.Flags().StringVar(&vibeFlag, "vibe", "", "vibe, e.g. \"Solo Builder\"")
	cmd.Flags().StringVar(&timeFlag, "time", "", "time available, e.g. \"A Weekend\"")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output format: json, markdown, yaml")
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "write to this file instead of stdout")

	return cmd
}

// selectionFromFlags fills empty flag values from the config defaults.
func selectionFromFlags(cfg *config.Config, space, vibe, timeframe string) wizard.Selection {
	sel := wizard.Selection{Space: space, Vibe: vibe, Time: timeframe}
	if sel.Space == "" {
		sel.Space = cfg.Defaults.Space
	}
	if sel.Vibe == "" {
		sel.Vibe = cfg.Defaults.Vibe
	}
	if sel.Time == "" {
		sel.Time = cfg.Defaults.Time
	}
	return sel
}

// generateToFile writes the idea to path. The close error is returned.
func generateToFile(path string, sel wizard.Selection, fm output.Formatter) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	return runGenerate(f, sel, fm)
}

func runGenerate(w io.Writer, sel wizard.Selection, fm output.Formatter) error {
	warnUnknown(sel)

	data, err := fm.Format(output.NewReport(sel))
	if err != nil {
		return fmt.Errorf("formatting idea: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// warnUnknown logs values that are not one of the listed options. They are
// still composed.
func warnUnknown(sel wizard.Selection) {
	if _, ok := idea.ParseSpace(sel.Space); !ok {
		slog.Warn("unknown space, using fallback idea", "space", sel.Space)
	}
	if _, ok := idea.ParseVibe(sel.Vibe); !ok {
		slog.Warn("unknown vibe, stack unchanged", "vibe", sel.Vibe)
	}
	if _, ok := idea.ParseTimeframe(sel.Time); !ok {
		slog.Warn("unknown time, using fallback plan", "time", sel.Time)
	}
}

func optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the choices for each question",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			writeOptions(cmd.OutOrStdout())
		},
	}
}

func writeOptions(w io.Writer) {
	for _, step := range []int{wizard.StepSpace, wizard.StepVibe, wizard.StepTime} {
		fmt.Fprintf(w, "%d. %s\n", step, wizard.Prompt(step))
		for _, opt := range wizard.Options(step) {
			fmt.Fprintf(w, "   - %s\n", opt)
		}
	}
	fmt.Fprintln(w, "Result tabs:")
	for _, t := range wizard.Tabs() {
		fmt.Fprintf(w, "   - %s (%s)\n", t.Title(), t)
	}
}
