// cmd/buildgen/export.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julianshen/buildgen/internal/catalog"
	"github.com/julianshen/buildgen/internal/output"
)

func exportCmd() *cobra.Command {
	var (
		dirFlag     string
		outputFlag  string
		workersFlag int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the idea for every combination of choices",
		Long: `Compose every space, vibe and time combination and write one file per
idea into the target directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			format := outputFlag
			if format == "" {
				format = cfg.Output.Format
			}
			f, err := output.ForName(format)
			if err != nil {
				return err
			}

			paths, err := catalog.Export(cmd.Context(), dirFlag, f, workersFlag)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d ideas to %s\n", len(paths), dirFlag)
			return nil
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "ideas", "output directory")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output format: json, markdown, yaml")
	cmd.Flags().IntVar(&workersFlag, "workers", catalog.DefaultWorkers, "max parallel writers")

	return cmd
}
