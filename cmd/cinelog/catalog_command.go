package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cinelog/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Normalized catalog utilities",
	}
	catalogCmd.AddCommand(newCatalogBuildCommand(ctx))
	return catalogCmd
}

func newCatalogBuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the normalized catalog from the bulk dataset dumps",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			summary, err := catalog.NewLoader(cfg, logger).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("catalog build: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Catalog written to %s\n", cfg.Paths.CatalogPath)
			fmt.Fprintf(out, "  records: %d\n", summary.Records)
			if summary.Skipped > 0 {
				fmt.Fprintf(out, "  malformed rows skipped: %d\n", summary.Skipped)
			}
			if summary.Duplicates > 0 {
				fmt.Fprintf(out, "  duplicate rows dropped: %d\n", summary.Duplicates)
			}
			if cfg.Catalog.IncludePeople {
				fmt.Fprintf(out, "  director names: %d (%s)\n", summary.People, cfg.Paths.PeoplePath)
			}
			fmt.Fprintln(out, "Run `cinelog index build` to refresh the group index.")
			return nil
		},
	}
}
