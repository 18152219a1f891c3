package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cinelog/internal/groupindex"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Group index utilities",
	}
	indexCmd.AddCommand(newIndexBuildCommand(ctx))
	indexCmd.AddCommand(newIndexStatusCommand(ctx))
	return indexCmd
}

func newIndexBuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Rebuild the persisted group index from the normalized catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			summary, err := groupindex.NewBuilder(cfg, logger).Run(cmd.Context())
			if err != nil {
				if errors.Is(err, groupindex.ErrBuildLocked) {
					return fmt.Errorf("index build: %w (wait for it to finish)", err)
				}
				return fmt.Errorf("index build: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Index written to %s\n", cfg.Paths.IndexPath)
			fmt.Fprintf(out, "  records: %d\n", summary.Records)
			fmt.Fprintf(out, "  groups:  %d\n", summary.Groups)
			return nil
		},
	}
}

func newIndexStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the persisted index's freshness and counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			index, err := groupindex.Open(cmd.Context(), cfg.Paths.IndexPath, cfg.Paths.CatalogPath)
			if err != nil {
				if errors.Is(err, groupindex.ErrIndexUnavailable) {
					fmt.Fprintf(out, "Index unavailable: %v\n", err)
					return nil
				}
				return err
			}
			defer index.Close()

			meta, err := index.Meta(cmd.Context())
			if err != nil {
				return fmt.Errorf("read index metadata: %w", err)
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Field", "Value"},
				[][]string{
					{"Path", cfg.Paths.IndexPath},
					{"Built", meta.CreatedAt},
					{"Records", fmt.Sprintf("%d", meta.Records)},
					{"Groups", fmt.Sprintf("%d", meta.Groups)},
					{"Catalog hash", meta.SourceHash},
					{"Fresh", "yes"},
				},
			))
			return nil
		},
	}
}
