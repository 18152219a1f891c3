package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cinelog/internal/groupindex"
	"cinelog/internal/journal"
	"cinelog/internal/linker"
	"cinelog/internal/logging"
	"cinelog/internal/report"
)

func newLinkCommand(ctx *commandContext) *cobra.Command {
	var journalFormat string

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Resolve journal entries against the group index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			runID := uuid.NewString()
			logger = logger.With(logging.String(logging.FieldRunID, runID))

			format := cfg.Journal.Format
			if journalFormat != "" {
				format = journalFormat
			}

			entries, err := readJournal(cfg.Paths.JournalPath, format)
			if err != nil {
				return err
			}

			index, err := groupindex.Open(cmd.Context(), cfg.Paths.IndexPath, cfg.Paths.CatalogPath)
			if err != nil {
				return err
			}
			defer index.Close()

			linked, err := linker.New(index, logger).Run(cmd.Context(), entries)
			if err != nil {
				return err
			}
			if err := linker.WriteLinked(cfg.Paths.LinkedPath, linked); err != nil {
				return fmt.Errorf("write linked journal: %w", err)
			}

			stats := report.Count(linked)
			logger.Info("link run complete",
				logging.Int(logging.FieldRows, stats.Total),
				logging.Int("resolved", stats.Resolved()),
				logging.Int("ambiguous", stats.Ambiguous),
				logging.Int("unresolved", stats.Unresolved))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Linked journal written to %s\n", cfg.Paths.LinkedPath)
			fmt.Fprintf(out, "  entries:       %d\n", stats.Total)
			fmt.Fprintf(out, "  exact:         %d\n", stats.Exact)
			fmt.Fprintf(out, "  year fallback: %d\n", stats.YearFallback)
			fmt.Fprintf(out, "  ambiguous:     %d\n", stats.Ambiguous)
			fmt.Fprintf(out, "  unresolved:    %d\n", stats.Unresolved)
			return nil
		},
	}
	cmd.Flags().StringVar(&journalFormat, "format", "", "journal format override (csv or log)")
	return cmd
}

func readJournal(path, format string) ([]journal.Entry, error) {
	switch format {
	case "", "csv":
		entries, err := journal.ReadCSV(path)
		if err != nil {
			return nil, fmt.Errorf("read journal: %w", err)
		}
		return entries, nil
	case "log":
		entries, err := journal.ReadLog(path)
		if err != nil {
			return nil, fmt.Errorf("read journal: %w", err)
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("unknown journal format %q", format)
	}
}
