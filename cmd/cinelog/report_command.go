package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cinelog/internal/catalog"
	"cinelog/internal/linker"
	"cinelog/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var (
		showDuplicates bool
		showActionable bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize link outcomes, duplicates, and entries needing attention",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			linked, err := linker.ReadLinked(cfg.Paths.LinkedPath)
			if err != nil {
				return fmt.Errorf("read linked journal (run `cinelog link` first): %w", err)
			}
			people, err := catalog.ReadPeople(cfg.Paths.PeoplePath)
			if err != nil {
				return fmt.Errorf("read people table: %w", err)
			}

			out := cmd.OutOrStdout()
			all := !showDuplicates && !showActionable

			if all {
				printStats(out, report.Count(linked))
			}
			if all || showDuplicates {
				printDuplicates(out, report.Duplicates(linked), people)
			}
			if all || showActionable {
				printActionable(out, report.Actionable(linked))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showDuplicates, "duplicates", false, "show only duplicate watch entries")
	cmd.Flags().BoolVar(&showActionable, "actionable", false, "show only entries needing manual resolution")
	return cmd
}

func printStats(out io.Writer, stats report.Stats) {
	rows := [][]string{
		{"Entries", strconv.Itoa(stats.Total)},
		{"Exact", strconv.Itoa(stats.Exact)},
		{"Year fallback", strconv.Itoa(stats.YearFallback)},
		{"Ambiguous", strconv.Itoa(stats.Ambiguous)},
		{"Unresolved", strconv.Itoa(stats.Unresolved)},
		{"Match rate", fmt.Sprintf("%.1f%%", stats.MatchRate()*100)},
	}
	fmt.Fprintln(out, renderTable([]string{"Outcome", "Count"}, rows, 2))
}

func printDuplicates(out io.Writer, groups []report.DuplicateGroup, people map[string]string) {
	if len(groups) == 0 {
		fmt.Fprintln(out, "No duplicate watch entries.")
		return
	}
	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		first := group.Entries[0]
		watches := make([]string, 0, len(group.Entries))
		for _, entry := range group.Entries {
			watches = append(watches, describeWatch(entry))
		}
		rows = append(rows, []string{
			group.ResolvedID,
			first.Entry.Title,
			directorNames(*first.Resolved, people),
			strconv.Itoa(len(group.Entries)),
			strings.Join(watches, "; "),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Directors", "Times", "Watched"}, rows, 4))
}

func printActionable(out io.Writer, entries []linker.LinkedEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries need attention.")
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			strconv.Itoa(entry.Entry.Position),
			entry.Entry.Title,
			formatEntryYear(entry),
			string(entry.Outcome),
			strings.Join(entry.CandidateIDs(), ", "),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Line", "Title", "Year", "Outcome", "Candidates"}, rows, 1, 3))
}

func describeWatch(entry linker.LinkedEntry) string {
	if entry.Entry.Watched != "" {
		return entry.Entry.Watched
	}
	return fmt.Sprintf("line %d", entry.Entry.Position)
}

func formatEntryYear(entry linker.LinkedEntry) string {
	if !entry.Entry.HasYear() {
		return ""
	}
	return strconv.Itoa(entry.Entry.Year)
}

func directorNames(record catalog.Record, people map[string]string) string {
	if len(record.Directors) == 0 {
		return ""
	}
	names := make([]string, 0, len(record.Directors))
	for _, id := range record.Directors {
		if name, ok := people[id]; ok {
			names = append(names, name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}
