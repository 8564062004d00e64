package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"xwc/internal/config"
	"xwc/internal/registry"
	"xwc/internal/report"
	"xwc/internal/reportstore"
	"xwc/internal/services"
)

const runTimeLayout = "2006-01-02 15:04:05"

// queryStore serves --list-runs and --show-run.
func queryStore(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) error {
	if cfg.Store.Path == "" {
		return services.Wrap(services.ErrArgument, "store", "", "no report store configured; set --store or store.path", nil)
	}
	ctx := cmd.Context()
	store, err := reportstore.Open(ctx, cfg.Store.Path)
	if err != nil {
		return services.Wrap(services.ErrStore, "store", "open", cfg.Store.Path, err)
	}
	defer store.Close()

	runs, err := store.Runs(ctx)
	if err != nil {
		return services.Wrap(services.ErrStore, "store", "list", "", err)
	}

	out := cmd.OutOrStdout()
	if opts.showRun == "" {
		if len(runs) == 0 {
			_, err := fmt.Fprintln(out, "No stored reports")
			return err
		}
		_, err := fmt.Fprintln(out, renderRuns(runs))
		return err
	}

	id := strings.TrimSpace(opts.showRun)
	for _, run := range runs {
		if run.ID != id {
			continue
		}
		words, err := store.Words(ctx, run.ID)
		if err != nil {
			return services.Wrap(services.ErrStore, "store", "words", run.ID, err)
		}
		if err := writeStoredRun(out, run, words); err != nil {
			return services.Wrap(services.ErrWrite, "store", "show", run.ID, err)
		}
		return nil
	}
	return services.Wrap(services.ErrArgument, "store", "show", fmt.Sprintf("run %s not found", id), nil)
}

// renderRuns lists runs, newest first, one row per run.
func renderRuns(runs []reportstore.Run) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Created", "Mode", "Reverse", "Locale", "Documents"})
	for _, run := range runs {
		tw.AppendRow(table.Row{
			run.ID,
			run.CreatedAt.Local().Format(runTimeLayout),
			run.Mode,
			strconv.FormatBool(run.Reverse),
			run.Locale,
			documentSummary(run.Documents),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func documentSummary(documents []string) string {
	names := make([]string, len(documents))
	for i, doc := range documents {
		names[i] = filepath.Base(doc)
	}
	return strings.Join(names, ", ")
}

// writeStoredRun prints a persisted run in the report's tab-separated layout.
func writeStoredRun(w io.Writer, run reportstore.Run, words []reportstore.Word) error {
	recs := make([]registry.Record, 0, len(words))
	for _, word := range words {
		if word.Document < 1 || word.Document > len(run.Documents) {
			return fmt.Errorf("word %q references document %d of %d", word.Word, word.Document, len(run.Documents))
		}
		recs = append(recs, registry.Record{
			Word:  word.Word,
			Count: word.Count,
			Owner: registry.Exclusive(word.Document),
		})
	}
	return report.Write(w, run.Documents, recs)
}
