package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"xwc/internal/registry"
)

// Table renders recs as a boxed table: a Word column followed by one count
// column per document. Shared records are skipped.
func Table(documents []string, recs []registry.Record) string {
	columns := len(documents) + 1

	tw := table.NewWriter()
	style := table.StyleRounded
	// Document names are paths; keep their case.
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)

	header := make(table.Row, columns)
	header[0] = "Word"
	for i, name := range documents {
		header[i+1] = name
	}
	tw.AppendHeader(header)

	for _, rec := range recs {
		doc, ok := rec.Owner.Document()
		if !ok || doc > len(documents) {
			continue
		}
		r := make(table.Row, columns)
		r[0] = rec.Word
		for i := 1; i < columns; i++ {
			r[i] = ""
		}
		r[doc] = strconv.FormatUint(rec.Count, 10)
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignRight
		if i == 0 {
			align = text.AlignLeft
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
