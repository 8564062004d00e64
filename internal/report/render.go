package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"xwc/internal/registry"
)

// Write emits the tab-separated report for recs to w. The header is a tab
// followed by each document name, tab separated. Each row is the word,
// as many tabs as the owning document's 1-based index, and the count. Shared
// records are skipped. The first write error is returned.
func Write(w io.Writer, documents []string, recs []registry.Record) error {
	bw := bufio.NewWriter(w)
	for _, name := range documents {
		bw.WriteByte('\t')
		bw.WriteString(name)
	}
	bw.WriteByte('\n')

	var num []byte
	for _, rec := range recs {
		doc, ok := rec.Owner.Document()
		if !ok {
			continue
		}
		bw.WriteString(rec.Word)
		bw.WriteString(strings.Repeat("\t", doc))
		num = strconv.AppendUint(num[:0], rec.Count, 10)
		bw.Write(num)
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
