package report

import (
	"cmp"
	"slices"
	"strings"

	"xwc/internal/registry"
)

// Options controls ordering.
type Options struct {
	Mode    Mode
	Reverse bool
	// Collator orders words for ModeLexicographical and ModeNumeric. When nil,
	// words are compared by their bytes.
	Collator *Collator
}

// Rank returns the exclusive records of recs in report order. Shared
// records are dropped. recs is not modified.
func Rank(recs []registry.Record, opts Options) []registry.Record {
	out := make([]registry.Record, 0, len(recs))
	for _, rec := range recs {
		if !rec.Owner.IsShared() {
			out = append(out, rec)
		}
	}

	compareWords := strings.Compare
	if opts.Collator != nil {
		compareWords = opts.Collator.Compare
	}

	switch opts.Mode {
	case ModeLexicographical:
		slices.SortStableFunc(out, func(a, b registry.Record) int {
			if opts.Reverse {
				return compareWords(b.Word, a.Word)
			}
			return compareWords(a.Word, b.Word)
		})
	case ModeNumeric:
		// Words first so that equal counts keep ascending word order; the
		// reverse flag never applies to this pass.
		slices.SortStableFunc(out, func(a, b registry.Record) int {
			return compareWords(a.Word, b.Word)
		})
		slices.SortStableFunc(out, func(a, b registry.Record) int {
			if opts.Reverse {
				return cmp.Compare(b.Count, a.Count)
			}
			return cmp.Compare(a.Count, b.Count)
		})
	}
	return out
}
