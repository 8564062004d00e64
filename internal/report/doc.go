// Package report orders exclusive words and renders the tabular report.
//
// Rank drops shared records and orders the rest by the selected Mode:
// first-occurrence order (ModeNone), locale collation of the word
// (ModeLexicographical), or occurrence count with collation order as a
// deterministic tie-break (ModeNumeric). Reverse flips only the primary key.
//
// Write emits the tab-separated report: a header row of document names and
// one row per word whose count sits in its owning document's column. Table
// renders the same rows as a boxed terminal table.
package report
