package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xwc/internal/registry"
	"xwc/internal/report"
)

func rec(word string, count uint64, doc int) registry.Record {
	owner := registry.Shared()
	if doc > 0 {
		owner = registry.Exclusive(doc)
	}
	return registry.Record{Word: word, Count: count, Owner: owner}
}

func wordsOf(recs []registry.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Word)
	}
	return out
}

func newCollator(t *testing.T, locale string) *report.Collator {
	t.Helper()
	c, err := report.NewCollator(locale)
	if err != nil {
		t.Fatalf("NewCollator(%q): %v", locale, err)
	}
	return c
}

func TestRankModes(t *testing.T) {
	input := []registry.Record{
		rec("pear", 2, 1),
		rec("shared", 5, 0),
		rec("Banana", 1, 2),
		rec("élan", 2, 1),
		rec("apple", 3, 2),
		rec("cherry", 2, 2),
	}
	collator := newCollator(t, "fr")

	tests := []struct {
		name string
		opts report.Options
		want []string
	}{
		{"none keeps first occurrence", report.Options{}, []string{"pear", "Banana", "élan", "apple", "cherry"}},
		{"none ignores reverse", report.Options{Reverse: true, Collator: collator}, []string{"pear", "Banana", "élan", "apple", "cherry"}},
		{"lexicographical", report.Options{Mode: report.ModeLexicographical, Collator: collator}, []string{"apple", "Banana", "cherry", "élan", "pear"}},
		{"lexicographical reverse", report.Options{Mode: report.ModeLexicographical, Reverse: true, Collator: collator}, []string{"pear", "élan", "cherry", "Banana", "apple"}},
		{"lexicographical bytes without collator", report.Options{Mode: report.ModeLexicographical}, []string{"Banana", "apple", "cherry", "pear", "élan"}},
		{"numeric ties by word", report.Options{Mode: report.ModeNumeric, Collator: collator}, []string{"Banana", "cherry", "élan", "pear", "apple"}},
		{"numeric reverse keeps tie order", report.Options{Mode: report.ModeNumeric, Reverse: true, Collator: collator}, []string{"apple", "cherry", "élan", "pear", "Banana"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wordsOf(report.Rank(input, tt.opts))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRankDoesNotModifyInput(t *testing.T) {
	input := []registry.Record{rec("b", 1, 1), rec("a", 1, 1)}
	_ = report.Rank(input, report.Options{Mode: report.ModeLexicographical})
	if diff := cmp.Diff([]string{"b", "a"}, wordsOf(input)); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestCollatorTotalOrder(t *testing.T) {
	c := newCollator(t, "fr_FR.UTF-8")
	if c.Locale() != "fr-FR" {
		t.Fatalf("unexpected locale %q", c.Locale())
	}
	if c.Compare("a", "a") != 0 {
		t.Fatal("expected equal words to compare equal")
	}
	if c.Compare("élan", "zèbre") >= 0 {
		t.Fatal("expected élan before zèbre")
	}
	// Distinct words never compare equal, even when collation ignores their difference.
	if c.Compare("a\u0000", "a") == 0 {
		t.Fatal("expected distinct words to be ordered")
	}
}

func TestNewCollatorRejectsInvalidLocale(t *testing.T) {
	if _, err := report.NewCollator("not a locale!"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewCollatorDefaultsToFrench(t *testing.T) {
	c := newCollator(t, "")
	if c.Locale() != report.DefaultLocale {
		t.Fatalf("unexpected locale %q", c.Locale())
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    report.Mode
		wantErr bool
	}{
		{"", report.ModeNone, false},
		{"none", report.ModeNone, false},
		{"Lexicographical", report.ModeLexicographical, false},
		{"l", report.ModeLexicographical, false},
		{"numeric", report.ModeNumeric, false},
		{"reverse", report.ModeNone, true},
		{"bogus", report.ModeNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := report.ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := report.ParseFormat(""); err != nil || f != report.FormatTSV {
		t.Fatalf("unexpected default format: %v %v", f, err)
	}
	if f, err := report.ParseFormat("TABLE"); err != nil || f != report.FormatTable {
		t.Fatalf("unexpected table format: %v %v", f, err)
	}
	if _, err := report.ParseFormat("csv"); err == nil {
		t.Fatal("expected error for csv")
	}
}

func TestWriteLayout(t *testing.T) {
	var buf bytes.Buffer
	recs := []registry.Record{rec("cat", 2, 1), rec("dog", 1, 0), rec("bird", 1, 2), rec("owl", 12, 3)}
	if err := report.Write(&buf, []string{"A", "B", "C"}, recs); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "\tA\tB\tC\ncat\t2\nbird\t\t1\nowl\t\t\t12\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(&buf, []string{"only.txt"}, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "\tonly.txt\n" {
		t.Fatalf("unexpected report %q", buf.String())
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWritePropagatesErrors(t *testing.T) {
	boom := errors.New("disk full")
	err := report.Write(failingWriter{err: boom}, []string{"A"}, []registry.Record{rec("x", 1, 1)})
	if !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestTable(t *testing.T) {
	out := report.Table([]string{"A", "B"}, []registry.Record{rec("cat", 2, 1), rec("dog", 1, 0), rec("bird", 7, 2)})
	for _, fragment := range []string{"Word", "A", "B", "cat", "bird", "2", "7"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in table:\n%s", fragment, out)
		}
	}
	if strings.Contains(out, "dog") {
		t.Fatalf("shared word rendered:\n%s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// top border, header, separator, two rows, bottom border
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
}
