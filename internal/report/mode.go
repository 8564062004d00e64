package report

import (
	"fmt"
	"strings"
)

// Mode selects the order of report rows.
type Mode int

const (
	// ModeNone keeps first-occurrence order.
	ModeNone Mode = iota
	// ModeLexicographical orders rows by word collation.
	ModeLexicographical
	// ModeNumeric orders rows by count, then by word collation.
	ModeNumeric
)

func (m Mode) String() string {
	switch m {
	case ModeLexicographical:
		return "lexicographical"
	case ModeNumeric:
		return "numeric"
	default:
		return "none"
	}
}

// ParseMode resolves a configured sort name. Matching is case-insensitive;
// an empty value means ModeNone.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return ModeNone, nil
	case "lexicographical", "l":
		return ModeLexicographical, nil
	case "numeric":
		return ModeNumeric, nil
	default:
		return ModeNone, fmt.Errorf("unsupported sort mode %q", value)
	}
}

// Format selects how the report is rendered.
type Format string

const (
	FormatTSV   Format = "tsv"
	FormatTable Format = "table"
)

// ParseFormat resolves a configured output format. Empty means FormatTSV.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatTSV, nil
	case FormatTSV, FormatTable:
		return f, nil
	default:
		return FormatTSV, fmt.Errorf("unsupported report format %q", value)
	}
}
