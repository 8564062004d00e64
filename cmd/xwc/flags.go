package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"xwc/internal/report"
)

var (
	_ pflag.Value = (*sortValue)(nil)
	_ pflag.Value = (*modeFlag)(nil)
	_ pflag.Value = (*initialValue)(nil)
)

// sortSelection collects the sort-family flags. Later flags replace the
// mode chosen by earlier ones; reverse accumulates.
type sortSelection struct {
	mode    report.Mode
	set     bool
	reverse bool
}

func (s *sortSelection) choose(mode report.Mode) {
	s.mode = mode
	s.set = true
}

// sortValue implements -s/--sort TYPE.
type sortValue struct {
	sel *sortSelection
	raw string
}

func (v *sortValue) String() string { return v.raw }

func (v *sortValue) Set(value string) error {
	switch value {
	case "numeric":
		v.sel.choose(report.ModeNumeric)
	case "lexicographical", "l":
		v.sel.choose(report.ModeLexicographical)
	case "none":
		v.sel.choose(report.ModeNone)
	case "reverse":
		v.sel.reverse = true
	case "n", "S":
		return fmt.Errorf("ambiguous argument '%s'", value)
	default:
		return fmt.Errorf("invalid argument '%s' (want numeric, lexicographical, l, reverse or none)", value)
	}
	v.raw = value
	return nil
}

func (v *sortValue) Type() string { return "TYPE" }

// modeFlag implements the -l, -n and -S shorthands. It is registered with
// NoOptDefVal "true" so it behaves like a boolean switch.
type modeFlag struct {
	sel  *sortSelection
	mode report.Mode
	on   bool
}

func (f *modeFlag) String() string { return strconv.FormatBool(f.on) }

func (f *modeFlag) Set(value string) error {
	on, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	f.on = on
	if on {
		f.sel.choose(f.mode)
	}
	return nil
}

func (f *modeFlag) Type() string { return "bool" }

// initialValue implements -i/--initial VALUE: a non-negative decimal count
// of significant initial bytes.
type initialValue struct {
	n   int
	set bool
}

func (v *initialValue) String() string { return strconv.Itoa(v.n) }

func (v *initialValue) Set(value string) error {
	n, err := strconv.ParseInt(value, 10, 0)
	if err != nil {
		return fmt.Errorf("invalid argument '%s'", value)
	}
	if n < 0 {
		return fmt.Errorf("argument '%s' out of range", value)
	}
	v.n = int(n)
	v.set = true
	return nil
}

func (v *initialValue) Type() string { return "VALUE" }
