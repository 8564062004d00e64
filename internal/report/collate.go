package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	textlang "golang.org/x/text/language"

	"xwc/internal/language"
)

// DefaultLocale is the collation locale used when none is configured.
const DefaultLocale = "fr-FR"

// Collator compares words under a locale's collation rules.
// It is not safe for concurrent use.
type Collator struct {
	tag textlang.Tag
	c   *collate.Collator
}

// NewCollator builds a Collator for locale. Any form accepted by
// language.NormalizeLocale is allowed; empty selects DefaultLocale.
func NewCollator(locale string) (*Collator, error) {
	normalized := language.NormalizeLocale(locale)
	if normalized == "" {
		normalized = DefaultLocale
	}
	tag, err := textlang.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("collation locale %q: %w", locale, err)
	}
	return &Collator{tag: tag, c: collate.New(tag)}, nil
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b. Words that collate equal are ordered by their bytes so the
// result is a total order.
func (c *Collator) Compare(a, b string) int {
	if r := c.c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// Locale returns the BCP 47 tag the collator was built for.
func (c *Collator) Locale() string {
	return c.tag.String()
}
