package registry

import "strconv"

type ownerKind uint8

const (
	kindShared ownerKind = iota
	kindExclusive
)

// Owner is the exclusivity state of a word: either exclusive to one document
// or shared by several. The zero Owner is shared.
type Owner struct {
	kind     ownerKind
	document int
}

// Exclusive returns the state of a word seen only in the given 1-based document.
func Exclusive(document int) Owner {
	if document < 1 {
		panic("registry: document index must be positive, got " + strconv.Itoa(document))
	}
	return Owner{kind: kindExclusive, document: document}
}

// Shared returns the terminal state of a word seen in two or more documents.
func Shared() Owner {
	return Owner{kind: kindShared}
}

// Document returns the owning 1-based document index, or false when shared.
func (o Owner) Document() (int, bool) {
	if o.kind != kindExclusive {
		return 0, false
	}
	return o.document, true
}

// IsShared reports whether the word has been seen in more than one document.
func (o Owner) IsShared() bool {
	return o.kind == kindShared
}

// observe returns the state after a sighting in document and whether the
// sighting belongs to the owning document. Shared never compares against a
// document again.
func (o Owner) observe(document int) (Owner, bool) {
	if o.kind == kindShared {
		return o, false
	}
	if o.document == document {
		return o, true
	}
	return Shared(), false
}

func (o Owner) String() string {
	if o.IsShared() {
		return "shared"
	}
	return "document " + strconv.Itoa(o.document)
}
