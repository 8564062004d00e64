// Package tokenize splits a document's byte stream into words.
//
// A word is a maximal run of non-boundary bytes. Whitespace bytes are always
// boundaries; ASCII punctuation bytes become boundaries when
// Options.PunctuationAsSpace is set. Classification is byte based (C locale),
// so multi-byte UTF-8 sequences are never split or merged by this package.
//
// When Options.MaxWordLength is positive only the first MaxWordLength bytes of
// a word are stored; the remaining bytes up to the next boundary are consumed
// and discarded and the emitted Token is flagged as truncated.
package tokenize
