// Package registry tracks, for every distinct word of a corpus, whether it is
// still exclusive to a single document and how often it occurred there.
//
// Records live in one ordered map: a slice holding records in creation order
// and an index from word to slice position. Ownership is a one-way state
// machine: a word starts exclusive to the document it was first seen in and
// becomes shared, permanently, the first time it is seen in another document.
package registry
