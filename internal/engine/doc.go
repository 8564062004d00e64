// Package engine drives an exclusive word count over a list of documents.
//
// Documents are scanned one at a time in the order given, every token is
// accounted in a registry, and only once the whole corpus has been consumed
// are the exclusive words ranked and written. A fatal error during the scan
// therefore never leaves a partial report behind.
package engine
