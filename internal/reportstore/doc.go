// Package reportstore persists finished reports in a SQLite database.
//
// Each run stores its document list and the ranked exclusive words exactly as
// printed. Writers serialize through an exclusive file lock next to the
// database so concurrent xwc invocations sharing one store never interleave a
// run.
package reportstore
