// Command xwc prints, for a list of documents, the words that occur in
// exactly one of them together with their number of occurrences.
//
// The report is written to standard output as tab separated values (or a
// rounded table with --format table). Diagnostics and logs go to standard
// error. Settings come from the TOML file at ~/.config/xwc/config.toml (or
// --config / XWC_CONFIG) and are overridden by command-line flags.
package main
