// Package services defines shared utilities consumed by the engine, the
// report store, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp the run identifier and the document being
//     scanned for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     (argument, missing input, resource, open, read, write, close, store)
//     and map them to a process exit status.
//
// Use these helpers when wiring new failure paths so diagnostics stay uniform
// across the command.
package services
