// Package diag defines the diagnostic model shared by the lexer, the
// top-level entry point and the CLI.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with a stable string form (LEX1001).
//   - Message – short, human oriented text.
//   - Primary – the source.Span the diagnostic points at.
//   - Label – text printed beside the underline of Primary.
//   - Help – optional remediation hint.
//   - Notes – optional secondary spans.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter. BagReporter collects into a Bag, which is
// bounded (see --max-diagnostics), ordered, and supports sorting and
// deduplication.
//
// # Scope
//
// Package diag does no IO and no terminal formatting. Rendering lives in
// internal/diagfmt; FormatShortDiagnostics is the one plain-text helper kept
// here because golden tests and `--diag-format short` share it.
package diag
