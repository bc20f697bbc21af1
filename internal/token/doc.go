// Package token defines the lexical token kinds of the Selene language.
// Invariants:
//   - Token.Span counts runes, not bytes, and is half-open.
//   - Trivia (whitespace, newlines, comments) is part of the token stream;
//     spans of consecutive tokens cover the source exactly once.
//   - Keywords and built-in type names are reserved: the lexer never emits
//     them as Ident. `true`/`false` lex as Bool literals.
package token
