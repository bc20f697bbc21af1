// Package testkit holds checks shared by the lexer tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sesh/internal/lexer"
	"sesh/internal/source"
	"sesh/internal/token"
)

// CheckTokenInvariants verifies the token stream of file:
// 1) every token is non-empty and belongs to file
// 2) tokens are contiguous, start at 0 and end at file.RuneLen
// 3) concatenated token texts reproduce the content byte for byte
// 4) every error span is non-empty, inside the file and inside one token
func CheckTokenInvariants(file *source.File, tokens []token.Token, errs []lexer.Error) error {
	if file == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if file.RuneLen > lenContent {
		return fmt.Errorf("rune length %d exceeds byte length %d", file.RuneLen, lenContent)
	}

	// 1) + 2)
	var pos uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != file.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, file.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%v) has empty span %v", i, tok.Kind, sp)
		}
		if sp.Start != pos {
			return fmt.Errorf("token %d (%v) starts at %d, previous ended at %d", i, tok.Kind, sp.Start, pos)
		}
		pos = sp.End
	}
	if pos != file.RuneLen {
		return fmt.Errorf("tokens end at %d, file has %d runes", pos, file.RuneLen)
	}

	// 3)
	var text []byte
	for _, tok := range tokens {
		text = append(text, file.Text(tok.Span)...)
	}
	if string(text) != string(file.Content) {
		return fmt.Errorf("token texts do not reproduce the content")
	}

	// 4)
	for _, e := range errs {
		sp := e.Primary()
		if sp.File != file.ID {
			return fmt.Errorf("error %s span file mismatch: got=%d want=%d", e.Code().ID(), sp.File, file.ID)
		}
		if sp.End <= sp.Start || sp.End > file.RuneLen {
			return fmt.Errorf("error %s has bad span %v", e.Code().ID(), sp)
		}
		if !insideOneToken(tokens, sp) {
			return fmt.Errorf("error %s span %v crosses a token boundary", e.Code().ID(), sp)
		}
	}
	return nil
}

func insideOneToken(tokens []token.Token, sp source.Span) bool {
	for _, tok := range tokens {
		if tok.Span.Start <= sp.Start && sp.End <= tok.Span.End {
			return true
		}
	}
	return false
}

// CheckSingleTokenRelex re-lexes the text of each self-delimiting token on
// its own and expects exactly one token of the same kind back. Trivia,
// punctuation, operators, Unknown and terminated strings qualify; numbers,
// identifiers, keywords and bools depend on their neighbours and are skipped.
func CheckSingleTokenRelex(file *source.File, tokens []token.Token, errs []lexer.Error) error {
	unterminated := make(map[uint32]bool)
	for _, e := range errs {
		if u, ok := e.(*lexer.UnterminatedString); ok {
			unterminated[u.Span.Start] = true
		}
	}
	for i, tok := range tokens {
		if !relexStable(tok.Kind) || tok.Kind == token.String && unterminated[tok.Span.Start] {
			continue
		}
		text := file.Text(tok.Span)
		again, _ := lexer.Lex(text)
		if len(again) != 1 || again[0].Kind != tok.Kind {
			return fmt.Errorf("token %d (%v) %q re-lexes to %v", i, tok.Kind, text, relexKinds(again))
		}
	}
	return nil
}

func relexStable(k token.Kind) bool {
	return k.IsTrivia() || k.IsPunct() || k.IsOperator() || k == token.Unknown || k == token.String
}

func relexKinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}
