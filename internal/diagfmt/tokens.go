package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"sesh/internal/source"
	"sesh/internal/token"
	"sesh/internal/types"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
	Type  string `json:"type,omitempty"`
}

// FormatTokens writes one "Kind start..end" line per token.
func FormatTokens(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%v %s\n", tok.Kind, tok.Span.Range()); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
// номер, вид, текст и позиция line:col-line:col. Type names and literals
// are annotated with the type they denote.
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.File) error {
	for i, tok := range tokens {
		startPos, endPos := file.Resolve(tok.Span)
		line := fmt.Sprintf("%3d: %-12s %-8s %q at %d:%d-%d:%d",
			i+1, tok.Kind, tok.Span.Range(), file.Text(tok.Span),
			startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if ty, ok := tokenType(tok.Kind); ok {
			line += " : " + ty.String()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, file *source.File) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		pos, _ := file.Resolve(tok.Span)
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  file.Text(tok.Span),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Line:  pos.Line,
			Col:   pos.Col,
		}
		if ty, ok := tokenType(tok.Kind); ok {
			out.Type = ty.String()
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func tokenType(k token.Kind) (types.Type, bool) {
	if ty, ok := types.FromKeyword(k); ok {
		return ty, true
	}
	return types.OfLiteral(k)
}
