package fuzztests

import (
	"testing"

	"sesh/internal/lexer"
	"sesh/internal/source"
	"sesh/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.sel", input)
		file := fs.Get(fileID)

		tokens, sink := lexer.LexFile(file)
		if err := testkit.CheckTokenInvariants(file, tokens, sink.Errors()); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if err := testkit.CheckSingleTokenRelex(file, tokens, sink.Errors()); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
	})
}

// FuzzLexerStreaming checks that pulling tokens one by one yields the same
// stream as lexing the whole file.
func FuzzLexerStreaming(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		file := source.NewFile("fuzz.sel", input)

		want, sink := lexer.LexFile(file)
		lx := lexer.New(file)
		errs := 0
		for i := 0; ; i++ {
			tok, lexErr, ok := lx.Next()
			if !ok {
				if i != len(want) {
					t.Fatalf("%q: streamed %d tokens, want %d", input, i, len(want))
				}
				break
			}
			if i >= len(want) || tok != want[i] {
				t.Fatalf("%q: token %d differs", input, i)
			}
			if lexErr != nil {
				errs++
			}
		}
		if errs != sink.Len() {
			t.Fatalf("%q: streamed %d errors, want %d", input, errs, sink.Len())
		}
	})
}

func TestSeedsKeepInvariants(t *testing.T) {
	for _, seed := range testdataSeeds() {
		file := source.NewFile("seed.sel", seed)
		tokens, sink := lexer.LexFile(file)
		if err := testkit.CheckTokenInvariants(file, tokens, sink.Errors()); err != nil {
			t.Fatalf("%q: %v", seed, err)
		}
		if err := testkit.CheckSingleTokenRelex(file, tokens, sink.Errors()); err != nil {
			t.Fatalf("%q: %v", seed, err)
		}
	}
}
