package driver

import (
	"context"
	"fmt"
	"strconv"

	"sesh/internal/diag"
	"sesh/internal/lexer"
	"sesh/internal/observ"
	"sesh/internal/source"
	"sesh/internal/token"
	"sesh/internal/trace"
)

// TokenizeResult holds the tokens of one file and its diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Sink    *lexer.Sink
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it. Lexical errors land in the result's
// Bag; the returned error is only for I/O failures.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, "tokenize")
	defer span.End("")
	timer := observ.TimerFrom(ctx)

	done := timer.Track("load")
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	done(path)
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", path, err)
	}
	file := fs.Get(fileID)

	done = timer.Track("lex")
	tokens, sink := lexFile(ctx, file)
	done(strconv.Itoa(len(tokens)) + " tokens")

	bag := diag.NewBag(maxDiagnostics)
	sink.Report(diag.BagReporter{Bag: bag})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Sink:    sink,
		Bag:     bag,
	}, nil
}

// lexFile lexes file under a file-scoped trace span. At debug level every
// lexical error is also recorded as a point event.
func lexFile(ctx context.Context, file *source.File) ([]token.Token, *lexer.Sink) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file:"+file.Path, trace.CurrentSpan(ctx))
	tokens, sink := lexer.LexFile(file)
	for _, err := range sink.Errors() {
		trace.Point(tracer, trace.ScopeToken, err.Code().ID(), err.Error(), span.ID())
	}
	span.Set("tokens", strconv.Itoa(len(tokens))).
		Set("errors", strconv.Itoa(sink.Len())).
		End("")
	return tokens, sink
}

func ioDiagnostic(path string, err error) diag.Diagnostic {
	return diag.NewError(diag.IOReadError, source.Span{File: source.NoFile},
		fmt.Sprintf("cannot read %s: %v", path, err))
}
