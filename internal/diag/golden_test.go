package diag

import (
	"testing"

	"sesh/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/scripts/deploy.sel", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     LexInfo,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     LexUnterminatedString,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
				{Span: source.Span{File: 99, Start: 0, End: 0}, Msg: "unknown file is skipped"},
			},
		},
	}

	expected := "error LEX1001 scripts/deploy.sel:1:1 first line second\n" +
		"note LEX1001 scripts/deploy.sel:2:1 note line\n" +
		"warning LEX1000 scripts/deploy.sel:2:1 another"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortDiagnosticsEmpty(t *testing.T) {
	if got := FormatShortDiagnostics(nil, source.NewFileSet(), false); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestFormatShortDiagnosticsWithoutFile(t *testing.T) {
	diags := []Diagnostic{NewError(IOReadError, source.Span{File: source.NoFile}, "cannot read x.sel")}
	want := "error IO4001 -:0:0 cannot read x.sel"
	if got := FormatShortDiagnostics(diags, source.NewFileSet(), false); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
