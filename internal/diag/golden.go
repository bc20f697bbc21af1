package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"sesh/internal/source"
)

// shortLine is one row of the short format. Notes use the severity "note".
type shortLine struct {
	sev, code, path string
	line, col       uint32
	msg             string
}

func (l shortLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.line, l.col, l.msg)
}

func compareShort(a, b shortLine) int {
	return cmp.Or(
		cmp.Compare(a.path, b.path),
		cmp.Compare(a.line, b.line),
		cmp.Compare(a.col, b.col),
		cmp.Compare(a.sev, b.sev),
		cmp.Compare(a.code, b.code),
		cmp.Compare(a.msg, b.msg),
	)
}

// FormatShortDiagnostics renders one line per diagnostic:
//
//	error LEX1001 path/to/file.sel:1:5 unterminated string literal
//
// Lines are sorted by path, position, severity, code and message, and
// joined with '\n'. Diagnostics whose file is unknown to fs print the
// path "-" at 0:0; notes in unknown files are skipped.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	lines := make([]shortLine, 0, len(diags))
	for i := range diags {
		d := &diags[i]
		l, ok := locate(fs, d.Primary)
		if !ok {
			l = shortLine{path: "-"}
		}
		l.sev, l.code, l.msg = SeverityLabel(d.Severity), d.Code.ID(), oneLine(d.Message)
		lines = append(lines, l)

		if !includeNotes {
			continue
		}
		for _, note := range d.Notes {
			if nl, ok := locate(fs, note.Span); ok {
				nl.sev, nl.code, nl.msg = "note", d.Code.ID(), oneLine(note.Msg)
				lines = append(lines, nl)
			}
		}
	}
	slices.SortStableFunc(lines, compareShort)

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

// locate fills the position part of a short line.
func locate(fs *source.FileSet, span source.Span) (shortLine, bool) {
	file := fs.Get(span.File)
	if file == nil {
		return shortLine{}, false
	}
	start, _ := file.Resolve(span)
	path := filepath.ToSlash(file.FormatPath("relative", fs.BaseDir()))
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return shortLine{path: path, line: start.Line, col: start.Col}, true
}

// oneLine folds line breaks so every diagnostic stays on one row.
func oneLine(msg string) string {
	msg = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg)
	return strings.TrimSpace(msg)
}
