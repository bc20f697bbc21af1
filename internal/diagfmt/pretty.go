package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sesh/internal/diag"
	"sesh/internal/source"
)

type palette struct {
	err, warn, info, bold, gutter, help *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		bold:   color.New(color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		help:   color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.bold, p.gutter, p.help} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее). Для каждой:
//
//	error[LEX1001]: unterminated string literal
//	 --> main.sel:1:9
//	  |
//	1 | let s = "open
//	  |         ^ string starts here
//	  |
//	  = help: add a closing `"` to end the string
//
// Ширина подчёркивания считается в экранных ячейках (go-runewidth).
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	items := bag.Items()
	for i := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &items[i], fs, opts, p)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "\n%s %s\n", p.bold.Sprint("..."), DroppedNote(n))
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	sev := p.severity(d.Severity)
	fmt.Fprintf(w, "%s%s\n",
		sev.Sprintf("%s[%s]", diag.SeverityLabel(d.Severity), d.Code.ID()),
		p.bold.Sprintf(": %s", d.Message))

	var f *source.File
	if fs != nil {
		f = fs.Get(d.Primary.File)
	}
	if f == nil {
		if d.Help != "" {
			fmt.Fprintf(w, "  %s %s\n", p.gutter.Sprint("="), p.help.Sprint("help: ")+d.Help)
		}
		return
	}

	start, end := f.Resolve(d.Primary)
	gutterWidth := len(strconv.FormatUint(uint64(end.Line), 10))
	pad := strings.Repeat(" ", gutterWidth)
	bar := p.gutter.Sprint("|")

	fmt.Fprintf(w, "%s%s %s:%d:%d\n", pad, p.gutter.Sprint("-->"), formatPath(fs, f, opts.PathMode), start.Line, start.Col)
	fmt.Fprintf(w, "%s %s\n", pad, bar)

	first := uint32(1)
	if opts.Context > 0 && start.Line > uint32(opts.Context) {
		first = start.Line - uint32(opts.Context)
	}
	for ln := first; ln < start.Line; ln++ {
		fmt.Fprintf(w, "%s %s %s\n", p.gutter.Sprintf("%*d", gutterWidth, ln), bar, expandTabs(strings.TrimSuffix(f.GetLine(ln), "\r"), opts.TabWidth))
	}

	line := strings.TrimSuffix(f.GetLine(start.Line), "\r")
	fmt.Fprintf(w, "%s %s %s\n", p.gutter.Sprintf("%*d", gutterWidth, start.Line), bar, expandTabs(line, opts.TabWidth))

	lead, marked := splitColumns(line, start.Col, end, start.Line)
	indent := runewidth.StringWidth(expandTabs(lead, opts.TabWidth))
	width := runewidth.StringWidth(expandTabs(marked, opts.TabWidth))
	if width < 1 {
		width = 1
	}
	underline := sev.Sprint(strings.Repeat("^", width))
	if d.Label != "" {
		underline += " " + sev.Sprint(d.Label)
	}
	fmt.Fprintf(w, "%s %s %s%s\n", pad, bar, strings.Repeat(" ", indent), underline)

	if d.Help != "" || (opts.ShowNotes && len(d.Notes) > 0) {
		fmt.Fprintf(w, "%s %s\n", pad, bar)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			msg := n.Msg
			if nf := fs.Get(n.Span.File); nf != nil && n.Span != (source.Span{}) {
				ns, _ := nf.Resolve(n.Span)
				msg = fmt.Sprintf("%s:%d:%d: %s", formatPath(fs, nf, opts.PathMode), ns.Line, ns.Col, n.Msg)
			}
			fmt.Fprintf(w, "%s %s %s\n", pad, p.gutter.Sprint("="), p.bold.Sprint("note: ")+msg)
		}
	}
	if d.Help != "" {
		fmt.Fprintf(w, "%s %s %s\n", pad, p.gutter.Sprint("="), p.help.Sprint("help: ")+d.Help)
	}
}

// splitColumns cuts line into the text before column col and the part
// covered by the span. Spans running past the line are clipped to it.
func splitColumns(line string, col uint32, end source.LineCol, lineNum uint32) (lead, marked string) {
	runes := []rune(line)
	from := min(int(col)-1, len(runes))
	to := len(runes)
	if end.Line == lineNum {
		to = min(int(end.Col)-1, len(runes))
	}
	if to < from {
		to = from
	}
	return string(runes[:from]), string(runes[from:to])
}

func expandTabs(s string, width int) string {
	if width <= 0 {
		width = 4
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}

// DroppedNote is the trailer shown when the diagnostic limit hid n items.
func DroppedNote(n int) string {
	return fmt.Sprintf("%d more diagnostic(s) not shown", n)
}
