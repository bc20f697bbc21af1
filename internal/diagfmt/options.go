package diagfmt

import "sesh/internal/source"

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int8 // строк исходника перед основной строкой
	PathMode PathMode
	// TabWidth is the number of cells a tab expands to; 0 means 4.
	TabWidth  int
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}

func formatPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	base := ""
	if mode == PathModeRelative {
		base = fs.BaseDir()
	}
	return f.FormatPath(mode.String(), base)
}
