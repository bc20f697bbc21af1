package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files and resolves spans to
// line/column positions.
type FileSet struct {
	files   []File
	index   map[string]FileID // path -> id
	baseDir string            // base for relative paths in diagnostics
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// NewFileSetWithBase creates a FileSet that renders paths relative to baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// SetBaseDir sets the base directory used for relative paths.
func (fileSet *FileSet) SetBaseDir(dir string) {
	fileSet.baseDir = dir
}

// BaseDir returns the base directory, falling back to the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Len returns the number of files in the set.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Add stores content verbatim, builds the line index and hash, and returns
// a new FileID. A second Add for the same path creates a new version.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if hasBOM(content) {
		flags |= FileHadBOM
	}
	lineIdx, lineBytes, runeLen := buildLineIndex(content)
	runeMarks := buildRuneMarks(content, runeLen)
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:        id,
		Path:      normalizedPath,
		Content:   content,
		LineIdx:   lineIdx,
		lineBytes: lineBytes,
		runeMarks: runeMarks,
		RuneLen:   runeLen,
		Hash:      sha256.Sum256(content),
		Flags:     flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk and adds it unchanged.
// Content is not normalised: spans must index the file exactly as written.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fileSet.Add(path, content, 0), nil
}

// AddVirtual adds an in-memory file (stdin, tests) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file for id, or nil when id is unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	if f == nil {
		return LineCol{}, LineCol{}
	}
	return f.Resolve(span)
}

// NewFile builds a standalone File for content that does not belong to a
// FileSet. Its ID is zero.
func NewFile(path string, content []byte) *File {
	fs := NewFileSet()
	return fs.Get(fs.AddVirtual(path, content))
}

// Resolve converts a span of this file into line and column positions.
func (f *File) Resolve(span Span) (start, end LineCol) {
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// LineCount returns the number of lines; an empty file has one line.
func (f *File) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(f.LineIdx) + 1)
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return n
}

// lineBounds returns the byte range and starting rune offset of a 1-based line.
func (f *File) lineBounds(lineNum uint32) (startByte, endByte int, startRune uint32, ok bool) {
	if lineNum == 0 || lineNum > f.LineCount() {
		return 0, 0, 0, false
	}
	i := int(lineNum - 1)
	if i > 0 {
		startByte = f.lineBytes[i-1] + 1
		startRune = f.LineIdx[i-1] + 1
	}
	if i < len(f.lineBytes) {
		endByte = f.lineBytes[i]
	} else {
		endByte = len(f.Content)
	}
	return startByte, endByte, startRune, true
}

// GetLine returns the text of a 1-based line without its newline.
// Unknown lines yield "".
func (f *File) GetLine(lineNum uint32) string {
	start, end, _, ok := f.lineBounds(lineNum)
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

// ByteOffset maps a rune offset to its byte offset in Content.
// Offsets past the end clamp to len(Content).
func (f *File) ByteOffset(off uint32) int {
	if off >= f.RuneLen {
		return len(f.Content)
	}
	if f.runeMarks == nil {
		return int(off)
	}
	// не больше runeMarkStride-1 шагов от ближайшей отметки
	pos := f.runeMarks[off/runeMarkStride]
	for n := off % runeMarkStride; n > 0 && pos < len(f.Content); n-- {
		if f.Content[pos] < utf8.RuneSelf {
			pos++
			continue
		}
		_, sz := utf8.DecodeRune(f.Content[pos:])
		pos += sz
	}
	return pos
}

// Text returns the source text covered by span.
func (f *File) Text(span Span) string {
	start := f.ByteOffset(span.Start)
	end := f.ByteOffset(span.End)
	if end < start {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders the path according to mode:
// "absolute", "relative", "basename" or "auto".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path

	case "relative":
		if f.Flags&FileVirtual != 0 {
			return f.Path
		}
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path

	case "basename":
		return BaseName(f.Path)

	case "auto":
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)

	default:
		return f.Path
	}
}
