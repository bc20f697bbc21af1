package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

// NoFile is a FileID no FileSet ever hands out. Diagnostics that are not
// tied to a loaded file (I/O failures) use it.
const NoFile FileID = ^FileID(0)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks files that start with a UTF-8 byte order mark.
	// The mark is kept in Content so spans stay aligned with the file on disk.
	FileHadBOM
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the rune offset of every '\n'.
	LineIdx []uint32
	// lineBytes holds the byte offset of every '\n', parallel to LineIdx.
	lineBytes []int
	// runeMarks holds the byte offset of every runeMarkStride-th rune;
	// nil when every rune is one byte.
	runeMarks []int
	// RuneLen is the total number of runes in Content.
	RuneLen uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in runes
}
