package source

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"fortio.org/safecast"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func hasBOM(content []byte) bool {
	return len(content) >= len(utf8BOM) &&
		content[0] == utf8BOM[0] && content[1] == utf8BOM[1] && content[2] == utf8BOM[2]
}

// buildLineIndex walks the content once and records the rune and byte
// offsets of every newline together with the total rune count.
func buildLineIndex(content []byte) (runeIdx []uint32, byteIdx []int, runeLen uint32) {
	runeIdx = make([]uint32, 0, 64)
	byteIdx = make([]int, 0, 64)
	var off uint32
	for i := 0; i < len(content); {
		b := content[i]
		if b == '\n' {
			runeIdx = append(runeIdx, off)
			byteIdx = append(byteIdx, i)
		}
		if b < utf8.RuneSelf {
			i++
		} else {
			_, sz := utf8.DecodeRune(content[i:])
			i += sz
		}
		off++
	}
	return runeIdx, byteIdx, off
}

// runeMarkStride is the distance in runes between byte checkpoints.
const runeMarkStride = 64

// buildRuneMarks records the byte offset of every runeMarkStride-th rune.
// Content where every rune is a single byte needs no marks.
func buildRuneMarks(content []byte, runeLen uint32) []int {
	if int(runeLen) == len(content) {
		return nil
	}
	marks := make([]int, 0, runeLen/runeMarkStride+1)
	var off uint32
	for i := 0; i < len(content); {
		if off%runeMarkStride == 0 {
			marks = append(marks, i)
		}
		if content[i] < utf8.RuneSelf {
			i++
		} else {
			_, sz := utf8.DecodeRune(content[i:])
			i += sz
		}
		off++
	}
	return marks
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: первый перевод строки с offset >= off
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo // количество '\n' строго до off

	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}
	lineNo, err := safecast.Conv[uint32](line + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: lineNo, Col: off - startOff + 1}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns the cleaned absolute form of path.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return normalizePath(abs), nil
}

// RelativePath returns path relative to baseDir. When path lies outside
// baseDir the absolute path is returned instead of a chain of "..".
func RelativePath(path, baseDir string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return normalizePath(absPath), nil
	}
	if rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return normalizePath(absPath), nil
	}
	return normalizePath(rel), nil
}

// BaseName returns the last element of path.
func BaseName(path string) string {
	return filepath.Base(path)
}
