package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.sel", []byte("let a = 1"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.sel")
	if !exists || latestID != id1 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latestID, exists, id1)
	}

	id2 := fs.Add("test.sel", []byte("let b = 2"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}
	latestID, _ = fs.GetLatest("test.sel")
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	if got := string(fs.Get(id1).Content); got != "let a = 1" {
		t.Errorf("old version content = %q", got)
	}
	if got := string(fs.Get(id2).Content); got != "let b = 2" {
		t.Errorf("new version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestGetUnknownFileIsNil(t *testing.T) {
	fs := NewFileSet()
	if f := fs.Get(7); f != nil {
		t.Fatalf("expected nil for unknown id, got %+v", f)
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.sel", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
	if file.RuneLen != 4 {
		t.Errorf("RuneLen = %d, want 4", file.RuneLen)
	}
}

func TestLineIndexCountsRunes(t *testing.T) {
	// "é" and "日" are multi-byte but one rune each.
	f := NewFile("u.sel", []byte("é\n日本\nx"))
	want := []uint32{1, 4}
	for i, v := range want {
		if f.LineIdx[i] != v {
			t.Errorf("LineIdx[%d] = %d, want %d", i, f.LineIdx[i], v)
		}
	}
	if f.RuneLen != 6 {
		t.Errorf("RuneLen = %d, want 6", f.RuneLen)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.sel", []byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline itself
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	f := NewFile("l.sel", []byte("first\nsecond\n\nfourth"))
	cases := map[uint32]string{
		0: "",
		1: "first",
		2: "second",
		3: "",
		4: "fourth",
		5: "",
	}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestTextUsesRuneOffsets(t *testing.T) {
	f := NewFile("t.sel", []byte("let π = \"日本\"\nx"))
	if got := f.Text(Span{Start: 4, End: 5}); got != "π" {
		t.Errorf("Text(4..5) = %q, want %q", got, "π")
	}
	if got := f.Text(Span{Start: 8, End: 12}); got != "\"日本\"" {
		t.Errorf("Text(8..12) = %q", got)
	}
	if got := f.Text(Span{Start: 13, End: 14}); got != "x" {
		t.Errorf("Text(13..14) = %q, want x", got)
	}
	if got := f.Text(Span{Start: 14, End: 99}); got != "" {
		t.Errorf("Text past end = %q, want empty", got)
	}
}

func TestByteOffsetAcrossRuneMarks(t *testing.T) {
	// 3 runes per "aπ日": marks fall inside and between multibyte runes
	content := []byte(strings.Repeat("aπ日", 100) + "\xff\n" + strings.Repeat("日", 70))
	f := NewFile("m.sel", content)
	want := 0
	for off := uint32(0); off < f.RuneLen; off++ {
		if got := f.ByteOffset(off); got != want {
			t.Fatalf("ByteOffset(%d) = %d, want %d", off, got, want)
		}
		_, sz := utf8.DecodeRune(content[want:])
		want += sz
	}
	if got := f.ByteOffset(f.RuneLen); got != len(content) {
		t.Fatalf("ByteOffset(end) = %d, want %d", got, len(content))
	}
	if got := f.Text(Span{Start: 300, End: 303}); got != "\xff\n日" {
		t.Fatalf("Text(300..303) = %q", got)
	}
}

func TestByteOffsetSingleByteContent(t *testing.T) {
	f := NewFile("a.sel", []byte("let x = 1\n\x80y"))
	if f.runeMarks != nil {
		t.Fatalf("single-byte content should not need rune marks, got %d", len(f.runeMarks))
	}
	if got := f.Text(Span{Start: 10, End: 12}); got != "\x80y" {
		t.Fatalf("Text(10..12) = %q", got)
	}
}

func TestLoadKeepsContentVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.sel")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != string(raw) {
		t.Fatalf("content was modified: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Errorf("expected FileHadBOM flag")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.sel")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFormatPath(t *testing.T) {
	f := &File{Path: "/very/long/path/that/goes/on/and/on/forever/main.sel"}
	if got := f.FormatPath("basename", ""); got != "main.sel" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != "main.sel" {
		t.Errorf("auto (long abs) = %q", got)
	}
	short := &File{Path: "src/main.sel"}
	if got := short.FormatPath("auto", ""); got != "src/main.sel" {
		t.Errorf("auto (short) = %q", got)
	}
	virtual := &File{Path: "<stdin>", Flags: FileVirtual}
	if got := virtual.FormatPath("relative", "/tmp"); got != "<stdin>" {
		t.Errorf("relative virtual = %q", got)
	}
}
