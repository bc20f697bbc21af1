package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// inlineSeeds cover the literal forms that are easy to get wrong.
var inlineSeeds = []string{
	"",
	"let x = 1",
	"1.", "1..2", "1.5xyz", "7sec", "3KB", "12é",
	"\"", "\"abc", "\"a\\\"", "\"a\\",
	"// comment\n/", "||&&|&",
	"\u00a0\u2003x\u3000", "\ufeffecho",
	"\xff\xfe", "\u0663\u0664", "e\u0301",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	for _, seed := range testdataSeeds() {
		f.Add(seed)
	}
}

// testdataSeeds collects every *.sel file under the repository testdata.
func testdataSeeds() [][]byte {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return nil
	}
	var seeds [][]byte
	// проходим по дереву testdata, добавляем все *.sel файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".sel" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		seeds = append(seeds, clampSeed(src))
		return nil
	})
	return seeds
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
