package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// maxSeedBytes caps a seed taken from testdata.
const maxSeedBytes = 64 << 10

var edgeSeeds = []string{
	"",
	"proc main() { return 0; }\n",
	"..x ... . .5 5. 0x 08 1e 1e999",
	"'\\q' '' 'ab' '\n",
	"\"abc",
	"$\"grüße\" $x",
	"/* never closed",
	"#include <stdio.h>\n# 1 \"a.l\" 2\n",
	"a <<= b <-= c ->d",
	"@`\x00\xff\xfe",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range edgeSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.l файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".l" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	return slices.Clone(src[:min(len(src), maxSeedBytes)])
}
