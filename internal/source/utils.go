package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"fortio.org/safecast"
)

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i++
			changed = true
			continue
		}
		out = append(out, content[i])
	}
	return out, changed
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// sniffBOM reports which byte order mark, if any, starts content.
func sniffBOM(content []byte) (hadBOM, utf16 bool) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return true, false
	case bytes.HasPrefix(content, bomUTF16BE), bytes.HasPrefix(content, bomUTF16LE):
		return true, true
	}
	return false, false
}

// countInvalidRuns считает непрерывные участки некорректного UTF-8,
// каждый из которых strings.ToValidUTF8 заменит одним U+FFFD.
func countInvalidRuns(text string) int {
	runs := 0
	inRun := false
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		bad := r == utf8.RuneError && size == 1
		if bad && !inRun {
			runs++
		}
		inRun = bad
		i += size
	}
	return runs
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("source offset overflow: %w", err))
	}
	return v
}
