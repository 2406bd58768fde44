package source

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadFile reads a file from disk and builds a Buffer over its decoded text.
func LoadFile(path string) (*Buffer, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return FromBytes(normalizePath(path), data)
}

// FromBytes decodes raw file bytes: a UTF-16 byte order mark switches to
// UTF-16 decoding, a UTF-8 one is dropped, CRLF line ends become LF.
func FromBytes(name string, data []byte) (*Buffer, error) {
	var flags Flags
	hadBOM, utf16 := sniffBOM(data)
	if hadBOM {
		flags |= FlagHadBOM
		decoded, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		data = decoded
		if utf16 {
			flags |= FlagDecodedUTF16
		}
	}
	data, changed := normalizeCRLF(data)
	if changed {
		flags |= FlagNormalizedCRLF
	}
	return newBuffer(name, string(data), flags), nil
}
