package source

// EOF is returned by Buffer.Next and Buffer.Peek once the text is exhausted.
const EOF rune = 0

// Flags records what happened to the text while it was loaded.
type Flags uint8

const (
	// FlagVirtual marks a buffer built from memory (tests, stdin).
	FlagVirtual Flags = 1 << iota
	FlagHadBOM
	FlagNormalizedCRLF
	FlagDecodedUTF16
	FlagReplacedInvalidUTF8
)

// pos is a key of the (line, col) -> byte index map.
type pos struct {
	line uint32
	col  uint32
}
