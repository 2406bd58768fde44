package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/vmihailenco/msgpack/v5"

	"alef/internal/source"
	"alef/internal/token"
)

// TokenFormat selects how `alef lex` prints the token stream.
type TokenFormat string

const (
	FormatPlain   TokenFormat = "plain"
	FormatPretty  TokenFormat = "pretty"
	FormatJSON    TokenFormat = "json"
	FormatMsgpack TokenFormat = "msgpack"
	FormatDump    TokenFormat = "dump"
)

// ParseTokenFormat accepts the --format flag values.
func ParseTokenFormat(s string) (TokenFormat, error) {
	switch f := TokenFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPlain, nil
	case FormatPlain, FormatPretty, FormatJSON, FormatMsgpack, FormatDump:
		return f, nil
	}
	return "", fmt.Errorf("unknown token format %q (want plain|pretty|json|msgpack|dump)", s)
}

// TokenOutput is the serialized form of a token.
type TokenOutput struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text,omitempty" msgpack:"text,omitempty"`
	Value string `json:"value" msgpack:"value"`
	Valid bool   `json:"valid" msgpack:"valid"`
	Start Pos    `json:"start" msgpack:"start"`
	End   *Pos   `json:"end,omitempty" msgpack:"end,omitempty"`
}

// Pos is a resolved position.
type Pos struct {
	Line  uint32 `json:"line" msgpack:"line"`
	Col   uint32 `json:"col" msgpack:"col"`
	Index uint32 `json:"index" msgpack:"index"`
}

// TokenStream is the root object of JSON and msgpack output.
type TokenStream struct {
	File     string          `json:"file" msgpack:"file"`
	Tokens   []TokenOutput   `json:"tokens" msgpack:"tokens"`
	Comments []CommentOutput `json:"comments,omitempty" msgpack:"comments,omitempty"`
}

// CommentOutput is the serialized form of a comment.
type CommentOutput struct {
	Text  string `json:"text" msgpack:"text"`
	Block bool   `json:"block" msgpack:"block"`
	Start Pos    `json:"start" msgpack:"start"`
}

func posOf(l source.Location) Pos {
	return Pos{Line: l.Line, Col: l.Col, Index: l.Index}
}

// BuildTokenStream converts tokens and comments for serialization.
func BuildTokenStream(file string, tokens []token.Token, comments []token.Comment) TokenStream {
	out := TokenStream{File: file, Tokens: make([]TokenOutput, 0, len(tokens))}
	for _, tok := range tokens {
		to := TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Range.Content,
			Value: tok.String(),
			Valid: tok.Valid,
			Start: posOf(tok.Range.Start),
		}
		if tok.Range.HasEnd() {
			end := posOf(tok.Range.End)
			to.End = &end
		}
		out.Tokens = append(out.Tokens, to)
	}
	for _, c := range comments {
		out.Comments = append(out.Comments, CommentOutput{
			Text:  c.Text,
			Block: c.IsBlock(),
			Start: posOf(c.Range.Start),
		})
	}
	return out
}

// FormatTokens dispatches on format.
func FormatTokens(w io.Writer, format TokenFormat, file string, tokens []token.Token, comments []token.Comment) error {
	switch format {
	case FormatPretty:
		return FormatTokensPretty(w, tokens)
	case FormatJSON:
		return FormatTokensJSON(w, BuildTokenStream(file, tokens, comments))
	case FormatMsgpack:
		return FormatTokensMsgpack(w, BuildTokenStream(file, tokens, comments))
	case FormatDump:
		return FormatTokensDump(w, tokens)
	default:
		return FormatTokensPlain(w, tokens)
	}
}

// FormatTokensPlain prints the display form of each token, one per line.
func FormatTokensPlain(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensPretty prints an aligned table: index, position, kind,
// display form and a marker for invalid literals.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		start := tok.Range.Start
		pos := fmt.Sprintf("%d:%d", start.Line, start.Col)
		if tok.Range.HasEnd() {
			pos += fmt.Sprintf("-%d:%d", tok.Range.End.Line, tok.Range.End.Col)
		}
		mark := ""
		if !tok.Valid {
			mark = "  (invalid)"
		}
		if _, err := fmt.Fprintf(w, "%4d  %-13s %-10s %s%s\n", i+1, pos, tok.Kind, tok, mark); err != nil {
			return err
		}
	}
	return nil
}

func FormatTokensJSON(w io.Writer, stream TokenStream) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(stream)
}

func FormatTokensMsgpack(w io.Writer, stream TokenStream) error {
	enc := msgpack.NewEncoder(w)
	enc.SetOmitEmpty(true)
	return enc.Encode(stream)
}

// FormatTokensDump writes the raw token structs for debugging.
func FormatTokensDump(w io.Writer, tokens []token.Token) error {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisableMethods:          true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	cfg.Fdump(w, tokens)
	return nil
}

// FormatComments prints collected comments after the token stream.
func FormatComments(w io.Writer, comments []token.Comment) error {
	for _, c := range comments {
		if _, err := fmt.Fprintf(w, "comment %s %q\n", c.Range.Start, c.Text); err != nil {
			return err
		}
	}
	return nil
}
