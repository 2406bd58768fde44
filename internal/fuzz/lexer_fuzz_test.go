package fuzztests

import (
	"testing"

	"alef/internal/diag"
	"alef/internal/lexer"
	"alef/internal/source"
	"alef/internal/testkit"
	"alef/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTotality(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}

		buf, err := source.FromBytes("fuzz.l", input)
		if err != nil {
			t.Skip()
		}
		lx := lexer.New(buf, lexer.Options{Diagnostics: diag.NewBag(64)})

		// каждый токен съедает хотя бы один символ, значит End наступит
		// не позже чем через длину текста плюс один токен
		limit := buf.Len() + 1
		var toks []token.Token
		for {
			if len(toks) > limit {
				t.Fatalf("no End after %d tokens", len(toks))
			}
			toks = append(toks, lx.Next())
			if toks[len(toks)-1].IsEnd() {
				break
			}
		}
		if !lx.Next().IsEnd() || !lx.Peek(3).IsEnd() {
			t.Fatalf("End is not sticky")
		}
		if err := testkit.CheckTokenInvariants(buf, toks); err != nil {
			t.Fatal(err)
		}
	})
}

func FuzzLexerPeekMatchesNext(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		text := string(input)

		direct := lexer.New(source.NewBuffer("a.l", text), lexer.Options{Diagnostics: diag.Nop{}}).All()

		lx := lexer.New(source.NewBuffer("b.l", text), lexer.Options{Diagnostics: diag.Nop{}})
		for i := range direct {
			peeked := lx.Peek(1)
			got := lx.Next()
			if !got.Same(direct[i]) {
				t.Fatalf("token %d: %s, want %s", i, got, direct[i])
			}
			if i+1 < len(direct) && !peeked.Same(direct[i+1]) {
				t.Fatalf("Peek(1) before token %d: %s, want %s", i, peeked, direct[i+1])
			}
		}
	})
}
