package regexsyn

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pathql.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("pathql.automaton")
}

// Token kinds produced by the regex-string lexer. Mirrors the
// lexer-in-front-of-hand-written-parser split the sibling module uses
// in lr/scanner/lexmach for its own DSL scanner.
const (
	tokChar = iota
	tokLParen
	tokRParen
	tokPipe
	tokStar
	tokQMark
)

type lexToken struct {
	kind int
	text string
}

var regexLexer *lexmachine.Lexer

func init() {
	regexLexer = lexmachine.NewLexer()
	tok := func(kind int) lexmachine.Action {
		return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return lexToken{kind: kind, text: string(m.Bytes)}, nil
		}
	}
	regexLexer.Add([]byte(`\(`), tok(tokLParen))
	regexLexer.Add([]byte(`\)`), tok(tokRParen))
	regexLexer.Add([]byte(`\|`), tok(tokPipe))
	regexLexer.Add([]byte(`\*`), tok(tokStar))
	regexLexer.Add([]byte(`\?`), tok(tokQMark))
	regexLexer.Add([]byte(`[^()|*?]`), tok(tokChar))
	if err := regexLexer.Compile(); err != nil {
		panic(fmt.Errorf("regexsyn: failed to compile lexer: %w", err))
	}
}

func tokenize(src string) ([]lexToken, error) {
	scanner, err := regexLexer.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var toks []lexToken
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			tracer().Errorf("regexsyn: lex error: %v", err)
			return nil, err
		}
		toks = append(toks, tok.(lexToken))
	}
	return toks, nil
}
