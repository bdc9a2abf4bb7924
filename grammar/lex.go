package grammar

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token kinds for the grammar-text lexer (spec.md §6's grammar text
// format). Mirrors the lexer-in-front-of-hand-written-parser split the
// sibling module uses in lr/scanner/lexmach.
const (
	tokArrow = iota
	tokPipe
	tokStar
	tokIdent
)

type gtoken struct {
	kind int
	text string
}

var textLexer *lexmachine.Lexer

func init() {
	textLexer = lexmachine.NewLexer()
	tok := func(kind int) lexmachine.Action {
		return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return gtoken{kind: kind, text: string(m.Bytes)}, nil
		}
	}
	skip := func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, nil
	}
	textLexer.Add([]byte(`->`), tok(tokArrow))
	textLexer.Add([]byte(`\|`), tok(tokPipe))
	textLexer.Add([]byte(`\*`), tok(tokStar))
	// ε (the empty-word literal of spec.md §6) lexes as its own ident
	// token, ahead of the general identifier rule.
	textLexer.Add([]byte("ε"), tok(tokIdent))
	textLexer.Add([]byte(`[A-Za-z_][A-Za-z0-9_]*`), tok(tokIdent))
	textLexer.Add([]byte(` |\t`), skip)
	if err := textLexer.Compile(); err != nil {
		panic(fmt.Errorf("grammar: failed to compile text lexer: %w", err))
	}
}

// tokenizeLine lexes a single line of grammar text (newline already
// stripped) into gtokens.
func tokenizeLine(line string) ([]gtoken, error) {
	scanner, err := textLexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var toks []gtoken
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, fmt.Errorf("unrecognized input %q", line[ui.StartColumn:])
			}
			return nil, err
		}
		if tok == nil {
			continue // whitespace was skipped
		}
		toks = append(toks, tok.(gtoken))
	}
	return toks, nil
}
