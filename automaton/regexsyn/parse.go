package regexsyn

import (
	"fmt"

	"github.com/npillmayer/pathql/symbol"
)

// Parse parses a character-level regular expression over single-symbol
// terminals, as used by RPQ queries (spec.md §4.6, scenarios S3/S4/S6):
// literal characters concatenate by juxtaposition, '|' is alternation,
// '*' is postfix Kleene star, '?' is postfix optional (a REDESIGN
// addition), and '(' ')' group a sub-expression.
func Parse(src string) (Regex, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("regexsyn: %w", err)
	}
	p := &parser{toks: toks}
	r, err := p.union()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("regexsyn: unexpected trailing input at token %d", p.pos)
	}
	return r, nil
}

type parser struct {
	toks []lexToken
	pos  int
}

func (p *parser) peek() (lexToken, bool) {
	if p.pos >= len(p.toks) {
		return lexToken{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) union() (Regex, error) {
	first, err := p.concat()
	if err != nil {
		return nil, err
	}
	alts := []Regex{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokPipe {
			break
		}
		p.pos++
		next, err := p.concat()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}
	return NewUnion(alts...), nil
}

func (p *parser) concat() (Regex, error) {
	var parts []Regex
	for {
		tok, ok := p.peek()
		if !ok || tok.kind == tokPipe || tok.kind == tokRParen {
			break
		}
		atom, err := p.atom()
		if err != nil {
			return nil, err
		}
		parts = append(parts, atom)
	}
	return NewConcat(parts...), nil
}

func (p *parser) atom() (Regex, error) {
	base, err := p.base()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		switch tok.kind {
		case tokStar:
			p.pos++
			base = Star{Operand: base}
			continue
		case tokQMark:
			p.pos++
			base = Opt{Operand: base}
			continue
		}
		break
	}
	return base, nil
}

func (p *parser) base() (Regex, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("regexsyn: unexpected end of input")
	}
	switch tok.kind {
	case tokChar:
		p.pos++
		return Lit{Sym: symbol.Term(tok.text)}, nil
	case tokLParen:
		p.pos++
		inner, err := p.union()
		if err != nil {
			return nil, err
		}
		close, ok := p.peek()
		if !ok || close.kind != tokRParen {
			return nil, fmt.Errorf("regexsyn: expected ')'")
		}
		p.pos++
		return inner, nil
	default:
		return nil, fmt.Errorf("regexsyn: unexpected token %q", tok.text)
	}
}
