package grammar

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/npillmayer/pathql/automaton/regexsyn"
	"github.com/npillmayer/pathql/symbol"
)

// ECFG maps each variable to a single regex over (V ∪ T) representing
// the union of all its productions, per spec.md §4.2.
type ECFG struct {
	Start Symbol
	Rules map[Symbol]regexsyn.Regex
}

// MalformedGrammarTextError reports a grammar-text parse failure with
// its source line number, per spec.md §7's MalformedGrammarText error
// kind.
type MalformedGrammarTextError struct {
	Line int
	Msg  string
}

func (e *MalformedGrammarTextError) Error() string {
	return fmt.Sprintf("grammar: malformed grammar text at line %d: %s", e.Line, e.Msg)
}

// ECFGFromText parses the grammar text format of spec.md §6: one
// production per line, `head -> body [| body]*`, whitespace-separated
// tokens, an optional trailing '*' on a token denoting Kleene star
// around that single token. Lowercase-leading tokens are terminals,
// uppercase-leading are variables. The default start symbol is "S".
func ECFGFromText(text string) (*ECFG, error) {
	e := &ECFG{Start: symbol.Var("S"), Rules: make(map[Symbol]regexsyn.Regex)}
	bodies := make(map[Symbol][]regexsyn.Regex)
	order := make([]Symbol, 0)

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		toks, err := tokenizeLine(line)
		if err != nil {
			return nil, &MalformedGrammarTextError{Line: lineNo, Msg: err.Error()}
		}
		if len(toks) < 3 || toks[0].kind != tokIdent || toks[1].kind != tokArrow {
			return nil, &MalformedGrammarTextError{Line: lineNo, Msg: "expected 'HEAD -> body'"}
		}
		head := symbol.Of(toks[0].text)
		alt, err := parseAltBodies(toks[2:])
		if err != nil {
			return nil, &MalformedGrammarTextError{Line: lineNo, Msg: err.Error()}
		}
		if _, seen := bodies[head]; !seen {
			order = append(order, head)
		}
		bodies[head] = append(bodies[head], alt...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for _, head := range order {
		e.Rules[head] = regexsyn.NewUnion(bodies[head]...)
	}
	return e, nil
}

// parseAltBodies splits a token run at top-level '|' separators into
// one Concat regex per alternative body.
func parseAltBodies(toks []gtoken) ([]regexsyn.Regex, error) {
	var alts []regexsyn.Regex
	var cur []regexsyn.Regex
	flush := func() {
		alts = append(alts, regexsyn.NewConcat(cur...))
		cur = nil
	}
	i := 0
	for i < len(toks) {
		t := toks[i]
		switch t.kind {
		case tokPipe:
			flush()
			i++
		case tokIdent:
			if t.text == "ε" {
				// the empty-word literal contributes nothing to this
				// alternative's body (spec.md §6): "S -> a | ε" means
				// S accepts either "a" or the empty word.
				i++
				continue
			}
			lit := regexsyn.Regex(regexsyn.Lit{Sym: symbol.Of(t.text)})
			if i+1 < len(toks) && toks[i+1].kind == tokStar {
				lit = regexsyn.Star{Operand: lit}
				i++
			}
			cur = append(cur, lit)
			i++
		default:
			return nil, fmt.Errorf("unexpected token %q in body", t.text)
		}
	}
	flush()
	return alts, nil
}

// ECFGFromCFG textualizes cfg and re-parses it, which is valid because
// CFG.String()'s text output preserves cfg's language exactly (spec.md
// §4.2).
func ECFGFromCFG(cfg *CFG) (*ECFG, error) {
	e, err := ECFGFromText(cfg.String())
	if err != nil {
		return nil, err
	}
	e.Start = cfg.Start
	return e, nil
}

// String renders e back into the grammar text format.
func (e *ECFG) String() string {
	var b strings.Builder
	for v, r := range e.Rules {
		fmt.Fprintf(&b, "%s -> %s\n", v, regexBody(r))
	}
	return b.String()
}

func regexBody(r regexsyn.Regex) string {
	switch n := r.(type) {
	case regexsyn.Union:
		parts := make([]string, len(n.Alts))
		for i, a := range n.Alts {
			parts[i] = regexBody(a)
		}
		return strings.Join(parts, " | ")
	case regexsyn.Concat:
		parts := make([]string, len(n.Parts))
		for i, p := range n.Parts {
			parts[i] = regexBody(p)
		}
		return strings.Join(parts, " ")
	case regexsyn.Star:
		return regexBody(n.Operand) + "*"
	default:
		return r.String()
	}
}
