/*
Command pathql is an interactive CLI ("P.REPL") for building a small
graph and grammar by hand and running path queries against them. It is
a sandbox for experiments during query development, not a production
query engine — adapted from the sibling module's own T.REPL
(terex/terexlang/trepl), trading s-expression evaluation for the
edge/grammar/query command set below.

Commands, one per line:

	edge U LABEL V         add an edge U --LABEL--> V
	rule HEAD -> BODY      add a grammar production (grammar-text syntax)
	rpq REGEX              list node pairs connected by a path matching REGEX
	hellings               list CFPQ triples via the Hellings algorithm
	matrix                 list CFPQ triples via the matrix fixed point
	quit                   exit

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/pathql/cfpq"
	"github.com/npillmayer/pathql/filter"
	"github.com/npillmayer/pathql/grammar"
	"github.com/npillmayer/pathql/graph"
	"github.com/npillmayer/pathql/rpq"
	"github.com/npillmayer/pathql/symbol"

	"github.com/npillmayer/pathql/automaton"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func tracer() tracing.Trace {
	return tracing.Select("pathql.cmd")
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to P.REPL")

	repl, err := readline.New("pathql> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	intp := newInterp()
	tracer().Infof("Quit with 'quit' or <ctrl>D")
	intp.REPL(repl)
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// interp holds the graph and grammar a REPL session is building up.
type interp struct {
	g     *graph.LabeledGraph
	start string
	prods []grammar.Production
}

func newInterp() *interp {
	return &interp{g: graph.New(), start: "S"}
}

func (in *interp) REPL(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or ctrl-C
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if quit := in.Eval(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Eval dispatches a single REPL command line.
func (in *interp) Eval(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := fields[0]
	switch cmd {
	case "quit", "exit":
		return true
	case "edge":
		in.cmdEdge(fields[1:])
	case "rule":
		in.cmdRule(line)
	case "rpq":
		in.cmdRPQ(strings.TrimSpace(strings.TrimPrefix(line, cmd)))
	case "hellings":
		in.cmdCFPQ(true)
	case "matrix":
		in.cmdCFPQ(false)
	default:
		pterm.Error.Println("unknown command: " + cmd)
	}
	return false
}

func (in *interp) cmdEdge(args []string) {
	if len(args) != 3 {
		pterm.Error.Println("usage: edge U LABEL V")
		return
	}
	in.g.AddEdge(args[0], args[1], args[2])
	pterm.Info.Println(fmt.Sprintf("added edge %s --%s--> %s", args[0], args[1], args[2]))
}

// cmdRule parses "HEAD -> s1 s2 ... | t1 t2 ..." into one production
// per alternative and records it, using symbol.Of's case convention to
// tell terminals from variables (spec.md §6's grammar-text format).
func (in *interp) cmdRule(line string) {
	body := strings.TrimSpace(strings.TrimPrefix(line, "rule"))
	head, rest, ok := strings.Cut(body, "->")
	if !ok {
		pterm.Error.Println("usage: rule HEAD -> BODY [| BODY]*")
		return
	}
	headSym := symbol.Var(strings.TrimSpace(head))
	for _, alt := range strings.Split(rest, "|") {
		toks := strings.Fields(alt)
		p := grammar.Production{Head: headSym}
		if toks[0] != "ε" {
			for _, t := range toks {
				p.Body = append(p.Body, symbol.Of(t))
			}
		}
		in.prods = append(in.prods, p)
	}
	pterm.Info.Println("recorded rule: " + body)
}

func (in *interp) currentCFG() (*grammar.CFG, error) {
	if len(in.prods) == 0 {
		return nil, fmt.Errorf("no rules recorded yet")
	}
	return &grammar.CFG{Name: "repl", Start: symbol.Var(in.start), Productions: in.prods}, nil
}

func (in *interp) cmdRPQ(re string) {
	if re == "" {
		pterm.Error.Println("usage: rpq REGEX")
		return
	}
	q, err := automaton.RegexToMinDFA(re)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	db := automaton.FromGraph(in.g, nil, nil)
	pairs := rpq.Query(db, q)
	if len(pairs) == 0 {
		pterm.Info.Println("no matches")
		return
	}
	for _, p := range pairs {
		u := in.g.Node(graph.NodeID(p.U))
		v := in.g.Node(graph.NodeID(p.V))
		pterm.Println(fmt.Sprintf("%v -> %v", u, v))
	}
}

func (in *interp) cmdCFPQ(useHellings bool) {
	cfg, err := in.currentCFG()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	wcnf := grammar.ToWCNF(cfg)
	var triples cfpq.TripleSet
	if useHellings {
		triples = cfpq.Hellings(wcnf, in.g)
	} else {
		triples = cfpq.Matrix(wcnf, in.g)
	}
	triples = filter.Apply(triples, filter.Variable(cfg.Start))
	if len(triples) == 0 {
		pterm.Info.Println("no matches")
		return
	}
	for t := range triples {
		u := in.g.Node(t.From)
		v := in.g.Node(t.To)
		pterm.Println(fmt.Sprintf("%s: %v -> %v", t.Var, u, v))
	}
}
