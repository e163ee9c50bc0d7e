package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/strata/chart"
	"github.com/npillmayer/strata/document"
	"github.com/npillmayer/strata/grammar"
	"github.com/npillmayer/strata/grammar/notation"
	"github.com/npillmayer/strata/intervals"
	"github.com/npillmayer/strata/render"
	"github.com/npillmayer/strata/tree"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// We provide a simple layer grammar and an annotated example sentence as
// defaults for experiments.
//
//  NP ➞ DET? ADJ* NOUN
//  VP ➞ VERB NP
//  S  ➞ NP VP
//
const demoRules = `
NP -> DET? ADJ* NOUN
VP -> VERB NP
S -> NP VP : 5
`

const demoDocument = `
text "the lazy dog chases a cat"
layer DET: 0..3, 20..21
layer ADJ: 4..8
layer NOUN: 9..12, 22..25
layer VERB: 13..19
`

func makeDemoGrammar() *grammar.Grammar {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelError)
	g, err := notation.CompileGrammar("demo", "S", demoRules)
	if err != nil {
		panic(fmt.Errorf("error creating demo grammar: %s", err.Error()))
	}
	tracer().SetTraceLevel(level)
	return g
}

// main() starts an interactive CLI, where users may load grammars and
// annotated documents, parse, and inspect every stage of the pipeline.
// Quit with <ctrl>D or the quit command.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial command file")
	flag.Parse()
	setTraceLevel("Info") // will set the correct level later
	pterm.Info.Println("Welcome to the strata REPL")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up the default grammar and document
	intp := &Intp{
		grammar: makeDemoGrammar(),
		start:   "S",
	}
	setTraceLevel(*tlevel) // now set the user supplied level
	intp.grammar.Dump()    // only visible in debug mode
	//
	// set up REPL
	repl, err := readline.New("strata> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(*initf)
	if line := strings.TrimSpace(strings.Join(flag.Args(), " ")); line != "" {
		intp.Execute(line)
	}
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	grammar  *grammar.Grammar
	start    string
	doc      *document.Document
	chart    *chart.Chart
	tree     *tree.Tree
	parallel bool
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if quit := intp.Execute(line); quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Execute(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Execute runs a single command line. It returns true if the interpreter
// should quit.
func (intp *Intp) Execute(line string) bool {
	args := strings.Fields(line)
	cmd := args[0]
	var err error
	switch cmd {
	case "quit", "q", "exit":
		return true
	case "help":
		intp.help()
	case "demo":
		err = intp.loadDemo()
	case "grammar":
		err = intp.cmdGrammar(args)
	case "doc":
		err = intp.cmdDocument(args)
	case "rules":
		err = intp.cmdRules()
	case "order":
		err = intp.cmdOrder()
	case "layers":
		err = intp.cmdLayers()
	case "parallel":
		intp.parallel = !intp.parallel
		pterm.Info.Println(fmt.Sprintf("parallel resolution is now %v", intp.parallel))
	case "parse":
		err = intp.cmdParse(args[1:])
	case "tree":
		err = intp.cmdTree()
	case "xml":
		err = intp.cmdXML()
	case "query":
		err = intp.cmdQuery(args)
	case "dot":
		err = intp.cmdDot(args)
	case "trace":
		if len(args) < 2 {
			err = fmt.Errorf("usage: trace [Debug|Info|Error]")
		} else {
			setTraceLevel(args[1])
		}
	default:
		err = fmt.Errorf("unknown command %q, try help", cmd)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return false
}

func (intp *Intp) help() {
	pterm.Println(`Commands:
  demo                    load the built-in example grammar and document
  grammar FILE [START]    compile a rule notation file (start symbol inferred)
  doc FILE                load a document (.json or textual form)
  rules                   show the concrete rules of the grammar
  order                   show the nonterminal application order
  layers                  show the document's annotation layers
  parallel                toggle concurrent level resolution
  parse [LAYER...]        build the interval graph and resolve the chart
  tree                    show the selected parse tree
  xml                     show the rendered markup
  query XPATH             run an XPath query over the rendered markup
  dot FILE                write the resolved interval graph as GraphViz dot
  trace LEVEL             set the trace level [Debug|Info|Error]
  quit                    leave the REPL`)
}

func (intp *Intp) loadDemo() error {
	g := makeDemoGrammar()
	doc, err := document.FromDSL(demoDocument)
	if err != nil {
		return err
	}
	intp.grammar, intp.start, intp.doc = g, "S", doc
	intp.chart, intp.tree = nil, nil
	pterm.Info.Println("demo grammar and document loaded, next: parse")
	return nil
}

func (intp *Intp) cmdGrammar(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: grammar FILE [START]")
	}
	start := "" // inferred from the rules
	if len(args) > 2 {
		start = args[2]
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(args[1]), filepath.Ext(args[1]))
	g, err := notation.CompileGrammar(name, start, string(data))
	if err != nil {
		return err
	}
	intp.grammar, intp.start = g, g.Start()
	intp.chart, intp.tree = nil, nil
	pterm.Info.Println(fmt.Sprintf("grammar %q with %d rules, start symbol %s",
		g.Name(), len(g.Rules()), g.Start()))
	return nil
}

func (intp *Intp) cmdDocument(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: doc FILE")
	}
	doc, err := loadDocument(args[1])
	if err != nil {
		return err
	}
	intp.doc = doc
	intp.chart, intp.tree = nil, nil
	pterm.Info.Println(doc.String())
	return nil
}

func (intp *Intp) cmdRules() error {
	if intp.grammar == nil {
		return fmt.Errorf("no grammar loaded")
	}
	for _, r := range intp.grammar.Rules() {
		pterm.Println(r.String())
	}
	return nil
}

func (intp *Intp) cmdOrder() error {
	if intp.grammar == nil {
		return fmt.Errorf("no grammar loaded")
	}
	for i, level := range intp.grammar.Levels() {
		pterm.Println(fmt.Sprintf("%d: %s", i, strings.Join(level, " ")))
	}
	return nil
}

func (intp *Intp) cmdLayers() error {
	if intp.doc == nil {
		return fmt.Errorf("no document loaded")
	}
	for _, name := range intp.doc.Layers() {
		spans, _ := intp.doc.Layer(name)
		pterm.Println(fmt.Sprintf("%-12s %d spans", name, len(spans)))
	}
	return nil
}

func (intp *Intp) cmdParse(layers []string) error {
	if intp.grammar == nil || intp.doc == nil {
		return fmt.Errorf("load a grammar and a document first (or try demo)")
	}
	spans, err := intp.doc.SpanMap(layers...)
	if err != nil {
		return err
	}
	base, err := intervals.Build(spans)
	if err != nil {
		return err
	}
	c, err := chart.NewResolver(intp.grammar, chart.Parallel(intp.parallel)).Resolve(base)
	if err != nil {
		return err
	}
	intp.chart = c
	t, err := tree.Select(c, intp.grammar)
	if err != nil {
		intp.tree = nil
		return err
	}
	intp.tree = t
	pterm.Info.Println(fmt.Sprintf("parse tree with root %v, weight %d",
		t.Root(), t.Root().Weight))
	return nil
}

func (intp *Intp) cmdTree() error {
	if intp.tree == nil {
		return fmt.Errorf("no parse tree, parse first")
	}
	ll := leveledTree(intp.doc, intp.tree.Root(), pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func (intp *Intp) cmdXML() error {
	if intp.tree == nil {
		return fmt.Errorf("no parse tree, parse first")
	}
	markup, err := render.XMLString(intp.tree, intp.doc.Text())
	if err != nil {
		return err
	}
	pterm.Println(markup)
	return nil
}

func (intp *Intp) cmdQuery(args []string) error {
	if intp.tree == nil {
		return fmt.Errorf("no parse tree, parse first")
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: query XPATH")
	}
	expr := strings.Join(args[1:], " ")
	nodes, err := render.QueryAll(intp.tree, intp.doc.Text(), expr)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%d match(es)", len(nodes)))
	for _, n := range nodes {
		pterm.Println(n.OutputXML(true))
	}
	return nil
}

func (intp *Intp) cmdDot(args []string) error {
	if intp.chart == nil {
		return fmt.Errorf("no chart, parse first")
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: dot FILE")
	}
	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()
	intervals.GraphViz(intp.chart.Graph(), f)
	pterm.Info.Println(fmt.Sprintf("interval graph written to %s", args[1]))
	return nil
}

// leveledTree flattens a parse tree for pterm's tree renderer. Leaves
// show the document text they cover.
func leveledTree(doc *document.Document, n *tree.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	text := n.String()
	if n.IsLeaf() && doc != nil {
		if snippet := doc.Snippet(n.Span); snippet != "" {
			text = fmt.Sprintf("%v %q", n, snippet)
		}
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	for _, child := range n.Children() {
		ll = leveledTree(doc, child, ll, level+1)
	}
	return ll
}

func loadDocument(filename string) (*document.Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if strings.ToLower(filepath.Ext(filename)) == ".json" {
		return document.FromJSON(data)
	}
	return document.FromDSL(string(data))
}

var traceKeys = []string{
	"strata.grammar", "strata.intervals", "strata.chart",
	"strata.tree", "strata.document", "strata.render", "strata.cli",
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
