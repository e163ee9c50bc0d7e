package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

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

var cli struct {
	Trace string `help:"Trace level [Debug|Info|Error]" default:"Error"`

	Compile CompileCmd `cmd:"" help:"Compile a rule notation file and dump the concrete rules"`
	Parse   ParseCmd   `cmd:"" help:"Parse an annotated document against a layer grammar"`
}

// CompileCmd compiles a rule notation file and prints the concrete
// rules, i.e. the rules after expansion of optionals, repetitions and
// alternatives.
type CompileCmd struct {
	Grammar string `arg:"" help:"Rule notation file" type:"existingfile"`
	Start   string `help:"Start symbol of the grammar (inferred when omitted)"`
}

func (c *CompileCmd) Run() error {
	g, err := loadGrammar(c.Grammar, c.Start)
	if err != nil {
		return err
	}
	for _, r := range g.Rules() {
		fmt.Println(r)
	}
	return nil
}

// ParseCmd runs the complete pipeline: build an interval graph from the
// document's annotation layers, resolve the chart against the grammar,
// select a parse tree and render it.
type ParseCmd struct {
	Grammar  string   `arg:"" help:"Rule notation file" type:"existingfile"`
	Document string   `arg:"" help:"Annotated document (.json or textual form)" type:"existingfile"`
	Start    string   `help:"Start symbol of the grammar (inferred when omitted)"`
	Layers   []string `help:"Annotation layers to parse (default all)"`
	Format   string   `help:"Output format" enum:"xml,html,dot" default:"xml"`
	Out      string   `help:"Output file (default stdout)" type:"path"`
	Parallel bool     `help:"Resolve independent rule levels concurrently"`
}

func (c *ParseCmd) Run() error {
	g, err := loadGrammar(c.Grammar, c.Start)
	if err != nil {
		return err
	}
	doc, err := loadDocument(c.Document)
	if err != nil {
		return err
	}
	spans, err := doc.SpanMap(c.Layers...)
	if err != nil {
		return err
	}
	base, err := intervals.Build(spans)
	if err != nil {
		return fmt.Errorf("failed to build interval graph: %w", err)
	}
	cht, err := chart.NewResolver(g, chart.Parallel(c.Parallel)).Resolve(base)
	if err != nil {
		return fmt.Errorf("failed to resolve chart: %w", err)
	}
	w, closeOut, err := c.output()
	if err != nil {
		return err
	}
	defer closeOut()
	if c.Format == "dot" { // the graph exists even if no tree does
		intervals.GraphViz(cht.Graph(), w)
		return nil
	}
	t, err := tree.Select(cht, g)
	if err != nil {
		return err
	}
	tracer().Infof("parse tree with root %v, weight %d", t.Root(), t.Root().Weight)
	if c.Format == "html" {
		return render.HTML(t, doc.Text(), w)
	}
	return render.XML(t, doc.Text(), w)
}

// output opens the destination for rendered output, defaulting to stdout.
func (c *ParseCmd) output() (io.Writer, func(), error) {
	if c.Out == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func loadGrammar(filename, start string) (*grammar.Grammar, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return notation.CompileGrammar(name, start, string(data))
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

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	ctx := kong.Parse(&cli,
		kong.Name("strata"),
		kong.Description("Merge stratified annotation layers into a parse tree"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	setTraceLevel(cli.Trace)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
