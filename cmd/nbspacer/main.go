// Command nbspacer inserts non-breaking spaces into HTML documents.
//
// Usage:
//
//	nbspacer [flags] [infile] [outfile]
//
// Without rule or group selection all registered transducers run. A file
// name of "-" denotes stdin or stdout, respectively.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/nbspacer/catalog"
	"github.com/npillmayer/nbspacer/controller"
	"github.com/npillmayer/nbspacer/internal/locale"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// CLI defines the command-line interface.
type CLI struct {
	Group      []string `name:"group" short:"g" help:"Transducer groups to run (repeatable, comma separated)"`
	Transducer []string `name:"transducer" short:"t" help:"Transducers to run (repeatable, comma separated)"`
	Lang       string   `name:"lang" help:"Add the language group matching a tag, or 'auto' for the user locale"`
	Catalog    []string `name:"catalog" type:"existingfile" help:"Additional rule catalogue (YAML)"`
	Describe   bool     `name:"describe" help:"Describe the selected groups and transducers and exit"`
	List       bool     `name:"list" help:"List groups and transducers and exit"`
	Trace      string   `name:"trace" enum:"debug,info,error" default:"error" help:"Trace level (debug, info, error)"`
	Infile     string   `arg:"" optional:"" default:"-" help:"Input document"`
	Outfile    string   `arg:"" optional:"" default:"-" help:"Output document"`
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("nbspacer"),
		kong.Description("Insert non-breaking spaces into HTML documents"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(cli.Run())
}

// Run executes the command on stdin and stdout.
func (cli *CLI) Run() error {
	return cli.run(os.Stdin, os.Stdout)
}

func (cli *CLI) run(stdin io.Reader, stdout io.Writer) error {
	gtrace.CoreTracer.SetTraceLevel(traceLevel(cli.Trace))
	reg, err := catalog.Default(cli.Catalog...)
	if err != nil {
		return err
	}
	groups := cli.Group
	if cli.Lang != "" {
		g, err := languageGroup(reg, cli.Lang)
		if err != nil {
			return err
		}
		groups = append(groups, g)
	}
	switch {
	case cli.List:
		return list(reg, stdout)
	case cli.Describe:
		return describe(reg, cli.Transducer, groups, stdout)
	}
	in, err := openInput(cli.Infile, stdin)
	if err != nil {
		return err
	}
	defer in.Close()
	var out bytes.Buffer
	if err = controller.New(reg).Process(in, &out, cli.Transducer, groups); err != nil {
		return err
	}
	return writeOutput(cli.Outfile, stdout, out.Bytes())
}

func traceLevel(s string) tracing.TraceLevel {
	switch s {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

func languageGroup(reg *controller.Registry, lang string) (string, error) {
	tag, err := locale.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("--lang %s: %w", lang, err)
	}
	g, ok := locale.MatchGroup(tag, reg.GroupNames())
	if !ok {
		return "", fmt.Errorf("no transducer group for language %v", tag)
	}
	gtrace.CoreTracer.Infof("language %v selects group %s", tag, g)
	return g, nil
}

func list(reg *controller.Registry, w io.Writer) error {
	var b bytes.Buffer
	b.WriteString("Groups:\n")
	for _, g := range reg.GroupNames() {
		fmt.Fprintf(&b, "  %s\n", g)
	}
	b.WriteString("Transducers:\n")
	for _, r := range reg.RuleNames() {
		fmt.Fprintf(&b, "  %s\n", r)
	}
	_, err := w.Write(b.Bytes())
	return err
}

// describe writes descriptions of the named groups and rules. With no names
// given, everything registered is described.
func describe(reg *controller.Registry, rules, groups []string, w io.Writer) error {
	if len(rules) == 0 && len(groups) == 0 {
		groups, rules = reg.GroupNames(), reg.RuleNames()
	}
	var descr []*controller.Description
	for _, g := range groups {
		d, err := reg.DescribeGroup(g)
		if err != nil {
			return err
		}
		descr = append(descr, d)
	}
	for _, r := range rules {
		d, err := reg.DescribeRule(r)
		if err != nil {
			return err
		}
		descr = append(descr, d)
	}
	var b bytes.Buffer
	for i, d := range descr {
		if i > 0 {
			b.WriteByte('\n')
		}
		if _, err := d.WriteTo(&b); err != nil {
			return err
		}
	}
	_, err := w.Write(b.Bytes())
	return err
}

func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(name)
}

// writeOutput creates the output file only after the document has been
// transduced successfully.
func writeOutput(name string, stdout io.Writer, data []byte) error {
	if name == "" || name == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0o644)
}
