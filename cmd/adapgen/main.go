/*
Command adapgen drives the code generator over the reference Ada
declaration grammar (adaschema): batch mode writes the generated parser
package to files, interactive mode is a small readline REPL for trying
single rules against typed-in Ada fragments without writing anything to
disk.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/adapgen/adalex"
	"github.com/npillmayer/adapgen/adaschema"
	"github.com/npillmayer/adapgen/emit"
	"github.com/npillmayer/adapgen/grammar"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()

	out := flag.String("out", "", "output directory for generated files (batch mode; empty = print to stdout)")
	pkg := flag.String("pkg", "parser", "package name for the generated parser")
	root := flag.String("root", "package_decl", "grammar rule to compile as the entry point / driver root")
	interactive := flag.Bool("i", false, "start an interactive rule-exploration REPL instead of generating files")
	withDriver := flag.Bool("driver", false, "also emit a main() driver reading from stdin")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	flag.Parse()

	gtrace.SyntaxTracer.SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	if *interactive {
		runREPL()
		return
	}
	if err := generate(*pkg, *root, *out, *withDriver); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
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

// generate compiles adaschema.NewGrammar() and either writes the
// resulting artefacts to outDir (one file per artefact, <pkg>.go /
// <pkg>_impl.go / main.go) or, when outDir is empty, prints them to
// stdout.
func generate(pkgName, rootRule, outDir string, withDriver bool) error {
	opts := []emit.Option{emit.PackageName(pkgName)}
	if withDriver {
		opts = append(opts, emit.WithDriver(rootRule))
	}
	art, err := emit.Generate(adaschema.NewGrammar(), opts...)
	if err != nil {
		return fmt.Errorf("generating parser: %w", err)
	}
	if outDir == "" {
		fmt.Println(art.Header)
		fmt.Println(art.Body)
		if art.Driver != "" {
			fmt.Println(art.Driver)
		}
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	files := map[string]string{
		pkgName + ".go":      art.Header,
		pkgName + "_impl.go": art.Body,
	}
	if art.Driver != "" {
		files["main.go"] = art.Driver
	}
	for name, content := range files {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		pterm.Info.Printfln("wrote %s", path)
	}
	return nil
}

// runREPL starts an interactive session: each line typed in is tokenized
// and reported against the grammar rule named by the preceding
// ":rule <name>" command (default "package_decl"). Actually running a
// rule's generated parser function requires the batch-mode artefacts to
// be written to disk and built; this REPL is for exploring a grammar's
// rule set and a line's token stream, not for running the parser live.
func runREPL() {
	g := adaschema.NewGrammar()
	art, err := emit.Generate(g, emit.PackageName("repl"))
	if err != nil {
		pterm.Error.Printfln("grammar does not compile: %v", err)
		os.Exit(1)
	}
	pterm.Info.Println("Welcome to adapgen")
	pterm.Info.Println("commands: :rules (list rule names), :rule <name> (select entry rule), <Ada source> (tokenize it)")

	rl, err := readline.New("adapgen> ")
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	defer rl.Close()

	current := "package_decl"
	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":rules":
			for name := range g.Rules() {
				pterm.Println(name)
			}
		case strings.HasPrefix(line, ":rule "):
			name := strings.TrimSpace(strings.TrimPrefix(line, ":rule "))
			if _, ok := g.Rules()[name]; !ok {
				pterm.Error.Printfln("unknown rule %q", name)
				continue
			}
			current = name
			pterm.Info.Printfln("entry rule set to %q", current)
		default:
			evalLine(g, art, current, line)
		}
	}
	pterm.Println("Good bye!")
}

// evalLine tokenizes line and reports what adalex saw. The REPL only
// explores the grammar's structure and the lexer's token stream — it
// does not run the generated parser functions, since those exist only as
// generated Go source text (art.Body), not as code loaded into this
// process; actually parsing a line requires writing the artefacts to
// disk and building them, exactly as batch mode does.
func evalLine(g *grammar.Grammar, art *emit.Artifacts, rule, line string) {
	toks, _, err := adalex.Tokenize(line)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	if toks.Len() == 0 {
		pterm.Info.Printfln("no tokens")
		return
	}
	pterm.Info.Printfln("%d token(s) scanned against rule %q; first lexeme %q", toks.Len(), rule, toks.TextAt(0))
}
