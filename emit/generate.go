/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package emit

import (
	"sort"
	"strings"

	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
	"github.com/npillmayer/adapgen/grammar"
)

type packageHeaderEnv struct {
	PackageName string
}

type nodeKindEnumEnv struct {
	Classes []string
}

type mainHeaderEnv struct {
	Interactive bool
}

type mainBodyEnv struct {
	RootFn   string
	RootRule string
}

// Generate drives every rule of g through comb's Emit contract against a
// fresh codegen.Context (spec.md §3.4: "a fresh Context per generate()
// call"), then renders the Context's bags into the artefacts spec.md §6
// asks for. Rules are visited in sorted-name order so that two calls over
// an unchanged grammar produce identical output (spec.md §8's emit-once
// property), not merely an equal multiset in some nondeterministic order.
//
// Grammar-construction errors (spec.md §7.1) surface as a *codegen.CompileError
// recovered from a combinator or grammar panic. Any other panic (a
// template failure, for instance) is not a grammar error and is re-raised
// unchanged.
func Generate(g *grammar.Grammar, opts ...Option) (artifacts *Artifacts, err error) {
	cfg := newConfig(opts)
	ctx := codegen.NewContext()

	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*codegen.CompileError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	names := make([]string, 0, len(g.Rules()))
	for name := range g.Rules() {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		ctx.TraceCompile(name, i)
		rule := g.Rule(name)
		rule.InferType()
		rule.Emit(ctx, "0")
	}

	header := renderHeader(ctx, cfg)
	body := renderBody(ctx)
	driver := ""
	if cfg.driverRule != "" {
		driver = renderDriver(ctx, cfg)
	}

	return &Artifacts{Header: header, Body: body, Driver: driver}, nil
}

func renderHeader(ctx *codegen.Context, cfg *config) string {
	var sb strings.Builder
	sb.WriteString(templates.Render("package_header", packageHeaderEnv{PackageName: cfg.packageName}))
	if len(ctx.ConcreteNodeClasses) > 0 {
		sb.WriteString(templates.Render("node_kind_enum", nodeKindEnumEnv{Classes: ctx.ConcreteNodeClasses}))
	}
	for _, s := range codegen.StringsOf(ctx.ValueTypeDefinitions) {
		sb.WriteString(s)
	}
	for _, s := range codegen.StringsOf(ctx.TypesDeclarations) {
		sb.WriteString(s)
	}
	for _, s := range codegen.StringsOf(ctx.FunctionDeclarations) {
		sb.WriteString(s)
	}
	return sb.String()
}

func renderBody(ctx *codegen.Context) string {
	var sb strings.Builder
	for _, s := range codegen.StringsOf(ctx.TypesDefinitions) {
		sb.WriteString(s)
	}
	for _, s := range codegen.StringsOf(ctx.FunctionBodies) {
		sb.WriteString(s)
	}
	return sb.String()
}

func renderDriver(ctx *codegen.Context, cfg *config) string {
	rootFn := ctx.RulesToFnNames[cfg.driverRule]
	var sb strings.Builder
	sb.WriteString(templates.Render("main_header", mainHeaderEnv{Interactive: cfg.interactive}))
	body := mainBodyEnv{RootFn: rootFn, RootRule: cfg.driverRule}
	if cfg.interactive {
		sb.WriteString(templates.Render("interactive_main", body))
	} else {
		sb.WriteString(templates.Render("main_body", body))
	}
	return sb.String()
}
