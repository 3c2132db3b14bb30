package adaschema

import (
	"github.com/npillmayer/adapgen"
	"github.com/npillmayer/adapgen/comb"
	"github.com/npillmayer/adapgen/grammar"
)

// NewGrammar builds the reference grammar (spec.md §8's six end-to-end
// scenarios, plus the supporting rules they need). It is a representative
// subset of original_source/ada/ada_parser/decl.py, not a translation of
// the whole Ada declaration grammar: type declarations, task/protected
// constructs, generics, renaming, and representation clauses are left out
// (an Open Question this package resolves in favor of "seed the test
// suite, don't transcribe the language") — while the control-flow shapes
// that matter for the core (an Alternation over sibling classes, an
// Alternation over classes with the same base, a List with and without a
// separator, an Enum with an always-succeeding "absent" branch, and a
// cyclic rule reference through Deferred) are all represented at least
// once.
//
// Unlike the Python original, raw keyword/punctuation literals are never
// implicitly discarded from a Row's result: every comb.Tok that is purely
// syntactic (e.g. the "package"/"is"/"end" keywords) is wrapped in
// comb.Discard explicitly.
func NewGrammar() *grammar.Grammar {
	g := grammar.New()

	identifier := comb.TokClass(adapgen.ClassIdentifier)
	expression := comb.Or(
		comb.TokClass(adapgen.ClassNumber),
		comb.TokClass(adapgen.ClassIdentifier),
		comb.TokClass(adapgen.ClassString),
	)

	idList := comb.ListOf(identifier, comb.Tok(","), false)

	name := comb.TransformTo(
		comb.Row(comb.ListOf(identifier, comb.Tok("."), false)),
		Name,
	)

	withDecl := comb.TransformTo(
		comb.Row(
			comb.Opt(comb.Tok("limited")).AsBoolean(),
			comb.Opt(comb.Tok("private")).AsBoolean(),
			comb.Discard(comb.Tok("with")),
			comb.ListOf(name, comb.Tok(","), false),
		),
		WithDecl,
	)

	usePackageDecl := comb.TransformTo(
		comb.Row(
			comb.Discard(comb.Tok("use")),
			comb.ListOf(name, comb.Tok(","), false),
		),
		UsePkgDecl,
	)

	useTypeDecl := comb.TransformTo(
		comb.Row(
			comb.Discard(comb.Tok("use")),
			comb.Opt(comb.Tok("all")).AsBoolean(),
			comb.Discard(comb.Tok("type")),
			comb.ListOf(name, comb.Tok(","), false),
		),
		UseTypDecl,
	)

	useDecl := comb.Or(usePackageDecl, useTypeDecl)

	overridingIndicator := comb.Or(
		comb.EnumAlt(comb.Tok("overriding"), Overriding.Alt("overriding")),
		comb.EnumAlt(comb.Row(comb.Tok("not"), comb.Tok("overriding")), Overriding.Alt("not_overriding")),
		comb.EnumAlt(nil, Overriding.Alt("unspecified")),
	)

	inOut := comb.Or(
		comb.EnumAlt(comb.Row(comb.Tok("in"), comb.Tok("out")), InOut.Alt("inout")),
		comb.EnumAlt(comb.Tok("in"), InOut.Alt("in")),
		comb.EnumAlt(comb.Tok("out"), InOut.Alt("out")),
		comb.EnumAlt(nil, InOut.Alt("in")),
	)

	parameterProfile := comb.TransformTo(
		comb.Row(
			idList,
			comb.Discard(comb.Tok(":")),
			comb.Opt(comb.Tok("aliased")).AsBoolean(),
			inOut,
			name,
			comb.Opt(comb.Extract(comb.Row(comb.Discard(comb.Tok(":=")), expression), 1)),
		),
		ParameterProfile,
	)

	parameterProfiles := comb.Extract(
		comb.Row(
			comb.Discard(comb.Tok("(")),
			comb.ListOf(parameterProfile, comb.Tok(";"), false),
			comb.Discard(comb.Tok(")")),
		),
		1,
	)

	aspectAssoc := comb.TransformTo(
		comb.Row(
			name,
			comb.Opt(comb.Extract(comb.Row(comb.Discard(comb.Tok("=>")), expression), 1)),
		),
		AspectAssoc,
	)

	aspectSpecification := comb.Opt(comb.TransformTo(
		comb.Row(
			comb.Discard(comb.Tok("with")),
			comb.ListOf(aspectAssoc, comb.Tok(","), false),
		),
		AspectSpecification,
	))

	subObjectDecl := comb.TransformTo(
		comb.Row(
			idList,
			comb.Discard(comb.Tok(":")),
			comb.Opt(comb.Tok("aliased")).AsBoolean(),
			comb.Opt(comb.Tok("constant")).AsBoolean(),
			name,
			comb.Opt(comb.Extract(comb.Row(comb.Discard(comb.Tok(":=")), expression), 1)),
			aspectSpecification,
		),
		ObjectDecl,
	)

	numberDecl := comb.TransformTo(
		comb.Row(
			idList,
			comb.Discard(comb.Tok(":")),
			comb.Discard(comb.Tok("constant")),
			comb.Discard(comb.Tok(":=")),
			expression,
		),
		NumberDecl,
	)

	objectDecl := comb.Or(subObjectDecl, numberDecl)

	pragmaArg := comb.TransformTo(
		comb.Row(
			comb.Opt(comb.Extract(comb.Row(identifier, comb.Discard(comb.Tok("=>"))), 1)),
			expression,
		),
		PragmaArgument,
	)

	pragma := comb.TransformTo(
		comb.Row(
			comb.Discard(comb.Tok("pragma")),
			identifier,
			comb.Opt(comb.Extract(comb.Row(
				comb.Discard(comb.Tok("(")),
				comb.ListOf(pragmaArg, comb.Tok(","), false),
				comb.Discard(comb.Tok(")")),
			), 1)),
		),
		Pragma,
	)

	// package_decl is only defined further down, after basic_decls; at
	// this point it cannot be referenced as a Go variable yet, so the
	// forward reference goes through the grammar's deferred rule lookup
	// instead (the sole cycle edge in this grammar, spec.md §9).
	packageDeclForward := comb.Defer(func() comb.Combinator { return g.Rule("package_decl") })

	basicDecl := comb.Or(objectDecl, useDecl, pragma, packageDeclForward)

	basicDecls := comb.ListOf(
		comb.Extract(comb.Row(basicDecl, comb.Discard(comb.Tok(";"))), 1),
		nil, true,
	)

	packageDecl := comb.TransformTo(
		comb.Row(
			comb.Discard(comb.Tok("package")),
			name,
			aspectSpecification,
			comb.Discard(comb.Tok("is")),
			basicDecls,
			comb.Opt(comb.Extract(comb.Row(comb.Discard(comb.Tok("private")), basicDecls), 1)),
			comb.Discard(comb.Tok("end")),
			comb.Opt(name),
		),
		PackageDecl,
	)

	g.AddRules(map[string]comb.Combinator{
		"id_list":               idList,
		"name":                  name,
		"with_decl":             withDecl,
		"use_package_decl":      usePackageDecl,
		"use_type_decl":         useTypeDecl,
		"use_decl":              useDecl,
		"overriding_indicator":  overridingIndicator,
		"in_out":                inOut,
		"parameter_profile":     parameterProfile,
		"parameter_profiles":    parameterProfiles,
		"aspect_assoc":          aspectAssoc,
		"aspect_specification":  aspectSpecification,
		"object_decl":           objectDecl,
		"sub_object_decl":       subObjectDecl,
		"number_decl":           numberDecl,
		"pragma_arg":            pragmaArg,
		"pragma":                pragma,
		"basic_decl":            basicDecl,
		"basic_decls":           basicDecls,
		"package_decl":          packageDecl,
	})

	return g
}
