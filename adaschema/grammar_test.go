package adaschema

import (
	"strings"
	"testing"

	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/gtypes"
)

var expectedRules = []string{
	"id_list", "name", "with_decl", "use_package_decl", "use_type_decl",
	"use_decl", "overriding_indicator", "in_out", "parameter_profile",
	"parameter_profiles", "aspect_assoc", "aspect_specification",
	"object_decl", "sub_object_decl", "number_decl", "pragma_arg", "pragma",
	"basic_decl", "basic_decls", "package_decl",
}

func TestNewGrammarRegistersAllRules(t *testing.T) {
	g := NewGrammar()
	rules := g.Rules()
	if len(rules) != len(expectedRules) {
		t.Errorf("expected %d registered rules, got %d", len(expectedRules), len(rules))
	}
	for _, name := range expectedRules {
		if _, ok := rules[name]; !ok {
			t.Errorf("expected rule %q to be registered", name)
		}
	}
}

// TestBasicDeclCommonAncestorIsRoot exercises the alternation's
// common-ancestor resolution over sibling classes (ObjectDecl, UseDecl,
// Pragma, PackageDecl) that share no explicit base beyond ASTRoot.
func TestBasicDeclCommonAncestorIsRoot(t *testing.T) {
	g := NewGrammar()
	basicDecl := g.Rule("basic_decl")
	typ := basicDecl.InferType()
	if typ == nil {
		t.Fatalf("expected basic_decl to infer a type")
	}
	if typ.Name() != "ASTRoot" {
		t.Errorf("expected basic_decl's common ancestor to be ASTRoot, got %q", typ.Name())
	}
}

// TestUseDeclCommonAncestorIsUseDecl exercises the alternation over two
// classes sharing an explicit abstract base.
func TestUseDeclCommonAncestorIsUseDecl(t *testing.T) {
	g := NewGrammar()
	useDecl := g.Rule("use_decl")
	typ := useDecl.InferType()
	if typ == nil {
		t.Fatalf("expected use_decl to infer a type")
	}
	if typ.Name() != "UseDecl" {
		t.Errorf("expected use_decl's common ancestor to be UseDecl, got %q", typ.Name())
	}
}

func TestPackageDeclInfersPackageDecl(t *testing.T) {
	g := NewGrammar()
	packageDecl := g.Rule("package_decl")
	typ := packageDecl.InferType()
	if typ == nil {
		t.Fatalf("expected package_decl to infer a type")
	}
	if typ.Name() != "PackageDecl" {
		t.Errorf("expected package_decl to infer PackageDecl, got %q", typ.Name())
	}
}

// TestWithDeclFieldTypesResolveAfterEmit exercises scenario 1: with_decl's
// fields resolve, after compilation, to [is_limited Boolean, is_private
// Boolean, packages List<Name>], and the emitted bodies match the literal
// "with".
func TestWithDeclFieldTypesResolveAfterEmit(t *testing.T) {
	g := NewGrammar()
	ctx := codegen.NewContext()
	g.Rule("with_decl").Emit(ctx, "0")
	bodies := strings.Join(codegen.StringsOf(ctx.FunctionBodies), "\n")

	fields := WithDecl.AllFields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields on WithDecl, got %d", len(fields))
	}
	if fields[0].Name != "is_limited" || fields[0].Type != gtypes.Boolean {
		t.Errorf("expected field 0 to be is_limited:Boolean, got %s:%v", fields[0].Name, fields[0].Type)
	}
	if fields[1].Name != "is_private" || fields[1].Type != gtypes.Boolean {
		t.Errorf("expected field 1 to be is_private:Boolean, got %s:%v", fields[1].Name, fields[1].Type)
	}
	if fields[2].Name != "packages" {
		t.Errorf("expected field 2 to be named packages, got %s", fields[2].Name)
	}
	if _, ok := fields[2].Type.(*gtypes.ListType); !ok {
		t.Errorf("expected the packages field to be a List type, got %T", fields[2].Type)
	}
	if !strings.Contains(bodies, `"with"`) {
		t.Errorf("expected the compiled with_decl function bodies to match the literal \"with\", got:\n%s", bodies)
	}
}

// TestOverridingIndicatorResolvesThreeAlternatives exercises scenario 3:
// the three EnumAlt branches resolve to Overriding's three alternatives,
// and EnumType.NullExpr is the uninitialized sentinel.
func TestOverridingIndicatorResolvesThreeAlternatives(t *testing.T) {
	if len(Overriding.Alternatives) != 3 {
		t.Fatalf("expected Overriding to declare 3 alternatives, got %d", len(Overriding.Alternatives))
	}
	g := NewGrammar()
	overridingIndicator := g.Rule("overriding_indicator")
	typ := overridingIndicator.InferType()
	if typ == nil {
		t.Fatalf("expected overriding_indicator to infer a non-nil enum type")
	}
	if typ.Name() != "Overriding" {
		t.Errorf("expected overriding_indicator to infer Overriding, got %q", typ.Name())
	}
	if typ.NullExpr() != "OverridingUninitialized" {
		t.Errorf("expected NullExpr to be the uninitialized sentinel, got %q", typ.NullExpr())
	}
}

// TestParameterProfileFieldCount exercises scenario 4 (spec.md §3.3
// invariant 2): ParameterProfile declares exactly the 5 fields decl.py's
// parameter_profile binds (ids, is_aliased, mode, type_expr, default).
func TestParameterProfileFieldCount(t *testing.T) {
	fields := ParameterProfile.AllFields()
	if len(fields) != 5 {
		t.Fatalf("expected ParameterProfile to declare 5 fields, got %d", len(fields))
	}
}

// TestPackageDeclEmitOnceAcrossTwoCompilations exercises scenario 5's
// emit-once half: compiling package_decl twice from two independently
// built grammars registers PackageDecl's declaration exactly once per
// context (spec.md §8 "emit once").
func TestPackageDeclEmitOnceAcrossTwoCompilations(t *testing.T) {
	for i := 0; i < 2; i++ {
		g := NewGrammar()
		ctx := codegen.NewContext()
		g.Rule("package_decl").Emit(ctx, "0")
		count := 0
		for _, s := range codegen.StringsOf(ctx.TypesDeclarations) {
			if strings.Contains(s, "PackageDeclNode") {
				count++
			}
		}
		if count != 1 {
			t.Errorf("run %d: expected PackageDeclNode declared exactly once, found %d", i, count)
		}
	}
}

// TestBasicDeclsFurthestPositionThreadsThroughAlternation exercises
// scenario 6: the furthest-position diagnostic (spec.md §7.2) is threaded
// via the shared far *int parameter into every leaf token match inside an
// Alternation, not synthesized separately by the Or fragment itself.
func TestBasicDeclsFurthestPositionThreadsThroughAlternation(t *testing.T) {
	g := NewGrammar()
	ctx := codegen.NewContext()
	g.Rule("basic_decl").Emit(ctx, "0")
	bodies := strings.Join(codegen.StringsOf(ctx.FunctionBodies), "\n")
	if !strings.Contains(bodies, "UpdateFar(far") {
		t.Errorf("expected basic_decl's compiled function bodies to call adapgen.UpdateFar(far, ...), got:\n%s", bodies)
	}
}
