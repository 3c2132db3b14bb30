package comb

import (
	"testing"

	"github.com/npillmayer/adapgen/codegen"
)

// TestEmitOrCallInlinesSingleUse exercises spec.md §4.F point 2: a
// combinator referenced from exactly one place and not a root is inlined,
// not compiled to its own function.
func TestEmitOrCallInlinesSingleUse(t *testing.T) {
	ctx := codegen.NewContext()
	tok := Tok("x")
	em := tok.Emit(ctx, "pos")
	if em.Code == "" {
		t.Errorf("expected inlined code to still be returned in the Emission")
	}
	if ctx.FunctionDeclarations.Size() != 0 {
		t.Errorf("expected no function declarations for an inlined combinator, got %d", ctx.FunctionDeclarations.Size())
	}
}

// TestEmitOrCallCompilesMultiplyReferenced exercises the other half of the
// same rule: more than one use site forces a standalone function.
func TestEmitOrCallCompilesMultiplyReferenced(t *testing.T) {
	ctx := codegen.NewContext()
	tok := Tok("y")
	tok.AddRef()
	tok.AddRef()
	tok.Emit(ctx, "pos")
	if ctx.FunctionDeclarations.Size() == 0 {
		t.Errorf("expected a multiply-referenced combinator to compile to its own function")
	}
}

// TestEmitOrCallCompilesRoot exercises the third condition: root
// combinators always get their own function, regardless of refcount.
func TestEmitOrCallCompilesRoot(t *testing.T) {
	ctx := codegen.NewContext()
	tok := Tok("z")
	tok.MarkRoot("z_rule")
	tok.Emit(ctx, "pos")
	if ctx.FunctionDeclarations.Size() == 0 {
		t.Errorf("expected a root combinator to compile to its own function")
	}
	if fn, ok := ctx.RulesToFnNames["z_rule"]; !ok || fn != "parse_z_rule" {
		t.Errorf("expected rule z_rule to register function parse_z_rule, got %q (ok=%v)", fn, ok)
	}
}

func TestGenAllOrdersPrefixes(t *testing.T) {
	ctx := codegen.NewContext()
	names := ctx.GenAll("a", "b", "a")
	if len(names) != 3 || names[0] != "a_1" || names[1] != "b_1" || names[2] != "a_2" {
		t.Errorf("unexpected GenAll output: %v", names)
	}
}
