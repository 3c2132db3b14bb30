package gtypes

import (
	"testing"

	"github.com/npillmayer/adapgen/codegen"
)

func TestEnumAltUnknownPanics(t *testing.T) {
	e := NewEnum("Flavor", []string{"a", "b"}, "")
	defer func() {
		if recover() == nil {
			t.Errorf("expected Alt(\"c\") to panic on an unknown alternative")
		}
	}()
	e.Alt("c")
}

func TestEnumGoConst(t *testing.T) {
	e := NewEnum("Overriding", []string{"not_overriding"}, "kind")
	if got := e.GoConst("not_overriding"); got != "OverridingNotOverriding" {
		t.Errorf("expected OverridingNotOverriding, got %s", got)
	}
}

func TestEnumNullExpr(t *testing.T) {
	e := NewEnum("Overriding", []string{"overriding"}, "kind")
	if got := e.NullExpr(); got != "OverridingUninitialized" {
		t.Errorf("expected OverridingUninitialized sentinel, got %s", got)
	}
}

func TestEnumAddToContextUsesValueBag(t *testing.T) {
	e := NewEnum("Overriding", []string{"overriding", "not_overriding"}, "kind")
	ctx := codegen.NewContext()
	e.AddToContext(ctx, nil)
	if ctx.ValueTypeDefinitions.Size() != 1 {
		t.Errorf("expected enum declaration routed through the value-type bag, got size %d", ctx.ValueTypeDefinitions.Size())
	}
	if ctx.TypesDeclarations.Size() != 0 {
		t.Errorf("enum declaration must not also land in the pointer-type bag")
	}
}
