package gtypes

import (
	"testing"

	"github.com/npillmayer/adapgen/codegen"
)

func TestRowTypeDefIsPrepended(t *testing.T) {
	ctx := codegen.NewContext()
	ctx.AddTypeDef("later")
	r := NewRowType(ctx.Gen("Row"), []Type{Boolean, TokenHandle})
	r.AddToContext(ctx, nil)
	defs := codegen.StringsOf(ctx.TypesDefinitions)
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if defs[1] != "later" || defs[0] == "later" {
		t.Errorf("Row type definition must be prepended ahead of previously added definitions, got %v", defs)
	}
}

func TestRowTypesAreNeverDeduplicatedByComponents(t *testing.T) {
	ctx := codegen.NewContext()
	r1 := NewRowType(ctx.Gen("Row"), []Type{Boolean})
	r2 := NewRowType(ctx.Gen("Row"), []Type{Boolean})
	r1.AddToContext(ctx, nil)
	r2.AddToContext(ctx, nil)
	if r1.Name() == r2.Name() {
		t.Errorf("two Sequence occurrences with identical component types must still get distinct Row names")
	}
	if ctx.TypesDeclarations.Size() != 2 {
		t.Errorf("expected two separate Row declarations, got %d", ctx.TypesDeclarations.Size())
	}
}
