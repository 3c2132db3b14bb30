package gtypes

import (
	"testing"

	"github.com/npillmayer/adapgen/codegen"
)

func TestAllFieldsParentFirst(t *testing.T) {
	base := DefineNode("Base", nil, false, F("a"), F("b"))
	derived := DefineNode("Derived", base, false, F("c"))
	fields := derived.AllFields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 concatenated fields, got %d", len(fields))
	}
	if fields[0].Name != "a" || fields[1].Name != "b" || fields[2].Name != "c" {
		t.Errorf("expected parent fields first: got %v, %v, %v", fields[0].Name, fields[1].Name, fields[2].Name)
	}
}

func TestAllFieldsAbstractNoOwnFields(t *testing.T) {
	abs := DefineNode("Abs", nil, true)
	derived := DefineNode("Concrete", abs, false, F("only"))
	fields := derived.AllFields()
	if len(fields) != 1 || fields[0].Name != "only" {
		t.Errorf("expected single own field when base declares none, got %v", fields)
	}
}

func TestAddToContextIdempotent(t *testing.T) {
	node := DefineNode("Once", nil, false, F("x"))
	ctx := codegen.NewContext()
	node.AddToContext(ctx, nil)
	node.AddToContext(ctx, nil)
	if ctx.TypesDeclarations.Size() != 1 {
		t.Errorf("expected exactly one declaration after two AddToContext calls, got %d", ctx.TypesDeclarations.Size())
	}
}

func TestAddToContextRegistersConcreteOnly(t *testing.T) {
	abs := DefineNode("AbsNode", nil, true)
	concrete := DefineNode("ConcreteNode", abs, false, F("x"))
	ctx := codegen.NewContext()
	concrete.AddToContext(ctx, nil)
	found := false
	for _, n := range ctx.ConcreteNodeClasses {
		if n == "ConcreteNode" {
			found = true
		}
		if n == "AbsNode" {
			t.Errorf("abstract class AbsNode must not be recorded as a concrete node")
		}
	}
	if !found {
		t.Errorf("expected ConcreteNode to be recorded in ConcreteNodeClasses")
	}
}

func TestReprDisplayNameDefaultsToClassName(t *testing.T) {
	node := DefineNode("Plain", nil, false)
	if got := node.ReprDisplayName(); got != "Plain" {
		t.Errorf("expected default repr name to equal class name, got %s", got)
	}
}
