package comb

import (
	"testing"

	"github.com/npillmayer/adapgen/gtypes"
)

func TestCommonAncestorSiblings(t *testing.T) {
	parent := gtypes.DefineNode("Parent", nil, true)
	a := gtypes.DefineNode("A", parent, false)
	b := gtypes.DefineNode("B", parent, false)
	got, err := commonAncestor([]gtypes.Type{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name() != "Parent" {
		t.Errorf("expected common ancestor Parent, got %s", got.Name())
	}
}

func TestCommonAncestorSubtype(t *testing.T) {
	a := gtypes.DefineNode("A2", nil, false)
	b := gtypes.DefineNode("B2", a, false)
	got, err := commonAncestor([]gtypes.Type{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name() != "A2" {
		t.Errorf("expected ancestor(A,B) = B's base A when A <: nothing and B <: A, got %s", got.Name())
	}
}

func TestCommonAncestorUnrelatedFallsBackToRoot(t *testing.T) {
	a := gtypes.DefineNode("Unrelated1", nil, false)
	b := gtypes.DefineNode("Unrelated2", nil, false)
	got, err := commonAncestor([]gtypes.Type{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name() != "ASTRoot" {
		t.Errorf("expected ASTRoot as the fallback ancestor of two unrelated classes, got %s", got.Name())
	}
}

func TestCommonAncestorToleratesNil(t *testing.T) {
	a := gtypes.DefineNode("Solo", nil, false)
	got, err := commonAncestor([]gtypes.Type{nil, a, nil})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != a {
		t.Errorf("expected nil candidates to be skipped, leaving Solo as the result")
	}
}

func TestCommonAncestorAssociativeAndCommutative(t *testing.T) {
	parent := gtypes.DefineNode("AssocParent", nil, true)
	a := gtypes.DefineNode("AssocA", parent, false)
	b := gtypes.DefineNode("AssocB", parent, false)
	c := gtypes.DefineNode("AssocC", parent, false)

	left, err := commonAncestor([]gtypes.Type{a, b, c})
	if err != nil {
		t.Fatal(err)
	}
	right, err := commonAncestor([]gtypes.Type{c, a, b})
	if err != nil {
		t.Fatal(err)
	}
	if left.Name() != right.Name() {
		t.Errorf("common ancestor should not depend on argument order: %s vs %s", left.Name(), right.Name())
	}
}

func TestOrFlattensNestedAlternations(t *testing.T) {
	node := gtypes.DefineNode("FlatNode", nil, false)
	x, y, z := Success(node), Success(node), Success(node)
	left := Or(Or(x, y), z)
	right := Or(x, Or(y, z))
	if len(left.branches) != 3 || len(right.branches) != 3 {
		t.Fatalf("expected both to flatten to 3 branches, got %d and %d", len(left.branches), len(right.branches))
	}
	for i := range left.branches {
		if left.branches[i] != right.branches[i] {
			t.Errorf("branch %d differs between (A|B)|C and A|(B|C)", i)
		}
	}
}

func TestAlternationIncompatibleBranchesError(t *testing.T) {
	alt := Or(Success(gtypes.Boolean), Success(gtypes.TokenHandle))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected InferType to panic on incompatible primitive branch types")
		}
	}()
	alt.InferType()
}
