package gtypes

import "testing"

func TestListTypeNameDerivesFromElement(t *testing.T) {
	node := DefineNode("WithDecl", nil, false)
	lt := NewListType(node)
	if got := lt.Name(); got != "List_WithDecl" {
		t.Errorf("expected List_WithDecl, got %s", got)
	}
}

func TestListTypeIsPointerLike(t *testing.T) {
	lt := NewListType(TokenHandle)
	if !lt.IsPointerLike() {
		t.Errorf("a List's backing slice is always reference-semantic")
	}
	if lt.NullExpr() != "nil" {
		t.Errorf("expected nil as a List's null expression, got %s", lt.NullExpr())
	}
}
