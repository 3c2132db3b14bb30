package gtypes

import "testing"

func TestGoTypeRefASTNodeNeverPointer(t *testing.T) {
	node := DefineNode("Thing", nil, false, F("x"))
	if got := GoTypeRef(node); got != "Thing" {
		t.Errorf("expected bare interface name Thing, got %s", got)
	}
}

func TestGoTypeRefListNeverPointer(t *testing.T) {
	lt := NewListType(TokenHandle)
	if got := GoTypeRef(lt); got[0] == '*' {
		t.Errorf("List type reference should not be prefixed with *, got %s", got)
	}
}

func TestGoTypeRefRowIsPointer(t *testing.T) {
	row := NewRowType("Row_1", []Type{TokenHandle, TokenHandle})
	if got := GoTypeRef(row); got != "*Row_1" {
		t.Errorf("expected pointer-semantic Row reference, got %s", got)
	}
}

func TestGoTypeRefPrimitiveValue(t *testing.T) {
	if got := GoTypeRef(Boolean); got != "bool" {
		t.Errorf("expected bool, got %s", got)
	}
}

func TestGoTypeRefNilIsEmptyInterface(t *testing.T) {
	if got := GoTypeRef(nil); got != "interface{}" {
		t.Errorf("expected interface{} for nil type, got %s", got)
	}
}

func TestSingleField(t *testing.T) {
	sf := SingleField(Boolean)
	if len(sf.Components()) != 1 || sf.Components()[0] != Boolean {
		t.Errorf("singleField did not wrap exactly one component")
	}
	if sf.DiscardAt(0) {
		t.Errorf("singleField's sole component must never be discarded")
	}
}
