package comb

import (
	"testing"

	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/gtypes"
)

func TestSuccessNeverConsumesInput(t *testing.T) {
	node := gtypes.DefineNode("Thing3", nil, false)
	s := Success(node)
	em := s.Emit(codegen.NewContext(), "pos")
	if em.Pos != "pos" {
		t.Errorf("Success must yield the same position it was given, got %s", em.Pos)
	}
}

func TestNullYieldsNullExpression(t *testing.T) {
	n := Null(gtypes.TokenHandle)
	if n.InferType() != gtypes.TokenHandle {
		t.Errorf("expected Null's inferred type to be its wrapped type")
	}
}
