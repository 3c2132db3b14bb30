package comb

import (
	"testing"

	"github.com/npillmayer/adapgen/codegen"
)

func TestDeferredResolvesOnce(t *testing.T) {
	calls := 0
	d := Defer(func() Combinator {
		calls++
		return Tok("x")
	})
	d.InferType()
	d.InferType()
	if calls != 1 {
		t.Errorf("expected the thunk to run exactly once, ran %d times", calls)
	}
}

// TestDeferredAlwaysForcesFunction exercises spec.md §9: emission through
// Deferred always goes via a function call, never inlined — achieved by
// bumping the resolved combinator's refcount past the inlining threshold.
func TestDeferredAlwaysForcesFunction(t *testing.T) {
	inner := Tok("cyclic")
	d := Defer(func() Combinator { return inner })
	ctx := codegen.NewContext()
	d.Emit(ctx, "pos")
	if inner.refs < 2 {
		t.Errorf("expected Deferred.Emit to add at least 2 references to the resolved combinator, got %d", inner.refs)
	}
}
