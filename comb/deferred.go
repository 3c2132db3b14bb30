package comb

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/gtypes"
)

// Deferred holds a thunk that returns another combinator, resolved on
// first use (spec.md §4.C Deferred). It is the sole mechanism for
// cyclic / forward-referencing grammars: grammar.Grammar's attribute-style
// rule lookup returns a Deferred for a rule name not yet added, which
// resolves once that rule is added (spec.md §4.D).
type Deferred struct {
	base
	thunk    func() Combinator
	resolved Combinator
}

// Defer builds a Deferred over thunk.
func Defer(thunk func() Combinator) *Deferred { return &Deferred{thunk: thunk} }

func (d *Deferred) resolveInner() Combinator {
	if d.resolved == nil {
		d.resolved = d.thunk()
	}
	return d.resolved
}

func (d *Deferred) InferType() gtypes.Type {
	return d.memoType(func() gtypes.Type { return d.resolveInner().InferType() })
}

func (d *Deferred) NeedsRefcount() bool { return d.resolveInner().NeedsRefcount() }

// Emit always goes through the resolved combinator's own function-call
// path, never inlining it (spec.md §9: "emission through Deferred always
// goes via a function call, never inlined") — achieved by forcing the
// resolved combinator's reference count above the inlining threshold,
// the same mechanism List uses to force its element/separator into
// callable functions.
func (d *Deferred) Emit(ctx *codegen.Context, pos string) Emission {
	inner := d.resolveInner()
	inner.AddRef()
	inner.AddRef()
	return inner.Emit(ctx, pos)
}
