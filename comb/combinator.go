package comb

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
	"github.com/npillmayer/adapgen/gtypes"
)

// Combinator is the contract every grammar-tree node implements (spec.md
// §4.C): type inference, a refcount hint for the emitted target, and code
// emission.
type Combinator interface {
	// InferType returns this combinator's statically inferred result
	// type. Memoised; returns nil if called while already inferring (a
	// self-recursive cycle caught without going through Deferred).
	InferType() gtypes.Type
	// NeedsRefcount reports whether this combinator's result is
	// pointer-like (spec.md §4.C contract 2).
	NeedsRefcount() bool
	// Emit produces a parser fragment for this combinator starting at
	// the token-index held in the Go variable named pos.
	Emit(ctx *codegen.Context, pos string) Emission
	// MarkRoot stamps this combinator as a named grammar rule (spec.md
	// §4.D): root combinators always compile to their own function.
	MarkRoot(ruleName string)
	IsRoot() bool
	RootName() string
	// AddRef records one more use site of this combinator. A combinator
	// referenced from more than one place is promoted to a function
	// rather than inlined at every call site (spec.md §4.F point 2).
	AddRef()
}

// Emission is what Combinator.Emit returns: the new position variable and
// result variable names the caller should reference, the code fragment
// that computes them (assuming pos is already in scope), and any local
// variable declarations that code needs, hoisted to the enclosing
// function's top (spec.md §4.C contract 3, §4.F point 3).
type Emission struct {
	Pos    string
	Result string
	Code   string
	Locals []string
}

// base is embedded by every concrete combinator. It implements the
// bookkeeping shared by all of them: root/ref-count tracking, memoised
// type inference with a re-entrancy lock (spec.md §4.C contract 1), and
// the inline-vs-function emission decision (spec.md §4.F point 2).
type base struct {
	root     bool
	ruleName string
	fnName   string
	refs     int

	typ         gtypes.Type
	typResolved bool
	inferring   bool
}

func (b *base) MarkRoot(ruleName string) { b.root = true; b.ruleName = ruleName }
func (b *base) IsRoot() bool             { return b.root }
func (b *base) RootName() string         { return b.ruleName }
func (b *base) AddRef()                  { b.refs++ }

// memoType runs compute at most once, guarding against infinite recursion
// on cyclic grammars by returning nil for any recursive re-entry (spec.md
// §4.C contract 1: "achieved via ... a re-entrancy lock returning null on
// self-recursion"). Only Deferred is meant to be the actual cycle-breaker;
// this lock is a backstop.
func (b *base) memoType(compute func() gtypes.Type) gtypes.Type {
	if b.typResolved {
		return b.typ
	}
	if b.inferring {
		return nil
	}
	b.inferring = true
	t := compute()
	b.inferring = false
	b.typResolved = true
	b.typ = t
	return t
}

// bodyFunc computes one combinator's match code starting at posVar,
// returning the result variable name, the new-position variable name, the
// code implementing the match, and any locals that code needs.
type bodyFunc func(ctx *codegen.Context, posVar string) (resultVar, newPosVar, code string, locals []string)

// FnProfileEnv is the template environment for combinator_fn_profile.
type FnProfileEnv struct {
	Name       string
	ResultType string
}

// FnBodyEnv is the template environment for combinator_fn_code.
type FnBodyEnv struct {
	Name       string
	ResultType string
	ResultVar  string
	PosVar     string
	Body       string
	Locals     []string
}

// FnCallEnv is the template environment for combinator_fncall.
type FnCallEnv struct {
	FnName    string
	PosArg    string
	ResultVar string
	PosVar    string
}

// emitOrCall implements spec.md §4.F point 2: self is compiled into its
// own function when it is root, has more than one use site, or forceFn is
// set (the Deferred combinator always forces this, to preserve its
// cycle-breaking role per spec.md §9); otherwise body's code is inlined
// directly at the call site.
func (b *base) emitOrCall(ctx *codegen.Context, pos string, self Combinator, fnPrefix string, forceFn bool, body bodyFunc) Emission {
	if !forceFn && !self.IsRoot() && b.refs <= 1 {
		resVar, newPos, code, locals := body(ctx, pos)
		return Emission{Pos: newPos, Result: resVar, Code: code, Locals: locals}
	}

	if b.fnName == "" {
		if self.IsRoot() {
			b.fnName = "parse_" + self.RootName()
		} else {
			b.fnName = ctx.Gen(fnPrefix)
		}
	}
	if self.IsRoot() {
		ctx.RegisterRuleFn(self.RootName(), b.fnName)
	}

	if !ctx.HasFn(b.fnName) {
		ctx.MarkFn(b.fnName)
		resVar, newPos, code, locals := body(ctx, "pos")
		resultType := gtypes.GoTypeRef(self.InferType())
		profile := FnProfileEnv{Name: b.fnName, ResultType: resultType}
		fnBody := FnBodyEnv{
			Name:       b.fnName,
			ResultType: resultType,
			ResultVar:  resVar,
			PosVar:     newPos,
			Body:       code,
			Locals:     locals,
		}
		ctx.AddFnDecl(templates.Render("combinator_fn_profile", profile))
		ctx.AddFnBody(templates.Render("combinator_fn_code", fnBody))
	}

	resVar := ctx.Gen("r")
	newPos := ctx.Gen("p")
	call := templates.Render("combinator_fncall", FnCallEnv{
		FnName: b.fnName, PosArg: pos, ResultVar: resVar, PosVar: newPos,
	})
	return Emission{Pos: newPos, Result: resVar, Code: call, Locals: nil}
}

// resolve forces c's type inference, mirroring the Python original's
// eager resolve() helper that walks a combinator tree after grammar
// construction to catch type errors before any code is emitted.
func resolve(c Combinator) gtypes.Type {
	return c.InferType()
}
