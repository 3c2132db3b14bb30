package comb

import (
	"fmt"

	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
	"github.com/npillmayer/adapgen/gtypes"
)

// Alternation tries each branch in declaration order at the same starting
// position, accepting the first that succeeds; if every branch fails, the
// alternation fails at the furthest position reached (spec.md §4.C
// Alternation). All branches must share a common ancestor type.
type Alternation struct {
	base
	branches []Combinator
}

// Or builds an Alternation over branches, flattening any branch that is
// itself an Alternation so that (A|B)|C and A|(B|C) both produce the
// sequence [A, B, C] (spec.md §8 "Alternation flattening").
func Or(branches ...Combinator) *Alternation {
	var flat []Combinator
	for _, b := range branches {
		if alt, ok := b.(*Alternation); ok {
			flat = append(flat, alt.branches...)
		} else {
			flat = append(flat, b)
		}
	}
	for _, b := range flat {
		b.AddRef()
	}
	return &Alternation{branches: flat}
}

func (a *Alternation) InferType() gtypes.Type {
	return a.memoType(func() gtypes.Type {
		types := make([]gtypes.Type, len(a.branches))
		for i, b := range a.branches {
			types[i] = b.InferType()
		}
		t, err := commonAncestor(types)
		if err != nil {
			panic(codegen.Errorf("Alternation", "%v", err))
		}
		return t
	})
}

func (a *Alternation) NeedsRefcount() bool {
	t := a.InferType()
	return t != nil && t.IsPointerLike()
}

type altBranchEnv struct {
	Code   string
	Pos    string
	Result string
}

type altCodeEnv struct {
	Branches  []altBranchEnv
	FinalPos  string
	ResultVar string
}

func (a *Alternation) Emit(ctx *codegen.Context, pos string) Emission {
	resolve(a)
	return a.emitOrCall(ctx, pos, a, "or", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		finalPos := ctx.Gen("p")
		resVar := ctx.Gen("res")
		resultType := gtypes.GoTypeRef(a.InferType())
		locals := []string{finalPos + " int", resVar + " " + resultType}

		branches := make([]altBranchEnv, len(a.branches))
		for i, branch := range a.branches {
			em := branch.Emit(ctx, posVar)
			locals = append(locals, em.Locals...)
			branches[i] = altBranchEnv{Code: em.Code, Pos: em.Pos, Result: em.Result}
		}
		code := templates.Render("or_code", altCodeEnv{Branches: branches, FinalPos: finalPos, ResultVar: resVar})
		return resVar, finalPos, code, locals
	})
}

// commonAncestor folds ancestorOf over types left to right, skipping nils
// (spec.md §4.C "tolerate one of the candidate types being null"). The
// fold is associative and commutative over the argument list (spec.md §8
// "Common-ancestor correctness").
func commonAncestor(types []gtypes.Type) (gtypes.Type, error) {
	var result gtypes.Type
	for _, t := range types {
		if t == nil {
			continue
		}
		if result == nil {
			result = t
			continue
		}
		var err error
		result, err = ancestorOf(result, t)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ancestorOf walks a's and b's parent chains root-ward in parallel while
// they agree, returning the last agreeing ancestor (spec.md §4.C "Common-
// ancestor algorithm").
func ancestorOf(a, b gtypes.Type) (gtypes.Type, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	if a.Name() == b.Name() {
		return a, nil
	}
	an, aok := a.(*gtypes.ASTNodeType)
	bn, bok := b.(*gtypes.ASTNodeType)
	if !aok || !bok {
		return nil, fmt.Errorf("alternation branches have incompatible types %q and %q", a.Name(), b.Name())
	}
	achain := ancestorChain(an)
	bchain := ancestorChain(bn)
	var last *gtypes.ASTNodeType
	ai, bi := len(achain)-1, len(bchain)-1
	for ai >= 0 && bi >= 0 && achain[ai] == bchain[bi] {
		last = achain[ai]
		ai--
		bi--
	}
	if last == nil {
		return nil, fmt.Errorf("AST classes %q and %q share no common ancestor", an.Name(), bn.Name())
	}
	return last, nil
}

// ancestorChain returns n and every ancestor up to (and including) the
// root, nearest first.
func ancestorChain(n *gtypes.ASTNodeType) []*gtypes.ASTNodeType {
	chain := []*gtypes.ASTNodeType{n}
	for p := n.Schema.Base; p != nil; p = p.Schema.Base {
		chain = append(chain, p)
		if p == gtypes.ASTRoot {
			break
		}
	}
	return chain
}
