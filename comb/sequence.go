package comb

import (
	"fmt"
	"strings"

	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
	"github.com/npillmayer/adapgen/gtypes"
)

// Sequence matches a fixed, ordered list of children, failing at the
// position of whichever child first fails (spec.md §4.C Sequence / "row").
// Used directly (not wrapped in Extract or Transform) its result is a Row
// tuple of the non-discarded children's results.
type Sequence struct {
	base
	children []Combinator
	discard  []bool // parallel to children; true where wrapped in Discard

	rowType *gtypes.RowType
}

// Row constructs a Sequence over children, in order.
func Row(children ...Combinator) *Sequence {
	s := &Sequence{
		children: make([]Combinator, len(children)),
		discard:  make([]bool, len(children)),
	}
	for i, c := range children {
		if dm, ok := c.(*discardMarker); ok {
			s.discard[i] = true
			s.children[i] = dm.Combinator
		} else {
			s.children[i] = c
		}
		s.children[i].AddRef()
	}
	return s
}

// Discard wraps a sequence child, suppressing its result from the
// enclosing Sequence's Row (spec.md §4.C Discard).
func Discard(c Combinator) Combinator { return &discardMarker{Combinator: c} }

type discardMarker struct{ Combinator }

// Components implements gtypes.FieldSource: the statically inferred type
// of every child, in declaration order, including discarded ones (the
// caller — an AST node class's AddToContext — is the one that filters by
// DiscardAt).
func (s *Sequence) Components() []gtypes.Type {
	types := make([]gtypes.Type, len(s.children))
	for i, c := range s.children {
		types[i] = c.InferType()
	}
	return types
}

// DiscardAt implements gtypes.FieldSource.
func (s *Sequence) DiscardAt(i int) bool { return s.discard[i] }

// InferType for a bare Sequence is its Row type. A Row type's generated
// name needs a context-owned counter (spec.md §9), so it can only be
// finalized once Emit has run at least once; before that this returns nil,
// the same "not yet resolved" sentinel a self-recursive Deferred lock
// returns (spec.md §4.C contract 1).
func (s *Sequence) InferType() gtypes.Type {
	if s.typResolved {
		return s.typ
	}
	return nil
}

func (s *Sequence) NeedsRefcount() bool { return true }

func (s *Sequence) ensureRowType(ctx *codegen.Context) *gtypes.RowType {
	if s.rowType != nil {
		return s.rowType
	}
	var comps []gtypes.Type
	for i, c := range s.children {
		if s.discard[i] {
			continue
		}
		comps = append(comps, c.InferType())
	}
	name := ctx.Gen("Row")
	rt := gtypes.NewRowType(name, comps)
	rt.AddToContext(ctx, nil)
	s.rowType = rt
	s.typResolved = true
	s.typ = rt
	return rt
}

type rowCodeEnv struct {
	FinalPos   string
	RowType    string
	ResultVar  string
	Components []string
}

func (s *Sequence) Emit(ctx *codegen.Context, pos string) Emission {
	return s.emitOrCall(ctx, pos, s, "row", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		finalPos, resultVars, code, locals := emitChain(ctx, posVar, s.children)
		rowType := s.ensureRowType(ctx)
		resVar := ctx.Gen("row")
		locals = append(locals, resVar+" "+gtypes.GoTypeRef(rowType))
		var kept []string
		for i, r := range resultVars {
			if !s.discard[i] {
				kept = append(kept, r)
			}
		}
		code += templates.Render("row_code", rowCodeEnv{
			FinalPos: finalPos, RowType: rowType.Name(), ResultVar: resVar, Components: kept,
		})
		return resVar, finalPos, code, locals
	})
}

// keptIndices returns the original child indices of s's non-discarded
// components, in order.
func keptIndices(s *Sequence) []int {
	var out []int
	for i, d := range s.discard {
		if !d {
			out = append(out, i)
		}
	}
	return out
}

// Extraction is the Extract(sequence, index) combinator (spec.md §4.C): it
// parses the wrapped sequence and yields only its index-th (1-based, over
// non-discarded components) result, inhibiting Row-tuple construction
// entirely (spec.md §8 "Extract–Row interaction").
type Extraction struct {
	base
	Seq   *Sequence
	Index int
}

// Extract builds an Extraction over seq, picking its index-th
// non-discarded component (1-based).
func Extract(seq *Sequence, index int) *Extraction {
	return &Extraction{Seq: seq, Index: index}
}

func (e *Extraction) InferType() gtypes.Type {
	return e.memoType(func() gtypes.Type {
		kept := keptIndices(e.Seq)
		if e.Index < 1 || e.Index > len(kept) {
			return nil
		}
		return e.Seq.children[kept[e.Index-1]].InferType()
	})
}

func (e *Extraction) NeedsRefcount() bool {
	t := e.InferType()
	return t != nil && t.IsPointerLike()
}

func (e *Extraction) Emit(ctx *codegen.Context, pos string) Emission {
	resolve(e)
	return e.emitOrCall(ctx, pos, e, "extract", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		finalPos, resultVars, code, locals := emitChain(ctx, posVar, e.Seq.children)
		kept := keptIndices(e.Seq)
		idx := kept[e.Index-1]
		return resultVars[idx], finalPos, code, locals
	})
}

// emitChain threads pos through children in order, stopping at the first
// failure (spec.md §4.C Sequence semantics). It is shared by Sequence and
// Extraction: both need the same threaded, short-circuiting match, only
// the tail treatment (build a Row vs. pick one component) differs. The
// generated shape is a single-iteration "for { ...; break }" block, a
// common idiom for a flat early-exit run of statements without resorting
// to goto or deep if-nesting.
func emitChain(ctx *codegen.Context, pos string, children []Combinator) (finalPosVar string, resultVars []string, code string, locals []string) {
	finalPosVar = ctx.Gen("p")
	locals = append(locals, finalPosVar+" int")
	resultVars = make([]string, len(children))

	var sb strings.Builder
	sb.WriteString("for {\n")
	curPos := pos
	for i, c := range children {
		em := c.Emit(ctx, curPos)
		locals = append(locals, em.Locals...)
		sb.WriteString(templates.Indent(em.Code, 1))
		sb.WriteString(fmt.Sprintf("\tif %s == adapgen.FailPos {\n\t\t%s = adapgen.FailPos\n\t\tbreak\n\t}\n", em.Pos, finalPosVar))
		resultVars[i] = em.Result
		curPos = em.Pos
	}
	sb.WriteString(fmt.Sprintf("\t%s = %s\n\tbreak\n}\n", finalPosVar, curPos))
	return finalPosVar, resultVars, sb.String(), locals
}
