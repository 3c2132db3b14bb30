package comb

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
	"github.com/npillmayer/adapgen/gtypes"
)

// EnumCombinator parses Inner — or accepts empty input if Inner is nil —
// then yields Value (spec.md §4.C Enum). Used to encode presence/absence
// of a syntactic keyword as a tagged value: "overriding" or "not
// overriding" or nothing at all, each mapping to a distinct
// Overriding alternative.
//
// When Inner is non-nil and fails to match, the whole combinator fails
// (so an enclosing Alternation can try the next tagged alternative);
// when Inner is nil, it always succeeds, consuming nothing.
type EnumCombinator struct {
	base
	Inner Combinator
	Value gtypes.EnumValue
}

// EnumAlt builds an EnumCombinator. inner may be nil.
func EnumAlt(inner Combinator, value gtypes.EnumValue) *EnumCombinator {
	if inner != nil {
		inner.AddRef()
	}
	return &EnumCombinator{Inner: inner, Value: value}
}

func (e *EnumCombinator) InferType() gtypes.Type {
	return e.memoType(func() gtypes.Type { return e.Value.Type })
}

func (e *EnumCombinator) NeedsRefcount() bool { return false }

type enumCodeEnv struct {
	HasInner  bool
	InnerCode string
	InnerPos  string
	OrigPos   string
	FinalPos  string
	ResultVar string
	Const     string
}

func (e *EnumCombinator) Emit(ctx *codegen.Context, pos string) Emission {
	resolve(e)
	return e.emitOrCall(ctx, pos, e, "enum", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		e.Value.Type.AddToContext(ctx, nil)
		finalPos := ctx.Gen("p")
		resVar := ctx.Gen("res")
		locals := []string{finalPos + " int", resVar + " " + gtypes.GoTypeRef(e.Value.Type)}

		var innerCode, innerPos string
		if e.Inner != nil {
			em := e.Inner.Emit(ctx, posVar)
			locals = append(locals, em.Locals...)
			innerCode = em.Code
			innerPos = em.Pos
		}
		code := templates.Render("enum_code", enumCodeEnv{
			HasInner: e.Inner != nil, InnerCode: innerCode, InnerPos: innerPos,
			OrigPos: posVar, FinalPos: finalPos, ResultVar: resVar,
			Const: e.Value.Type.GoConst(e.Value.Alt),
		})
		return resVar, finalPos, code, locals
	})
}
