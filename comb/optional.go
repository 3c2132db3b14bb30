package comb

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
	"github.com/npillmayer/adapgen/gtypes"
)

// Optional tries its inner combinator; on failure it yields the
// null-expression of the inner type at the original position, consuming
// no input — Optional itself never fails (spec.md §4.C Optional). The
// AsBoolean variant instead yields true/false and overrides the inferred
// type to boolean.
type Optional struct {
	base
	Inner  Combinator
	asBool bool
}

// Opt wraps inner in an Optional.
func Opt(inner Combinator) *Optional {
	inner.AddRef()
	return &Optional{Inner: inner}
}

// AsBoolean switches this Optional to report presence/absence as a bool
// rather than the wrapped value (spec.md §4.C "Variant as_boolean").
func (o *Optional) AsBoolean() *Optional {
	o.asBool = true
	return o
}

func (o *Optional) InferType() gtypes.Type {
	return o.memoType(func() gtypes.Type {
		if o.asBool {
			return gtypes.Boolean
		}
		return o.Inner.InferType()
	})
}

func (o *Optional) NeedsRefcount() bool {
	if o.asBool {
		return false
	}
	t := o.InferType()
	return t != nil && t.IsPointerLike()
}

type optCodeEnv struct {
	InnerCode   string
	InnerPos    string
	InnerResult string
	OrigPos     string
	FinalPos    string
	ResultVar   string
	AsBoolean   bool
	NullExpr    string
}

func (o *Optional) Emit(ctx *codegen.Context, pos string) Emission {
	resolve(o)
	return o.emitOrCall(ctx, pos, o, "opt", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		em := o.Inner.Emit(ctx, posVar)
		finalPos := ctx.Gen("p")
		resVar := ctx.Gen("res")
		resultType := gtypes.GoTypeRef(o.InferType())
		locals := append(append([]string{}, em.Locals...), finalPos+" int", resVar+" "+resultType)

		nullExpr := "nil"
		if !o.asBool {
			if t := o.Inner.InferType(); t != nil {
				nullExpr = t.NullExpr()
			}
		}
		code := templates.Render("opt_code", optCodeEnv{
			InnerCode: em.Code, InnerPos: em.Pos, InnerResult: em.Result,
			OrigPos: posVar, FinalPos: finalPos, ResultVar: resVar,
			AsBoolean: o.asBool, NullExpr: nullExpr,
		})
		return resVar, finalPos, code, locals
	})
}
