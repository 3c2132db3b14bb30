package comb

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
	"github.com/npillmayer/adapgen/gtypes"
)

// SuccessCombinator always succeeds without consuming input, producing a
// default-constructed instance of Typ (spec.md §4.C Success).
type SuccessCombinator struct {
	base
	Typ gtypes.Type
}

// Success builds a SuccessCombinator over Typ.
func Success(typ gtypes.Type) *SuccessCombinator { return &SuccessCombinator{Typ: typ} }

func (s *SuccessCombinator) InferType() gtypes.Type {
	return s.memoType(func() gtypes.Type { return s.Typ })
}

func (s *SuccessCombinator) NeedsRefcount() bool { return s.Typ != nil && s.Typ.IsPointerLike() }

type terminalCodeEnv struct {
	ResultVar string
	Value     string
}

func (s *SuccessCombinator) Emit(ctx *codegen.Context, pos string) Emission {
	resolve(s)
	return s.emitOrCall(ctx, pos, s, "success", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		if s.Typ != nil {
			s.Typ.AddToContext(ctx, nil)
		}
		resVar := ctx.Gen("res")
		value := "nil"
		if s.Typ != nil {
			value = s.Typ.NullExpr()
		}
		locals := []string{resVar + " " + gtypes.GoTypeRef(s.Typ)}
		code := templates.Render("success_code", terminalCodeEnv{ResultVar: resVar, Value: value})
		return resVar, posVar, code, locals
	})
}

// NullCombinator always succeeds without consuming input, producing a
// null reference of Typ (spec.md §4.C Null). Typically used as the
// "absent" branch of an Alternation whose other branches are AST classes
// sharing a common ancestor with Typ.
type NullCombinator struct {
	base
	Typ gtypes.Type
}

// Null builds a NullCombinator over Typ.
func Null(typ gtypes.Type) *NullCombinator { return &NullCombinator{Typ: typ} }

func (n *NullCombinator) InferType() gtypes.Type {
	return n.memoType(func() gtypes.Type { return n.Typ })
}

func (n *NullCombinator) NeedsRefcount() bool { return n.Typ != nil && n.Typ.IsPointerLike() }

func (n *NullCombinator) Emit(ctx *codegen.Context, pos string) Emission {
	resolve(n)
	return n.emitOrCall(ctx, pos, n, "null", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		if n.Typ != nil {
			n.Typ.AddToContext(ctx, nil)
		}
		resVar := ctx.Gen("res")
		value := "nil"
		if n.Typ != nil {
			value = n.Typ.NullExpr()
		}
		locals := []string{resVar + " " + gtypes.GoTypeRef(n.Typ)}
		code := templates.Render("null_code", terminalCodeEnv{ResultVar: resVar, Value: value})
		return resVar, posVar, code, locals
	})
}
