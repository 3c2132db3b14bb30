package comb

import (
	"github.com/npillmayer/adapgen"
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
	"github.com/npillmayer/adapgen/gtypes"
)

// TokenLiteral matches a single token by its exact spelling, e.g. the
// keyword "with" or the punctuation "=>" (spec.md §4.C TokenLiteral).
type TokenLiteral struct {
	base
	Value string
}

// Tok constructs a TokenLiteral matcher for the given symbolic spelling.
func Tok(value string) *TokenLiteral { return &TokenLiteral{Value: value} }

func (t *TokenLiteral) InferType() gtypes.Type {
	return t.memoType(func() gtypes.Type { return gtypes.TokenHandle })
}

func (t *TokenLiteral) NeedsRefcount() bool { return gtypes.TokenHandle.IsPointerLike() }

type tokEnv struct {
	Symbol    string
	PosVar    string
	NewPosVar string
	ResultVar string
}

func (t *TokenLiteral) Emit(ctx *codegen.Context, pos string) Emission {
	resolve(t)
	return t.emitOrCall(ctx, pos, t, "tok", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		resVar := ctx.Gen("res")
		newPos := ctx.Gen("np")
		code := templates.Render("tok_code", tokEnv{
			Symbol: t.Value, PosVar: posVar, NewPosVar: newPos, ResultVar: resVar,
		})
		return resVar, newPos, code, []string{newPos + " int", resVar + " adapgen.TokenHandle"}
	})
}

// TokenClass matches a single token by its lexical class (identifier,
// label, number, char, string, termination) rather than a fixed spelling
// (spec.md §4.C TokenClass).
type TokenClass struct {
	base
	Class adapgen.TokenClassKind
}

// TokClass constructs a TokenClass matcher.
func TokClass(class adapgen.TokenClassKind) *TokenClass { return &TokenClass{Class: class} }

func (t *TokenClass) InferType() gtypes.Type {
	return t.memoType(func() gtypes.Type { return gtypes.TokenHandle })
}

func (t *TokenClass) NeedsRefcount() bool { return gtypes.TokenHandle.IsPointerLike() }

type tokClassEnv struct {
	Class     string
	PosVar    string
	NewPosVar string
	ResultVar string
}

func (t *TokenClass) Emit(ctx *codegen.Context, pos string) Emission {
	resolve(t)
	return t.emitOrCall(ctx, pos, t, "tokclass", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		resVar := ctx.Gen("res")
		newPos := ctx.Gen("np")
		code := templates.Render("tokclass_code", tokClassEnv{
			Class: t.Class.String(), PosVar: posVar, NewPosVar: newPos, ResultVar: resVar,
		})
		return resVar, newPos, code, []string{newPos + " int", resVar + " adapgen.TokenHandle"}
	})
}
