package gtypes

import (
	"fmt"

	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
)

// EnumType is a closed, named set of symbolic alternatives with a fixed
// ordering, plus an implicit "uninitialized" sentinel (spec.md §3.1). Enum
// values have value semantics.
type EnumType struct {
	TypeName     string
	Alternatives []string // declaration order; does not include the implicit sentinel
	Suffix       string   // optional display suffix (spec.md §3.1)
}

// NewEnum declares a new enum type. Construction happens once, at
// grammar-definition time (spec.md §3.4).
func NewEnum(name string, alternatives []string, suffix string) *EnumType {
	return &EnumType{TypeName: name, Alternatives: alternatives, Suffix: suffix}
}

func (e *EnumType) Name() string        { return e.TypeName }
func (e *EnumType) IsPointerLike() bool { return false }

func (e *EnumType) NullExpr() string {
	return e.TypeName + "Uninitialized"
}

// Alt resolves one of the enum's alternatives, returning an EnumValue. It
// panics if alt is not one of e's declared alternatives — an invalid
// grammar-construction-time reference, the same class of programming
// error the Python original's `assert alt in self.alternatives` guards
// against.
func (e *EnumType) Alt(alt string) EnumValue {
	for _, a := range e.Alternatives {
		if a == alt {
			return EnumValue{Type: e, Alt: alt}
		}
	}
	panic(fmt.Sprintf("gtypes: %q is not an alternative of enum %s", alt, e.TypeName))
}

// GoConst is the generated Go identifier for one of the enum's
// alternatives, e.g. OverridingOverriding, OverridingNotOverriding.
func (e *EnumType) GoConst(alt string) string {
	return e.TypeName + exportedIdent(alt)
}

func (e *EnumType) AddToContext(ctx *codegen.Context, src FieldSource) {
	if ctx.HasType(e.TypeName) {
		return
	}
	ctx.MarkType(e.TypeName)
	env := e.env()
	// Enums are value-semantic: their declaration is concatenated before
	// pointer-semantic type declarations in the final header (spec.md §5
	// ordering rule ii).
	ctx.AddValueTypeDef(templates.Render("enum_type_decl", env))
	ctx.AddFnBody(templates.Render("enum_type_impl", env))
}

// EnumValue is one resolved alternative of an EnumType (spec.md §4.C
// Enum combinator: "yields the given enum alternative").
type EnumValue struct {
	Type *EnumType
	Alt  string
}

func exportedIdent(s string) string {
	out := make([]rune, 0, len(s))
	upper := true
	for _, r := range s {
		if r == '_' || r == ' ' || r == '-' {
			upper = true
			continue
		}
		if upper {
			out = append(out, toUpper(r))
			upper = false
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
