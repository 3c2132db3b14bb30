package gtypes

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
)

// RowType is an anonymous tuple type produced by a Sequence combinator
// whose result is not projected away (spec.md §3.1). Row types are
// structurally one-per-combinator-occurrence: they are never
// deduplicated, even if two sequences happen to share the same component
// types (spec.md §3.3 invariant 6) — each gets its own generated name.
type RowType struct {
	TypeName   string
	Components []Type
}

// NewRowType declares a fresh Row type for one Sequence combinator
// occurrence. name must already be unique (callers get one from
// *codegen.Context.Gen("Row")).
func NewRowType(name string, components []Type) *RowType {
	return &RowType{TypeName: name, Components: components}
}

func (r *RowType) Name() string        { return r.TypeName }
func (r *RowType) IsPointerLike() bool { return true }
func (r *RowType) NullExpr() string    { return "nil" }

func (r *RowType) AddToContext(ctx *codegen.Context, src FieldSource) {
	if ctx.HasType(r.TypeName) {
		return
	}
	ctx.MarkType(r.TypeName)
	env := r.env()
	ctx.AddTypeDecl(templates.Render("row_type_decl", env))
	// Row type definitions are prepended so they precede any type that
	// embeds them (spec.md §5 ordering rule i).
	ctx.PrependTypeDef(templates.Render("row_type_def", env))
	ctx.AddFnBody(templates.Render("row_type_impl", env))
}
