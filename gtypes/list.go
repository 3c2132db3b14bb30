package gtypes

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
)

// ListType is a homogeneous sequence of a given element type
// (spec.md §3.1). List types are structural: two List combinators over
// the same element type share one generated slice-alias declaration.
type ListType struct {
	Elem Type
}

// NewListType returns the List type over elem.
func NewListType(elem Type) *ListType {
	return &ListType{Elem: elem}
}

func (l *ListType) Name() string {
	if l.Elem == nil {
		return "List_Any"
	}
	return "List_" + baseName(l.Elem)
}

func (l *ListType) IsPointerLike() bool { return true }
func (l *ListType) NullExpr() string    { return "nil" }

func (l *ListType) AddToContext(ctx *codegen.Context, src FieldSource) {
	if l.Elem != nil {
		l.Elem.AddToContext(ctx, nil)
	}
	if ctx.HasType(l.Name()) {
		return
	}
	ctx.MarkType(l.Name())
	ctx.AddTypeDecl(templates.Render("list_type", l.env()))
}

// baseName is the element type's Name(), which never carries the "*"
// GoTypeRef adds for pointer types, so list type names read
// "List_WithDecl", not "List_*WithDecl".
func baseName(t Type) string {
	return t.Name()
}
