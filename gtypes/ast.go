package gtypes

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
)

// Field is one field of an AST node class (spec.md §3.2): its name, its
// statically inferred type (nil until the binding combinator is typed),
// three presentation flags used only by emitted pretty-printers, and an
// optionality flag.
type Field struct {
	Name           string
	Type           Type
	Repr           bool
	KeywordRepr    bool
	SuppressIfNull bool
	Optional       bool
}

// F is a convenience constructor for a plain, non-presentational field.
func F(name string) Field { return Field{Name: name} }

// NodeSchema is the explicit, once-built description of an AST node class
// (spec.md §9 redesign note, replacing runtime reflection over a class
// hierarchy): its name, abstract flag, base reference, and ordered own
// fields (not including inherited ones — see ASTNodeType.AllFields).
type NodeSchema struct {
	SchemaName string
	Abstract   bool
	Base       *ASTNodeType
	Fields     []Field
	ReprName   string // overrides SchemaName for emitted pretty-printers, spec.md §4.B
}

// ASTNodeType is a named AST node class: abstract or concrete, with zero
// or one parent class (single inheritance only, spec.md §3.1/§3.3
// invariant 1), pointer/reference semantics.
type ASTNodeType struct {
	Schema *NodeSchema
}

// ASTRoot is the implicit concrete base every node hierarchy bottoms out
// at (spec.md §3.3 invariant 1: "{AST root, another AST node class}").
// It declares no fields and is never itself instantiated.
var ASTRoot = &ASTNodeType{Schema: &NodeSchema{SchemaName: "ASTRoot", Abstract: true}}

// DefineNode declares a new AST node class once, at grammar-definition
// time (spec.md §3.4). base may be nil, meaning "derives directly from
// ASTRoot". This is the explicit registration step spec.md §9 asks for in
// place of a metaclass/runtime-reflection mechanism: calling DefineNode
// for every class, once, is this module's "derive macro".
func DefineNode(name string, base *ASTNodeType, abstract bool, fields ...Field) *ASTNodeType {
	if base == nil {
		base = ASTRoot
	}
	return &ASTNodeType{Schema: &NodeSchema{
		SchemaName: name,
		Abstract:   abstract,
		Base:       base,
		Fields:     fields,
	}}
}

func (a *ASTNodeType) Name() string        { return a.Schema.SchemaName }
func (a *ASTNodeType) IsPointerLike() bool { return true }
func (a *ASTNodeType) NullExpr() string    { return "nil" }

// ReprDisplayName is the name an emitted pretty-printer shows for
// instances of this class, defaulting to the class name itself
// (spec.md §4.B: "may be overridden by an optional attribute").
func (a *ASTNodeType) ReprDisplayName() string {
	if a.Schema.ReprName != "" {
		return a.Schema.ReprName
	}
	return a.Schema.SchemaName
}

// AllFields returns this class's fields concatenated with its parent
// class's fields, parent first (spec.md §3.2: "Fields appear in
// declaration order and are concatenated with parent-class fields
// (parent first)").
func (a *ASTNodeType) AllFields() []Field {
	if a.Schema.Base == nil || a.Schema.Base == ASTRoot {
		out := make([]Field, len(a.Schema.Fields))
		copy(out, a.Schema.Fields)
		return out
	}
	return append(a.Schema.Base.AllFields(), a.Schema.Fields...)
}

// AddToContext registers the class's declaration and definition with ctx,
// recursively registering the parent class first (spec.md §4.B), and — if
// src is given — infers this class's own field types from src's component
// types (spec.md §4.B: discard components flagged as discarded, then take
// the last N components, where N is this class's own declared field
// count, and bind them to the fields in order).
func (a *ASTNodeType) AddToContext(ctx *codegen.Context, src FieldSource) {
	if ctx.HasType(a.Name()) {
		return
	}

	if src != nil {
		comps := src.Components()
		kept := make([]Type, 0, len(comps))
		for i, c := range comps {
			if src.DiscardAt(i) {
				continue
			}
			kept = append(kept, c)
		}
		n := len(a.Schema.Fields)
		var matchers []Type
		if n > 0 && len(kept) >= n {
			matchers = kept[len(kept)-n:]
		} else {
			matchers = kept
		}
		for i := range a.Schema.Fields {
			if i < len(matchers) {
				a.Schema.Fields[i].Type = matchers[i]
			}
		}
	}

	base := a.Schema.Base
	if base != nil && base != ASTRoot {
		if len(a.Schema.Fields) == 0 {
			// This class adds no fields of its own: the whole combinator
			// describes the base class's fields instead.
			base.AddToContext(ctx, src)
		} else {
			base.AddToContext(ctx, nil)
		}
	}

	ctx.MarkType(a.Name())
	if !a.Schema.Abstract {
		ctx.AddConcreteNode(a.Name())
	}
	env := a.env()
	ctx.AddTypeDecl(templates.Render("astnode_type_decl", env))
	ctx.AddTypeDef(templates.Render("astnode_type_def", env))
	ctx.AddFnBody(templates.Render("astnode_type_impl", env))
}
